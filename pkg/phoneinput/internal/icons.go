package internal

import (
	"fmt"
	"image/color"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/icons"
	"github.com/veandco/go-sdl2/sdl"
)

// Icon returns a cached texture of the named icon at size x size pixels.
func (c *TextureCache) Icon(renderer *sdl.Renderer, name icons.Name, size int32, col color.NRGBA) *sdl.Texture {
	key := fmt.Sprintf("icon|%s|%d|%02x%02x%02x%02x", name, size, col.R, col.G, col.B, col.A)
	if texture := c.Get(key); texture != nil {
		return texture
	}

	img, err := icons.Rasterize(name, int(size), col)
	if err != nil {
		GetInternalLogger().Error("Failed to rasterize icon", "icon", name, "error", err)
		return nil
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, size, size, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		GetInternalLogger().Error("Failed to create icon surface", "icon", name, "error", err)
		return nil
	}
	defer surface.Free()

	surface.Lock()
	pixels := surface.Pixels()
	rowBytes := int(size) * 4
	for y := 0; y < int(size); y++ {
		copy(pixels[y*int(surface.Pitch):y*int(surface.Pitch)+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create icon texture", "icon", name, "error", err)
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	c.Set(key, texture)
	return texture
}

// DrawIcon draws the named icon centered in r.
func (c *TextureCache) DrawIcon(renderer *sdl.Renderer, name icons.Name, r sdl.Rect, col color.NRGBA) {
	size := r.W
	if r.H < size {
		size = r.H
	}
	if size <= 0 {
		return
	}
	if texture := c.Icon(renderer, name, size, col); texture != nil {
		dst := CenterIn(r, size, size)
		renderer.Copy(texture, nil, &dst)
	}
}
