package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet is the set of sizes the widget draws with.
type FontSet struct {
	LargeFont  *ttf.Font // Picker title
	MediumFont *ttf.Font // Number, country names, keypad
	SmallFont  *ttf.Font // Labels, calling codes, hints
}

// Fonts is loaded by Init and closed by SDLCleanup.
var Fonts FontSet

// fallbackFonts are tried when neither the theme nor the environment name one.
var fallbackFonts = []string{
	"/mnt/SDCARD/System/fonts/Cannoli.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

var errNoFont = errors.New("no usable font found")

// resolveFontPath picks the first readable font from the theme, the
// environment and the fallback list.
func resolveFontPath(themePath string) (string, error) {
	candidates := append([]string{themePath, os.Getenv(constants.FontPathEnvVar)}, fallbackFonts...)
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errNoFont
}

// fontSizes scales text with the window so the widget reads the same on a
// 640x480 handheld and a desktop window.
func fontSizes(windowHeight int32) (large, medium, small int) {
	medium = int(windowHeight / 22)
	if medium < 14 {
		medium = 14
	}
	return medium * 4 / 3, medium, medium * 3 / 4
}

func initFonts(themePath string, windowHeight int32) error {
	path, err := resolveFontPath(themePath)
	if err != nil {
		return err
	}

	large, medium, small := fontSizes(windowHeight)

	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s at %d: %w", path, size, err)
		}
		return font, nil
	}

	if Fonts.LargeFont, err = open(large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(medium); err != nil {
		closeFonts()
		return err
	}
	if Fonts.SmallFont, err = open(small); err != nil {
		closeFonts()
		return err
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "large", large, "medium", medium, "small", small)
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
