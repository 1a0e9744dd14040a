package theme

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Overrides replaces selected Theme fields. Empty strings and nil pointers
// leave the base value alone. Colors are "#RGB", "#RRGGBB", "#RRGGBBAA" or
// "transparent".
type Overrides struct {
	ScreenBackground    string `toml:"screen_background"`
	ContainerBackground string `toml:"container_background"`
	InputBackground     string `toml:"input_background"`
	ModalBackground     string `toml:"modal_background"`
	ModalOverlay        string `toml:"modal_overlay"`

	LabelTextColor       string `toml:"label_text_color"`
	InputTextColor       string `toml:"input_text_color"`
	PlaceholderTextColor string `toml:"placeholder_text_color"`
	CodeTextColor        string `toml:"code_text_color"`
	DropdownTextColor    string `toml:"dropdown_text_color"`

	InputBorderColor string `toml:"input_border_color"`
	ModalBorderColor string `toml:"modal_border_color"`

	SelectionColor       string `toml:"selection_color"`
	HighlightColor       string `toml:"highlight_color"`
	HighlightedTextColor string `toml:"highlighted_text_color"`
	ShadowColor          string `toml:"shadow_color"`

	FlagBorderRadius *int32    `toml:"flag_border_radius"`
	FlagSize         *int32    `toml:"flag_size"`
	FlagShape        FlagShape `toml:"flag_shape"`

	DropdownArrowColor   string   `toml:"dropdown_arrow_color"`
	DropdownArrowOpacity *float64 `toml:"dropdown_arrow_opacity"`

	FontPath string `toml:"font_path"`
}

// Resolve merges overrides onto base from left to right.
func Resolve(base Theme, overrides ...Overrides) (Theme, error) {
	t := base
	for _, o := range overrides {
		if err := o.apply(&t); err != nil {
			return base, err
		}
	}
	return t, nil
}

// LoadOverrides reads Overrides from a TOML file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("theme: read %s: %w", path, err)
	}

	var o Overrides
	md, err := toml.Decode(string(data), &o)
	if err != nil {
		return Overrides{}, fmt.Errorf("theme: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Overrides{}, fmt.Errorf("theme: unknown key %q in %s", undecoded[0].String(), path)
	}
	return o, nil
}

func (o Overrides) apply(t *Theme) error {
	colors := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"screen_background", o.ScreenBackground, &t.ScreenBackground},
		{"container_background", o.ContainerBackground, &t.ContainerBackground},
		{"input_background", o.InputBackground, &t.InputBackground},
		{"modal_background", o.ModalBackground, &t.ModalBackground},
		{"modal_overlay", o.ModalOverlay, &t.ModalOverlay},
		{"label_text_color", o.LabelTextColor, &t.LabelTextColor},
		{"input_text_color", o.InputTextColor, &t.InputTextColor},
		{"placeholder_text_color", o.PlaceholderTextColor, &t.PlaceholderTextColor},
		{"code_text_color", o.CodeTextColor, &t.CodeTextColor},
		{"dropdown_text_color", o.DropdownTextColor, &t.DropdownTextColor},
		{"input_border_color", o.InputBorderColor, &t.InputBorderColor},
		{"modal_border_color", o.ModalBorderColor, &t.ModalBorderColor},
		{"selection_color", o.SelectionColor, &t.SelectionColor},
		{"highlight_color", o.HighlightColor, &t.HighlightColor},
		{"highlighted_text_color", o.HighlightedTextColor, &t.HighlightedTextColor},
		{"shadow_color", o.ShadowColor, &t.ShadowColor},
		{"dropdown_arrow_color", o.DropdownArrowColor, &t.DropdownArrowColor},
	}

	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseColor(c.value)
		if err != nil {
			return fmt.Errorf("theme: %s: %w", c.name, err)
		}
		*c.dst = parsed
	}

	switch o.FlagShape {
	case "":
	case FlagShapeRound, FlagShapeSquare:
		t.FlagShape = o.FlagShape
	default:
		return fmt.Errorf("theme: flag_shape: unknown shape %q", o.FlagShape)
	}

	if o.FlagBorderRadius != nil {
		t.FlagBorderRadius = *o.FlagBorderRadius
	}
	if o.FlagSize != nil {
		if *o.FlagSize <= 0 {
			return fmt.Errorf("theme: flag_size: must be positive, got %d", *o.FlagSize)
		}
		t.FlagSize = *o.FlagSize
	}
	if o.DropdownArrowOpacity != nil {
		t.DropdownArrowOpacity = *o.DropdownArrowOpacity
	}
	if o.FontPath != "" {
		t.FontPath = o.FontPath
	}
	return nil
}

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA" or "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.NRGBA{}, nil
	}

	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
