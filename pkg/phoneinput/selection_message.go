package phoneinput

import (
	"strings"
	"time"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/labels"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// SelectionMessageSettings configures SelectionMessage.
type SelectionMessageSettings struct {
	// ConfirmButton defaults to VirtualButtonA. Start always confirms.
	ConfirmButton constants.VirtualButton
	// BackButton defaults to VirtualButtonB.
	BackButton        constants.VirtualButton
	DisableBackButton bool
	InitialSelection  int
	// Theme replaces the theme set by Init.
	Theme *theme.Theme
}

// SelectionMessageResult is the option the user confirmed.
type SelectionMessageResult struct {
	SelectedIndex int
	SelectedValue any
}

// SelectionOption is one choice shown under the message.
type SelectionOption struct {
	DisplayName string
	Value       any
}

type selectionMessageController struct {
	message       string
	options       []SelectionOption
	selectedIndex int
	confirmButton constants.VirtualButton
	backButton    constants.VirtualButton
	disableBack   bool
	theme         theme.Theme
	labels        *labels.Labels
	cache         *internal.TextureCache
	inputDelay    time.Duration
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool
}

// SelectionMessage shows a message above a single option carousel. Left and
// right cycle through the options. Returns ErrCancelled on the back button.
func SelectionMessage(message string, options []SelectionOption, settings SelectionMessageSettings) (*SelectionMessageResult, error) {
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("selection_message", ErrNotInitialized)
	}

	c := &selectionMessageController{
		message:       message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		confirmButton: settings.ConfirmButton,
		backButton:    settings.BackButton,
		disableBack:   settings.DisableBackButton,
		theme:         internal.GetTheme(),
		labels:        labels.New(labelLanguage),
		cache:         internal.NewTextureCacheWithSize(32),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	defer c.cache.Destroy()

	if settings.Theme != nil {
		c.theme = *settings.Theme
	}
	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}

	for c.handleEvents() {
		c.render(window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}

	return &SelectionMessageResult{
		SelectedIndex: c.selectedIndex,
		SelectedValue: c.options[c.selectedIndex].Value,
	}, nil
}

func (c *selectionMessageController) handleEvents() bool {
	for _, ev := range internal.GetInputProcessor().Poll() {
		if ev.Quit {
			c.cancelled = true
			return false
		}
		if !ev.Pressed || ev.Text != "" {
			continue
		}

		if time.Since(c.lastInputTime) < c.inputDelay {
			continue
		}
		c.lastInputTime = time.Now()

		switch ev.Button {
		case constants.VirtualButtonLeft:
			c.selectedIndex = cycle(c.selectedIndex, -1, len(c.options))
		case constants.VirtualButtonRight:
			c.selectedIndex = cycle(c.selectedIndex, 1, len(c.options))
		case c.confirmButton, constants.VirtualButtonStart:
			c.confirmed = true
			return false
		case c.backButton, constants.VirtualButtonMenu:
			if !c.disableBack {
				c.cancelled = true
				return false
			}
		}
	}
	return true
}

func cycle(index, delta, n int) int {
	return ((index+delta)%n + n) % n
}

func (c *selectionMessageController) render(window *internal.Window) {
	renderer := window.Renderer
	window.Clear(c.theme.ScreenBackground)

	width, height := window.GetWidth(), window.GetHeight()
	messageFont := internal.Fonts.MediumFont
	optionFont := internal.Fonts.LargeFont

	maxWidth := internal.Percent(width, 80)
	lines := wrapLines(messageFont, c.message, maxWidth)
	lineHeight := int32(messageFont.Height())
	optionHeight := int32(optionFont.Height())
	spacing := optionHeight

	total := int32(len(lines))*lineHeight + spacing + optionHeight
	y := (height - total) / 2

	for _, line := range lines {
		rect := sdl.Rect{X: (width - maxWidth) / 2, Y: y, W: maxWidth, H: lineHeight}
		c.cache.DrawTextIn(renderer, messageFont, line, rect, constants.TextAlignCenter, c.theme.InputTextColor)
		y += lineHeight
	}
	y += spacing

	c.renderCarousel(renderer, sdl.Rect{X: 0, Y: y, W: width, H: optionHeight}, optionFont)

	unit := height / 48
	footerHeight := int32(internal.Fonts.SmallFont.Height()) + unit*2
	footer := sdl.Rect{Y: height - footerHeight, W: width, H: footerHeight}
	hints := []footerHint{{"A", c.labels.Get(labels.HintSelect)}}
	if !c.disableBack {
		hints = append(hints, footerHint{"B", c.labels.Get(labels.HintBack)})
	}
	drawFooter(renderer, c.cache, c.theme, footer, hints)

	window.Present()
}

// renderCarousel draws "<  Option  >" with the position below it.
func (c *selectionMessageController) renderCarousel(renderer *sdl.Renderer, row sdl.Rect, font *ttf.Font) {
	name := c.options[c.selectedIndex].DisplayName
	nameWidth := internal.TextWidth(font, name)
	arrowWidth := internal.TextWidth(font, "<")
	gap := arrowWidth * 2

	x := row.X + (row.W-nameWidth)/2
	left := sdl.Rect{X: x - gap - arrowWidth, Y: row.Y, W: arrowWidth, H: row.H}
	right := sdl.Rect{X: x + nameWidth + gap, Y: row.Y, W: arrowWidth, H: row.H}

	if len(c.options) > 1 {
		c.cache.DrawTextIn(renderer, font, "<", left, constants.TextAlignCenter, c.theme.ArrowColor())
		c.cache.DrawTextIn(renderer, font, ">", right, constants.TextAlignCenter, c.theme.ArrowColor())
	}
	c.cache.DrawTextIn(renderer, font, name, row, constants.TextAlignCenter, c.theme.SelectionColor)
}

// wrapLines breaks text on spaces so no line is wider than maxWidth.
// Explicit newlines are kept.
func wrapLines(font *ttf.Font, text string, maxWidth int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if current != "" && internal.TextWidth(font, candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
