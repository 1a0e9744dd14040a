package phoneinput

import (
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/icons"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/labels"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
	"github.com/veandco/go-sdl2/sdl"
)

// formLayout holds the rectangles of one form frame. unit is the base
// spacing, about 10px on a 480px tall screen.
type formLayout struct {
	unit      int32
	radius    int32
	container sdl.Rect
	label     sdl.Rect
	button    sdl.Rect
	field     sdl.Rect
	status    sdl.Rect
	keypad    sdl.Rect
	footer    sdl.Rect
}

// countryButtonPercent is the share of the input row taken by the country
// button for each layout.
var countryButtonPercent = map[Layout]int32{
	LayoutCodeInInput:    24,
	LayoutCodeInSelector: 32,
	LayoutCodeWithFlag:   35,
}

func (pc *phoneInputController) layoutForm() formLayout {
	width, height := pc.window.GetWidth(), pc.window.GetHeight()
	small := int32(internal.Fonts.SmallFont.Height())

	unit := height / 48
	if unit < 6 {
		unit = 6
	}

	l := formLayout{unit: unit, radius: unit + unit/5}
	margin := internal.Percent(width, 5)
	contentWidth := width - 2*margin
	y := unit * 3

	if !pc.settings.HideFooter {
		footerHeight := small + unit*2
		l.footer = sdl.Rect{X: 0, Y: height - footerHeight, W: width, H: footerHeight}
	} else {
		l.footer = sdl.Rect{X: 0, Y: height, W: width}
	}

	top := y
	if !pc.settings.HideLabel {
		l.label = sdl.Rect{X: margin, Y: y, W: contentWidth, H: small}
		y += small + unit
	}

	row := sdl.Rect{X: margin, Y: y, W: contentWidth, H: unit * 5}
	pct, ok := countryButtonPercent[pc.settings.Layout]
	if !ok {
		pct = countryButtonPercent[LayoutCodeInInput]
	}
	l.button, l.field = internal.SplitHorizontal(row, internal.Percent(row.W, pct), unit*2)
	y += row.H + unit

	l.status = sdl.Rect{X: margin, Y: y, W: contentWidth, H: small}
	y += small + unit*2

	l.container = internal.UniformPadding(-unit).Inset(sdl.Rect{X: margin, Y: top, W: contentWidth, H: row.Y + row.H - top})
	l.keypad = sdl.Rect{X: margin, Y: y, W: contentWidth, H: l.footer.Y - unit - y}
	return l
}

func (pc *phoneInputController) renderContext() RenderContext {
	return RenderContext{
		Renderer: pc.window.Renderer,
		Font:     internal.Fonts.MediumFont,
		Theme:    pc.theme,
		Disabled: pc.state().Disabled(),
	}
}

func (pc *phoneInputController) renderForm() {
	l := pc.layoutForm()
	pc.drawForm(l)
	if !pc.settings.HideFooter {
		pc.renderFooter(l.footer, pc.formHints())
	}
}

// drawForm draws everything but the footer, so the picker can reuse it as
// its backdrop.
func (pc *phoneInputController) drawForm(l formLayout) {
	renderer := pc.window.Renderer

	pc.window.Clear(pc.theme.ScreenBackground)
	internal.FillRoundedRect(renderer, l.container, l.radius, pc.theme.ContainerBackground)

	if !pc.settings.HideLabel {
		text := pc.labels.Or(pc.settings.Label, labels.PhoneNumberLabel)
		pc.cache.DrawTextIn(renderer, internal.Fonts.SmallFont, text, l.label, constants.TextAlignLeft, pc.theme.LabelTextColor)
	}

	pc.renderCountryButton(l)
	pc.renderNumberField(l)
	pc.renderStatus(l)

	if pc.keypadShown {
		pc.renderKeypad(l)
	}
}

// renderBox draws the rounded input background, its shadow and a focus ring.
func (pc *phoneInputController) renderBox(r sdl.Rect, radius int32, focused bool) {
	renderer := pc.window.Renderer

	if pc.settings.WithShadow {
		internal.DrawShadow(renderer, r, radius, pc.theme.ShadowColor)
	}
	internal.FillRoundedRect(renderer, r, radius, pc.theme.InputBackground)

	border := pc.theme.InputBorderColor
	if focused && !pc.state().Disabled() {
		border = pc.theme.SelectionColor
		internal.StrokeRoundedRect(renderer, internal.UniformPadding(1).Inset(r), radius-1, border)
	}
	internal.StrokeRoundedRect(renderer, r, radius, border)
}

func (pc *phoneInputController) renderCountryButton(l formLayout) {
	renderer := pc.window.Renderer
	record := pc.selectedCountry()
	ctx := pc.renderContext()

	pc.renderBox(l.button, l.radius, pc.focus == focusCountry)

	inner := internal.Symmetric(0, l.unit+l.unit/2).Inset(l.button)

	arrow := sdl.Rect{}
	if !pc.settings.DisableArrowIcon {
		size := l.button.H / 3
		arrow = sdl.Rect{X: inner.X + inner.W - size, Y: inner.Y, W: size, H: inner.H}
		inner.W -= size + l.unit/2
	}

	flagSize := pc.flagSize(l.button.H)
	flag := sdl.Rect{X: inner.X, Y: inner.Y + (inner.H-flagSize)/2, W: flagSize, H: flagSize}
	if pc.settings.Layout == LayoutCodeInInput {
		flag.X = inner.X + (inner.W-flagSize)/2
	}
	if pc.hooks.flag == nil || !pc.hooks.flag.RenderFlag(ctx, record, flag) {
		pc.drawFlag(record, flag)
	}

	textColor := pc.theme.CodeTextColor
	if pc.settings.Layout == LayoutCodeInSelector {
		textColor = pc.theme.InputTextColor
	}
	if pc.state().Disabled() {
		textColor = pc.theme.PlaceholderTextColor
	}

	switch pc.settings.Layout {
	case LayoutCodeWithFlag, LayoutCodeInSelector:
		code := sdl.Rect{X: flag.X + flag.W + l.unit/2, Y: inner.Y, W: inner.X + inner.W - flag.X - flag.W - l.unit/2, H: inner.H}
		pc.cache.DrawTextIn(renderer, internal.Fonts.MediumFont, record.FormattedCallingCode(), code, constants.TextAlignLeft, textColor)
	}

	if !pc.settings.DisableArrowIcon {
		if pc.hooks.dropdown == nil || !pc.hooks.dropdown.RenderDropdownIcon(ctx, arrow) {
			pc.cache.DrawIcon(renderer, icons.ChevronDown, arrow, pc.theme.ArrowColor())
		}
	}
}

// flagSize scales the theme's flag size, which assumes a 50px tall row.
func (pc *phoneInputController) flagSize(rowHeight int32) int32 {
	size := pc.theme.FlagSize * rowHeight / 50
	if limit := rowHeight * 4 / 5; size > limit {
		size = limit
	}
	if size < 8 {
		size = 8
	}
	return size
}

// drawFlag draws the built-in flag badge: the country code on a color unique
// to the country, clipped to the theme's flag shape.
func (pc *phoneInputController) drawFlag(record country.Record, r sdl.Rect) {
	renderer := pc.window.Renderer

	radius := r.W / 2
	if pc.theme.FlagShape != theme.FlagShapeRound && pc.theme.FlagSize > 0 {
		radius = pc.theme.FlagRadius() * r.W / pc.theme.FlagSize
	}

	fill := theme.FlagBadgeColor(record.Code)
	internal.FillRoundedRect(renderer, r, radius, fill)
	pc.cache.DrawTextIn(renderer, internal.Fonts.SmallFont, record.Code, r, constants.TextAlignCenter, theme.ContrastText(fill))
}

func (pc *phoneInputController) renderNumberField(l formLayout) {
	renderer := pc.window.Renderer
	st := pc.state()
	focused := pc.focus == focusNumber

	view := InputView{
		Value:       st.Number(),
		Placeholder: pc.labels.Or(pc.settings.Placeholder, labels.Placeholder),
		Focused:     focused,
		Disabled:    st.Disabled(),
	}
	if pc.settings.Layout == LayoutCodeInInput {
		view.CallingCode = pc.handle.CallingCode()
	}

	if pc.hooks.input != nil && pc.hooks.input.RenderInput(pc.renderContext(), view, l.field) {
		return
	}

	pc.renderBox(l.field, l.radius, focused)

	inner := internal.Symmetric(0, l.unit+l.unit/2).Inset(l.field)
	font := internal.Fonts.MediumFont

	if view.CallingCode != "" {
		code := "+" + view.CallingCode
		w := pc.cache.DrawTextIn(renderer, font, code, inner, constants.TextAlignLeft, pc.theme.CodeTextColor)
		_, inner = internal.SplitHorizontal(inner, w, l.unit)
	}

	text, textColor := view.Value, pc.theme.InputTextColor
	if st.Disabled() {
		textColor = pc.theme.PlaceholderTextColor
	}
	if text == "" {
		text, textColor = view.Placeholder, pc.theme.PlaceholderTextColor
	}

	// Keep the end of a long number visible, where the cursor is.
	shown := text
	if view.Value != "" {
		for internal.TextWidth(font, shown) > inner.W-l.unit && len([]rune(shown)) > 1 {
			shown = string([]rune(shown)[1:])
		}
	}
	w := pc.cache.DrawTextIn(renderer, font, shown, inner, constants.TextAlignLeft, textColor)

	if focused && !st.Disabled() && pc.cursorVisible {
		cursorX := inner.X + w + 2
		if view.Value == "" {
			cursorX = inner.X
		}
		height := int32(font.Height())
		internal.SetDrawColor(renderer, pc.theme.SelectionColor)
		renderer.FillRect(&sdl.Rect{X: cursorX, Y: inner.Y + (inner.H-height)/2, W: 2, H: height})
	}
}

// renderStatus shows the international form of the number and whether it
// validates for the selected country.
func (pc *phoneInputController) renderStatus(l formLayout) {
	formatted := pc.handle.FormattedText()
	if formatted == "" {
		return
	}

	renderer := pc.window.Renderer
	font := internal.Fonts.SmallFont

	verdict, verdictColor := pc.labels.Get(labels.Invalid), pc.theme.PlaceholderTextColor
	if pc.handle.IsValid() {
		verdict, verdictColor = pc.labels.Get(labels.Valid), pc.theme.SelectionColor
	}

	w := pc.cache.DrawTextIn(renderer, font, formatted, l.status, constants.TextAlignLeft, pc.theme.DropdownTextColor)
	_, rest := internal.SplitHorizontal(l.status, w, l.unit*2)
	pc.cache.DrawTextIn(renderer, font, verdict, rest, constants.TextAlignLeft, verdictColor)
}

type footerHint struct {
	button string
	text   string
}

func (pc *phoneInputController) formHints() []footerHint {
	hints := []footerHint{
		{"A", pc.labels.Get(labels.HintSelect)},
		{"B", pc.labels.Get(labels.HintBack)},
	}
	if !pc.state().Disabled() {
		hints = append(hints,
			footerHint{"X", pc.labels.Get(labels.HintCountry)},
			footerHint{"Y", pc.labels.Get(labels.HintKeypad)},
			footerHint{"SELECT", pc.labels.Get(labels.HintClear)},
		)
	}
	return append(hints, footerHint{"START", pc.labels.Get(labels.HintDone)})
}

func (pc *phoneInputController) renderFooter(r sdl.Rect, hints []footerHint) {
	drawFooter(pc.window.Renderer, pc.cache, pc.theme, r, hints)
}

// drawFooter draws button hints as pills along the bottom edge.
func drawFooter(renderer *sdl.Renderer, cache *internal.TextureCache, t theme.Theme, r sdl.Rect, hints []footerHint) {
	font := internal.Fonts.SmallFont
	pad := r.H / 4
	x := r.X + pad*2

	for _, hint := range hints {
		pillWidth := internal.TextWidth(font, hint.button) + pad*2
		pill := sdl.Rect{X: x, Y: r.Y + pad/2, W: pillWidth, H: r.H - pad}
		if pill.X+pill.W > r.X+r.W {
			return
		}

		internal.FillRoundedRect(renderer, pill, pill.H/2, t.HighlightColor)
		cache.DrawTextIn(renderer, font, hint.button, pill, constants.TextAlignCenter, t.HighlightedTextColor)
		x += pillWidth + pad

		textWidth := internal.TextWidth(font, hint.text)
		label := sdl.Rect{X: x, Y: r.Y, W: textWidth, H: r.H}
		cache.DrawTextIn(renderer, font, hint.text, label, constants.TextAlignLeft, t.LabelTextColor)
		x += textWidth + pad*3
	}
}
