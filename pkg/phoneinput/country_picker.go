package phoneinput

import (
	"time"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/icons"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/keypad"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/labels"
	"github.com/veandco/go-sdl2/sdl"
)

// runPicker runs the country picker until it closes or the user leaves.
func (pc *phoneInputController) runPicker() error {
	processor := internal.GetInputProcessor()

	for {
		for _, ev := range processor.Poll() {
			pc.handlePickerEvent(ev)
			if pc.done() || !pc.state().PickerOpen() {
				return nil
			}
		}

		if d := pc.repeater.Next(); d != internal.DirectionNone {
			pc.navigatePicker(d)
		}

		pc.updateCursorBlink()

		if err := pc.renderFrame(pc.renderPicker); err != nil {
			return err
		}
	}
}

func (pc *phoneInputController) handlePickerEvent(ev internal.Event) {
	switch {
	case ev.Quit:
		pc.cancelled = true
		return
	case ev.Text != "":
		if !pc.settings.HideSearch {
			pc.setSearch(pc.state().SearchQuery() + ev.Text)
		}
		return
	}

	if !ev.Pressed {
		pc.repeater.Track(ev.Button, false)
		return
	}

	if ev.Button.IsDirectional() {
		if time.Since(pc.lastInputTime) < pc.inputDelay {
			return
		}
		pc.lastInputTime = time.Now()
		pc.repeater.Track(ev.Button, true)
		pc.navigatePicker(internal.DirectionFor(ev.Button))
		return
	}

	switch ev.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if record, ok := pc.picker.FocusedRecord(); ok {
			pc.handle.Dispatch(controller.SelectCountry{Code: record.Code})
		}
	case constants.VirtualButtonB:
		if query := pc.state().SearchQuery(); query != "" {
			pc.setSearch(keypad.Backspace(query))
			return
		}
		pc.handle.Dispatch(controller.ClosePicker{})
	case constants.VirtualButtonSelect:
		pc.setSearch("")
	case constants.VirtualButtonL1:
		pc.picker.Page(-1)
	case constants.VirtualButtonR1:
		pc.picker.Page(1)
	case constants.VirtualButtonX, constants.VirtualButtonMenu:
		pc.handle.Dispatch(controller.ClosePicker{})
	}
}

func (pc *phoneInputController) setSearch(query string) {
	if query == pc.state().SearchQuery() {
		return
	}
	pc.handle.Dispatch(controller.UpdateSearch{Query: query})
	pc.picker.SetRows(pc.handle.Controller().VisibleCountries(pc.state()))
	pc.resetCursorBlink()
}

func (pc *phoneInputController) navigatePicker(d internal.Direction) {
	switch d {
	case internal.DirectionUp:
		pc.picker.Move(-1)
	case internal.DirectionDown:
		pc.picker.Move(1)
	case internal.DirectionLeft:
		pc.picker.Page(-1)
	case internal.DirectionRight:
		pc.picker.Page(1)
	}
}

// pickerLayout holds the rectangles of the picker panel.
type pickerLayout struct {
	panel  sdl.Rect
	title  sdl.Rect
	search sdl.Rect
	list   sdl.Rect
	cancel sdl.Rect
	rowH   int32
	radius int32
}

func (pc *phoneInputController) layoutPicker(form formLayout) pickerLayout {
	width, height := pc.window.GetWidth(), pc.window.GetHeight()
	unit := form.unit

	margin := internal.Percent(height, 5)
	panel := internal.CenterIn(sdl.Rect{W: width, H: height}, internal.Percent(width, 90), form.footer.Y-margin*2)
	panel.Y = margin

	l := pickerLayout{panel: panel, radius: unit, rowH: unit * 5}

	y := panel.Y
	titleHeight := int32(internal.Fonts.LargeFont.Height()) + unit*2
	l.title = sdl.Rect{X: panel.X, Y: y, W: panel.W, H: titleHeight}
	y += titleHeight

	if !pc.settings.HideSearch {
		l.search = sdl.Rect{X: panel.X + unit/2, Y: y + unit/2, W: panel.W - unit, H: unit * 4}
		y += unit*5 + 1
	}

	cancelHeight := int32(internal.Fonts.MediumFont.Height()) + unit*3
	l.cancel = sdl.Rect{X: panel.X, Y: panel.Y + panel.H - cancelHeight, W: panel.W, H: cancelHeight}
	l.list = sdl.Rect{X: panel.X, Y: y, W: panel.W, H: l.cancel.Y - y}
	return l
}

func (pc *phoneInputController) pickerHints() []footerHint {
	return []footerHint{
		{"A", pc.labels.Get(labels.HintSelect)},
		{"B", pc.labels.Get(labels.HintBack)},
		{"SELECT", pc.labels.Get(labels.HintClear)},
	}
}

func (pc *phoneInputController) renderPicker() {
	form := pc.layoutForm()
	l := pc.layoutPicker(form)

	pc.picker.Resize(int(l.list.H / l.rowH))

	pc.drawForm(form)
	if !pc.settings.HideFooter {
		defer pc.renderFooter(form.footer, pc.pickerHints())
	}

	if pc.hooks.modal != nil {
		view := ModalView{
			Title:       pc.labels.Or(pc.settings.PickerTitle, labels.PickerTitle),
			Countries:   pc.picker.Rows(),
			SearchText:  pc.state().SearchQuery(),
			ShowSearch:  !pc.settings.HideSearch,
			Focused:     pc.picker.Focused(),
			FirstRow:    pc.picker.Top(),
			VisibleRows: pc.picker.Visible(),
			Bounds:      pc.window.Bounds(),
		}
		if pc.hooks.modal.RenderCountryModal(pc.renderContext(), view) {
			return
		}
	}

	renderer := pc.window.Renderer
	bounds := pc.window.Bounds()
	internal.SetDrawColor(renderer, pc.theme.ModalOverlay)
	renderer.FillRect(&bounds)

	if pc.settings.WithShadow {
		internal.DrawShadow(renderer, l.panel, l.radius, pc.theme.ShadowColor)
	}
	internal.FillRoundedRect(renderer, l.panel, l.radius, pc.theme.ModalBackground)

	pad := internal.Symmetric(0, form.unit*2)
	title := pc.labels.Or(pc.settings.PickerTitle, labels.PickerTitle)
	pc.cache.DrawTextIn(renderer, internal.Fonts.LargeFont, title, pad.Inset(l.title), constants.TextAlignLeft, pc.theme.InputTextColor)
	pc.separator(l.panel.X, l.title.Y+l.title.H, l.panel.W)

	if !pc.settings.HideSearch {
		pc.renderSearch(l, form.unit)
		pc.separator(l.panel.X, l.search.Y+l.search.H+form.unit/2, l.panel.W)
	}

	pc.renderCountryList(l, form.unit)

	pc.separator(l.panel.X, l.cancel.Y, l.panel.W)
	pc.cache.DrawTextIn(renderer, internal.Fonts.MediumFont, pc.labels.Get(labels.Cancel), l.cancel, constants.TextAlignCenter, pc.theme.DropdownTextColor)
}

func (pc *phoneInputController) separator(x, y, w int32) {
	internal.SetDrawColor(pc.window.Renderer, pc.theme.ModalBorderColor)
	pc.window.Renderer.DrawLine(x, y, x+w-1, y)
}

func (pc *phoneInputController) renderSearch(l pickerLayout, unit int32) {
	renderer := pc.window.Renderer
	font := internal.Fonts.MediumFont

	internal.FillRoundedRect(renderer, l.search, unit-unit/5, pc.theme.InputBackground)

	inner := internal.Symmetric(0, unit+unit/5).Inset(l.search)
	iconRect, inner := internal.SplitHorizontal(inner, l.search.H/2, unit)
	pc.cache.DrawIcon(renderer, icons.Search, iconRect, pc.theme.PlaceholderTextColor)

	query := pc.state().SearchQuery()
	if query == "" {
		placeholder := pc.labels.Or(pc.settings.SearchPlaceholder, labels.SearchPlaceholder)
		pc.cache.DrawTextIn(renderer, font, placeholder, inner, constants.TextAlignLeft, pc.theme.PlaceholderTextColor)
	}
	w := pc.cache.DrawTextIn(renderer, font, query, inner, constants.TextAlignLeft, pc.theme.InputTextColor)

	if pc.cursorVisible {
		height := int32(font.Height())
		internal.SetDrawColor(renderer, pc.theme.SelectionColor)
		renderer.FillRect(&sdl.Rect{X: inner.X + w + 1, Y: inner.Y + (inner.H-height)/2, W: 2, H: height})
	}
}

func (pc *phoneInputController) renderCountryList(l pickerLayout, unit int32) {
	renderer := pc.window.Renderer

	if len(pc.picker.Rows()) == 0 {
		pc.cache.DrawTextIn(renderer, internal.Fonts.MediumFont, pc.labels.Get(labels.NoCountries), l.list, constants.TextAlignCenter, pc.theme.PlaceholderTextColor)
		return
	}

	ctx := pc.renderContext()
	focused := pc.picker.Focused()

	for i, record := range pc.picker.Window() {
		index := pc.picker.Top() + i
		row := sdl.Rect{X: l.list.X, Y: l.list.Y + int32(i)*l.rowH, W: l.list.W, H: l.rowH}
		isFocused := index == focused

		if pc.hooks.item != nil && pc.hooks.item.RenderCountryItem(ctx, record, row, isFocused) {
			continue
		}
		pc.renderCountryItem(record, row, isFocused, unit)
	}
}

// renderCountryItem draws flag, name and calling code, like a list cell.
func (pc *phoneInputController) renderCountryItem(record country.Record, row sdl.Rect, focused bool, unit int32) {
	renderer := pc.window.Renderer

	nameColor, codeColor := pc.theme.InputTextColor, pc.theme.DropdownTextColor
	if focused {
		internal.FillRoundedRect(renderer, internal.Symmetric(1, unit/2).Inset(row), unit/2, pc.theme.HighlightColor)
		nameColor, codeColor = pc.theme.HighlightedTextColor, pc.theme.HighlightedTextColor
	}

	inner := internal.Symmetric(0, unit*2).Inset(row)

	flagSize := pc.flagSize(row.H) * 4 / 5
	flag := sdl.Rect{X: inner.X, Y: inner.Y + (inner.H-flagSize)/2, W: flagSize, H: flagSize}
	pc.drawFlag(record, flag)

	_, text := internal.SplitHorizontal(inner, flagSize, unit+unit/2)
	code := record.FormattedCallingCode()
	codeWidth := internal.TextWidth(internal.Fonts.SmallFont, code)
	name, codeRect := internal.SplitHorizontal(text, text.W-codeWidth, 0)
	name.W -= unit

	pc.cache.DrawTextIn(renderer, internal.Fonts.MediumFont, record.Name, name, constants.TextAlignLeft, nameColor)
	pc.cache.DrawTextIn(renderer, internal.Fonts.SmallFont, code, codeRect, constants.TextAlignRight, codeColor)

	internal.SetDrawColor(renderer, pc.theme.ModalBorderColor)
	renderer.DrawLine(row.X+unit*2, row.Y+row.H-1, row.X+row.W-unit*2, row.Y+row.H-1)
}
