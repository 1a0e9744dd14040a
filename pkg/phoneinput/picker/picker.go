// Package picker keeps the focus and scroll position of the country list.
package picker

import "github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"

// List is the scrolling window over the filtered countries.
type List struct {
	rows    []country.Record
	focused int
	top     int
	visible int
}

// New returns an empty List showing one row at a time until Resize is called.
func New() *List {
	return &List{visible: 1}
}

// Reset replaces the rows and focuses the row with code, or the first row.
func (l *List) Reset(rows []country.Record, code string) {
	l.rows = rows
	l.focused = 0
	l.top = 0
	for i, r := range rows {
		if r.Code == code {
			l.focused = i
			break
		}
	}
	l.scrollIntoView()
}

// SetRows replaces the rows after a search change and focuses the first one.
func (l *List) SetRows(rows []country.Record) {
	l.Reset(rows, "")
}

// Resize sets how many rows fit on screen.
func (l *List) Resize(visible int) {
	if visible < 1 {
		visible = 1
	}
	l.visible = visible
	l.scrollIntoView()
}

func (l *List) Rows() []country.Record {
	return l.rows
}

// Focused is the focused row index, or -1 when the list is empty.
func (l *List) Focused() int {
	if len(l.rows) == 0 {
		return -1
	}
	return l.focused
}

// FocusedRecord returns the focused country.
func (l *List) FocusedRecord() (country.Record, bool) {
	if len(l.rows) == 0 {
		return country.Record{}, false
	}
	return l.rows[l.focused], true
}

// Top is the index of the first visible row.
func (l *List) Top() int {
	return l.top
}

func (l *List) Visible() int {
	return l.visible
}

// Window returns the rows currently on screen.
func (l *List) Window() []country.Record {
	end := l.top + l.visible
	if end > len(l.rows) {
		end = len(l.rows)
	}
	return l.rows[l.top:end]
}

// Move shifts focus by delta rows. Single steps wrap around the ends,
// larger jumps stop at them.
func (l *List) Move(delta int) {
	n := len(l.rows)
	if n == 0 || delta == 0 {
		return
	}

	next := l.focused + delta
	switch {
	case delta == 1 || delta == -1:
		next = (next + n) % n
	case next < 0:
		next = 0
	case next >= n:
		next = n - 1
	}

	l.focused = next
	l.scrollIntoView()
}

// Page moves focus by one screen.
func (l *List) Page(direction int) {
	if direction < 0 {
		l.Move(-l.visible)
		return
	}
	l.Move(l.visible)
}

// scrollIntoView scrolls as little as needed to show the focused row.
func (l *List) scrollIntoView() {
	if l.focused < l.top {
		l.top = l.focused
	}
	if l.focused >= l.top+l.visible {
		l.top = l.focused - l.visible + 1
	}
	if maxTop := len(l.rows) - l.visible; l.top > maxTop {
		l.top = maxTop
	}
	if l.top < 0 {
		l.top = 0
	}
}
