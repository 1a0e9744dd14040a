// Package keypad models the on-screen numeric keypad and the editing rules
// for the number field: which characters are accepted, how long a number may
// get and how backspace treats multi-byte input.
package keypad

import (
	"strings"
	"unicode/utf8"
)

// Kind is what pressing a key does.
type Kind int

const (
	KindText      Kind = iota // Types Label
	KindBackspace             // Deletes the last character
	KindDone                  // Submits the number
)

// Key is one keypad key. Keys may span several columns.
type Key struct {
	Label string
	Kind  Kind
	Row   int
	Col   int
	Span  int
}

// Move is a d-pad direction.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Rows and Cols are the grid the keys occupy.
const (
	Rows = 5
	Cols = 3
)

// DefaultKeys is a phone keypad with "+" next to zero and a full-width done key.
func DefaultKeys(doneLabel string) []Key {
	keys := make([]Key, 0, 13)
	for i, label := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		keys = append(keys, Key{Label: label, Kind: KindText, Row: i / 3, Col: i % 3, Span: 1})
	}
	return append(keys,
		Key{Label: "+", Kind: KindText, Row: 3, Col: 0, Span: 1},
		Key{Label: "0", Kind: KindText, Row: 3, Col: 1, Span: 1},
		Key{Label: "", Kind: KindBackspace, Row: 3, Col: 2, Span: 1},
		Key{Label: doneLabel, Kind: KindDone, Row: 4, Col: 0, Span: Cols},
	)
}

// Keypad tracks the selected key.
type Keypad struct {
	keys     []Key
	selected int
	col      int // column to return to when leaving a wide key
}

// New creates a Keypad with "1" selected.
func New(doneLabel string) *Keypad {
	return &Keypad{keys: DefaultKeys(doneLabel)}
}

func (k *Keypad) Keys() []Key {
	return k.keys
}

// Selected returns the index of the selected key.
func (k *Keypad) Selected() int {
	return k.selected
}

func (k *Keypad) SelectedKey() Key {
	return k.keys[k.selected]
}

// Reset selects the first key.
func (k *Keypad) Reset() {
	k.selected = 0
	k.col = 0
}

func (k *Keypad) keyAt(row, col int) int {
	for i, key := range k.keys {
		if key.Row == row && col >= key.Col && col < key.Col+key.Span {
			return i
		}
	}
	return -1
}

// Navigate moves the selection. It returns false when moving up from the
// top row, which leaves the keypad; the selection is unchanged then.
// Left and right wrap within a row.
func (k *Keypad) Navigate(m Move) bool {
	cur := k.keys[k.selected]
	if cur.Span == 1 {
		k.col = cur.Col
	}

	row, col := cur.Row, k.col
	switch m {
	case MoveUp:
		if row == 0 {
			return false
		}
		row--
	case MoveDown:
		if row == Rows-1 {
			return true
		}
		row++
	case MoveLeft:
		col = (cur.Col - 1 + Cols) % Cols
	case MoveRight:
		col = (cur.Col + cur.Span) % Cols
	}

	if i := k.keyAt(row, col); i >= 0 {
		k.selected = i
		if k.keys[i].Span == 1 {
			k.col = col
		}
	}
	return true
}

// Allowed reports whether r may appear in a phone number as typed.
func Allowed(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune("+ -()", r)
}

// Filter drops characters that cannot be part of a phone number.
func Filter(text string) string {
	return strings.Map(func(r rune) rune {
		if Allowed(r) {
			return r
		}
		return -1
	}, text)
}

// Append adds the accepted characters of text to number, stopping at max
// characters. A max of zero or less means no limit.
func Append(number, text string, max int) string {
	text = Filter(text)
	if max <= 0 {
		return number + text
	}
	room := max - utf8.RuneCountInString(number)
	if room <= 0 {
		return number
	}
	if utf8.RuneCountInString(text) > room {
		text = string([]rune(text)[:room])
	}
	return number + text
}

// Backspace removes the last character of number.
func Backspace(number string) string {
	if number == "" {
		return ""
	}
	_, size := utf8.DecodeLastRuneInString(number)
	return number[:len(number)-size]
}
