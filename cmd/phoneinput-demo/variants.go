package main

import (
	"strings"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
)

// variant is one section of the demo menu.
type variant struct {
	id     string
	title  string
	layout phoneinput.Layout
	theme  []theme.Overrides
	hooks  any
}

func int32Ptr(v int32) *int32 { return &v }

var variants = []variant{
	{
		id:     "codeInInput",
		title:  "Calling code in the input",
		layout: phoneinput.LayoutCodeInInput,
	},
	{
		id:     "codeInSelector",
		title:  "Calling code in the selector",
		layout: phoneinput.LayoutCodeInSelector,
	},
	{
		id:     "roundFlags",
		title:  "Round flags",
		layout: phoneinput.LayoutCodeInInput,
		theme: []theme.Overrides{{
			FlagShape: theme.FlagShapeRound,
			FlagSize:  int32Ptr(30),
		}},
	},
	{
		id:     "squareFlags",
		title:  "Square flags",
		layout: phoneinput.LayoutCodeInSelector,
		theme: []theme.Overrides{{
			FlagShape:        theme.FlagShapeSquare,
			FlagBorderRadius: int32Ptr(4),
			FlagSize:         int32Ptr(26),
		}},
	},
	{
		id:     "codeWithFlag",
		title:  "Calling code next to the flag",
		layout: phoneinput.LayoutCodeWithFlag,
	},
	{
		id:     "customModal",
		title:  "Custom country picker",
		layout: phoneinput.LayoutCodeInInput,
		theme: []theme.Overrides{{
			HighlightColor:       "#34C759",
			HighlightedTextColor: "#FFFFFF",
		}},
		hooks: compactModal{},
	},
}

func findVariant(id string) (int, bool) {
	for i, v := range variants {
		if strings.EqualFold(v.id, id) {
			return i, true
		}
	}
	return 0, false
}
