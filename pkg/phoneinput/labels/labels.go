// Package labels provides the translated strings shown by the phone input:
// the field label, placeholders, picker title and buttons. Country names are
// not translated.
package labels

import (
	"embed"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// LangEnvVar overrides the label language when no language is given.
const LangEnvVar = "PHONEINPUT_LANG"

// Message IDs.
const (
	PhoneNumberLabel  = "PhoneNumberLabel"
	CodeLabel         = "CodeLabel"
	Placeholder       = "Placeholder"
	SearchPlaceholder = "SearchPlaceholder"
	PickerTitle       = "PickerTitle"
	Cancel            = "Cancel"
	NoCountries       = "NoCountries"
	Valid             = "Valid"
	Invalid           = "Invalid"

	HintSelect  = "HintSelect"
	HintBack    = "HintBack"
	HintCountry = "HintCountry"
	HintKeypad  = "HintKeypad"
	HintDone    = "HintDone"
	HintClear   = "HintClear"
)

var defaults = map[string]string{
	PhoneNumberLabel:  "Mobile number",
	CodeLabel:         "Code",
	Placeholder:       "(415) 555-0132",
	SearchPlaceholder: "Search countries...",
	PickerTitle:       "Select Country",
	Cancel:            "Cancel",
	NoCountries:       "No countries found",
	Valid:             "Valid",
	Invalid:           "Invalid",

	HintSelect:  "Select",
	HintBack:    "Back",
	HintCountry: "Country",
	HintKeypad:  "Keypad",
	HintDone:    "Done",
	HintClear:   "Clear",
}

//go:embed locales/*.toml
var locales embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := locales.ReadDir("locales")
		if err != nil {
			return
		}
		for _, e := range entries {
			name := path.Join("locales", e.Name())
			data, err := locales.ReadFile(name)
			if err != nil {
				continue
			}
			bundle.MustParseMessageFileBytes(data, name)
		}
	})
	return bundle
}

// Labels resolves messages for one language preference list.
type Labels struct {
	localizer *i18n.Localizer
}

// New returns Labels for the given languages (BCP 47 tags or Accept-Language
// strings), falling back to PHONEINPUT_LANG and then English.
func New(langs ...string) *Labels {
	langs = append(langs, os.Getenv(LangEnvVar), language.English.String())
	return &Labels{localizer: i18n.NewLocalizer(loadBundle(), langs...)}
}

// Get returns the message for id. Unknown ids return the id itself.
func (l *Labels) Get(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: defaults[id]},
	})
	if err != nil || msg == "" {
		if d, ok := defaults[id]; ok {
			return d
		}
		return id
	}
	return msg
}

// Or returns override when it is not blank, otherwise the message for id.
func (l *Labels) Or(override, id string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return l.Get(id)
}

// Languages lists the languages with bundled translations.
func Languages() []string {
	tags := loadBundle().LanguageTags()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
