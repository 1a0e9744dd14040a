package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/router"
)

const (
	screenMenu router.Screen = iota
	screenWidget
	screenSummary
)

type summaryAction int

const (
	actionMenu summaryAction = iota
	actionEdit
	actionQuit
)

// session is the value passed between demo screens.
type session struct {
	variant int
	result  *phoneinput.PhoneInputResult
	resume  *controller.State
	next    summaryAction
	quit    bool
}

type app struct {
	flags  demoFlags
	dir    *country.Directory
	logger *slog.Logger
}

func newApp(f demoFlags, dir *country.Directory) *app {
	return &app{flags: f, dir: dir, logger: phoneinput.GetLogger()}
}

func (a *app) run() error {
	start := screenMenu
	s := &session{}
	if a.flags.variant != "" {
		s.variant, _ = findVariant(a.flags.variant)
		start = screenWidget
	}

	_, err := router.New[*session]().
		Register(screenMenu, a.menu).
		Register(screenWidget, a.widget).
		Register(screenSummary, a.summary).
		OnTransition(transition).
		OnEnter(func(screen router.Screen, s *session) {
			a.logger.Debug("Entering screen", "screen", int(screen), "variant", variants[s.variant].id)
		}).
		Run(start, s)
	return err
}

func transition(from router.Screen, s *session, history *router.Stack) router.Screen {
	if s.quit {
		return router.ScreenExit
	}

	switch from {
	case screenMenu:
		return screenWidget
	case screenWidget:
		if s.result == nil {
			return screenMenu
		}
		return screenSummary
	case screenSummary:
		if s.next == actionEdit {
			return screenWidget
		}
		return screenMenu
	}
	return router.ScreenExit
}

func (a *app) menu(s *session) (*session, error) {
	options := make([]phoneinput.SelectionOption, 0, len(variants)+1)
	for i, v := range variants {
		options = append(options, phoneinput.SelectionOption{DisplayName: v.title, Value: i})
	}
	options = append(options, phoneinput.SelectionOption{DisplayName: "Quit", Value: -1})

	res, err := phoneinput.SelectionMessage("Choose a phone input variant", options,
		phoneinput.SelectionMessageSettings{InitialSelection: s.variant})
	if err != nil {
		if phoneinput.IsCancelled(err) {
			s.quit = true
			return s, nil
		}
		return s, err
	}

	index := res.SelectedValue.(int)
	if index < 0 {
		s.quit = true
		return s, nil
	}

	s.variant = index
	s.result = nil
	s.resume = nil
	return s, nil
}

func (a *app) widget(s *session) (*session, error) {
	v := variants[s.variant]
	settings := a.settings(v)
	settings.InitialState = s.resume

	res, err := phoneinput.PhoneInput(settings)
	if err != nil {
		if errors.Is(err, phoneinput.ErrCancelled) {
			a.logger.Info("Phone input cancelled", "variant", v.id)
			s.result = nil
			return s, nil
		}
		return s, err
	}

	a.logger.Info("Phone input submitted",
		"variant", v.id,
		"country", res.CountryCode,
		"number", res.Number,
		"formatted", res.FormattedText,
		"valid", res.Valid)

	s.result = res
	return s, nil
}

func (a *app) settings(v variant) phoneinput.PhoneInputSettings {
	layout := v.layout
	if a.flags.layout != "" {
		layout, _ = phoneinput.ParseLayout(a.flags.layout)
	}

	return phoneinput.PhoneInputSettings{
		Directory:      a.dir,
		DefaultCode:    country.NormalizeCode(a.flags.country),
		Value:          a.flags.number,
		Disabled:       a.flags.disabled,
		Layout:         layout,
		ThemeOverrides: v.theme,
		Hooks:          v.hooks,
		ShowKeypad:     a.flags.keypadUI,
		WithShadow:     true,
		Callbacks: controller.Callbacks{
			OnChangeCountry: func(c country.Record) {
				a.logger.Debug("Country changed", "code", c.Code, "calling_code", c.CallingCode)
			},
			OnChangeText: func(text string) {
				a.logger.Debug("Text changed", "text", text)
			},
			OnChangeFormattedText: func(formatted string) {
				a.logger.Debug("Formatted text changed", "formatted", formatted)
			},
		},
	}
}

func (a *app) summary(s *session) (*session, error) {
	options := []phoneinput.SelectionOption{
		{DisplayName: "Back to menu", Value: actionMenu},
		{DisplayName: "Edit again", Value: actionEdit},
		{DisplayName: "Quit", Value: actionQuit},
	}

	res, err := phoneinput.SelectionMessage(summaryText(s.result), options, phoneinput.SelectionMessageSettings{})
	if err != nil {
		if phoneinput.IsCancelled(err) {
			s.next = actionMenu
			return s, nil
		}
		return s, err
	}

	s.next = res.SelectedValue.(summaryAction)
	switch s.next {
	case actionEdit:
		state := s.result.State
		s.resume = &state
	case actionQuit:
		s.quit = true
	}
	return s, nil
}

func summaryText(r *phoneinput.PhoneInputResult) string {
	valid := "no"
	if r.Valid {
		valid = "yes"
	}
	formatted := r.FormattedText
	if formatted == "" {
		formatted = "-"
	}
	return fmt.Sprintf("Country: %s (+%s)\nValue: %s\nFormatted: %s\nValid: %s",
		r.Country.Name, r.CallingCode, r.Number, formatted, valid)
}
