package controller

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
)

type event struct {
	name  string
	value string
}

// ControllerSuite exercises the transition rules against a small directory.
type ControllerSuite struct {
	suite.Suite
	dir    *country.Directory
	events []event
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	dir, err := country.New([]country.Record{
		{Code: "US", Name: "United States", CallingCode: "1"},
		{Code: "GB", Name: "United Kingdom", CallingCode: "44"},
		{Code: "CA", Name: "Canada", CallingCode: "1"},
		{Code: "FR", Name: "France", CallingCode: "33"},
	})
	s.Require().NoError(err)
	s.dir = dir
	s.events = nil
}

func (s *ControllerSuite) recording() *Controller {
	return New(s.dir, Config{Callbacks: Callbacks{
		OnChangeCountry: func(r country.Record) {
			s.events = append(s.events, event{"country", r.Code})
		},
		OnChangeText: func(text string) {
			s.events = append(s.events, event{"text", text})
		},
		OnChangeFormattedText: func(formatted string) {
			s.events = append(s.events, event{"formatted", formatted})
		},
	}})
}

func (s *ControllerSuite) equalState(want, got State) {
	s.T().Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(State{})); diff != "" {
		s.Failf("state mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *ControllerSuite) TestInitialize() {
	c := New(s.dir, Config{})

	s.Run("defaults", func() {
		st := c.Initialize(InitOptions{})
		s.Equal("US", st.CountryCode())
		s.Equal("1", st.CallingCode())
		s.Equal("", st.Number())
		s.False(st.Disabled())
		s.Equal(ModeIdle, st.Mode())
	})

	s.Run("unknown country falls back to default", func() {
		s.equalState(c.Initialize(InitOptions{}), c.Initialize(InitOptions{DefaultCode: "ZZ"}))
	})

	s.Run("known country", func() {
		st := c.Initialize(InitOptions{DefaultCode: "GB"})
		s.Equal("GB", st.CountryCode())
		s.Equal("44", st.CallingCode())
	})

	s.Run("number is kept verbatim", func() {
		st := c.Initialize(InitOptions{Value: "07911 123-456"})
		s.Equal("07911 123-456", st.Number())
	})

	s.Run("value wins over default value", func() {
		s.Equal("111", c.Initialize(InitOptions{Value: "111", DefaultValue: "222"}).Number())
		s.Equal("222", c.Initialize(InitOptions{DefaultValue: "222"}).Number())
	})

	s.Run("disabled", func() {
		s.True(c.Initialize(InitOptions{Disabled: true}).Disabled())
	})
}

func (s *ControllerSuite) TestPicker() {
	c := New(s.dir, Config{})
	st := c.Initialize(InitOptions{})

	s.Run("open keeps search", func() {
		opened := c.OpenPicker(c.UpdateSearch(st, "fr"))
		s.Equal(ModePickerOpen, opened.Mode())
		s.Equal("fr", opened.SearchQuery())
	})

	s.Run("close clears search", func() {
		closed := c.ClosePicker(c.UpdateSearch(c.OpenPicker(st), "fr"))
		s.False(closed.PickerOpen())
		s.Equal("", closed.SearchQuery())
	})

	s.Run("close is idempotent", func() {
		open := c.UpdateSearch(c.OpenPicker(st), "uni")
		once := c.ClosePicker(open)
		s.equalState(once, c.ClosePicker(once))
	})

	s.Run("search does not toggle picker", func() {
		s.False(c.UpdateSearch(st, "x").PickerOpen())
		s.True(c.UpdateSearch(c.OpenPicker(st), "x").PickerOpen())
	})

	s.Run("visible countries follow search", func() {
		searched := c.UpdateSearch(c.OpenPicker(st), "fra")
		rows := c.VisibleCountries(searched)
		s.Require().Len(rows, 1)
		s.Equal("FR", rows[0].Code)
		s.Len(c.VisibleCountries(st), 4)
	})

	s.Run("transitions do not mutate input", func() {
		before := st
		_ = c.OpenPicker(st)
		_ = c.ChangeText(st, "123")
		s.equalState(before, st)
	})
}

func (s *ControllerSuite) TestSelectCountry() {
	s.Run("updates country and closes picker", func() {
		c := s.recording()
		st := c.UpdateSearch(c.OpenPicker(c.Initialize(InitOptions{Value: "7911123456"})), "king")

		st = c.SelectCountry(st, "GB")

		s.Equal("GB", st.CountryCode())
		s.Equal("44", st.CallingCode())
		s.False(st.PickerOpen())
		s.Equal("", st.SearchQuery())
		s.Equal("7911123456", st.Number())
	})

	s.Run("country callback fires before formatted text", func() {
		s.events = nil
		c := s.recording()
		st := c.Initialize(InitOptions{Value: "7911123456"})

		c.SelectCountry(st, "GB")

		s.Equal([]event{
			{"country", "GB"},
			{"formatted", "+447911123456"},
		}, s.events)
	})

	s.Run("empty number formats to empty", func() {
		s.events = nil
		c := s.recording()
		c.SelectCountry(c.Initialize(InitOptions{}), "FR")

		s.Equal([]event{{"country", "FR"}, {"formatted", ""}}, s.events)
	})

	s.Run("unknown code is a no-op", func() {
		s.events = nil
		c := s.recording()
		st := c.OpenPicker(c.Initialize(InitOptions{}))

		s.equalState(st, c.SelectCountry(st, "ZZ"))
		s.Empty(s.events)
	})

	s.Run("codes are case-sensitive", func() {
		s.events = nil
		c := s.recording()
		st := c.Initialize(InitOptions{})

		s.equalState(st, c.SelectCountry(st, "gb"))
		s.Empty(s.events)
	})
}

func (s *ControllerSuite) TestChangeText() {
	s.Run("formats with calling code", func() {
		s.events = nil
		c := s.recording()
		st := c.ChangeText(c.Initialize(InitOptions{DefaultCode: "GB"}), "7911123456")

		s.Equal("7911123456", st.Number())
		s.Equal([]event{
			{"text", "7911123456"},
			{"formatted", "+447911123456"},
		}, s.events)
	})

	s.Run("empty text formats to empty", func() {
		s.events = nil
		c := s.recording()
		c.ChangeText(c.Initialize(InitOptions{DefaultCode: "GB", Value: "1"}), "")

		s.Equal([]event{{"text", ""}, {"formatted", ""}}, s.events)
	})

	s.Run("text is not filtered", func() {
		c := New(s.dir, Config{})
		st := c.ChangeText(c.Initialize(InitOptions{}), "(415) abc")
		s.Equal("(415) abc", st.Number())
		s.Equal("+1(415) abc", c.FormattedText(st))
	})

	s.Run("missing callbacks are fine", func() {
		c := New(s.dir, Config{Callbacks: Callbacks{OnChangeText: func(string) {}}})
		s.NotPanics(func() { c.ChangeText(c.Initialize(InitOptions{}), "1") })
	})
}

func (s *ControllerSuite) TestDisabledGuard() {
	c := s.recording()
	start := c.UpdateSearch(c.Initialize(InitOptions{DefaultCode: "FR", Value: "0612", Disabled: true}), "q")

	s.equalState(start, c.ChangeText(start, "999"))
	s.equalState(start, c.SelectCountry(start, "GB"))
	s.equalState(start, c.OpenPicker(start))
	s.Empty(s.events)

	s.Run("close and search still apply", func() {
		s.Equal("", c.ClosePicker(start).SearchQuery())
		s.Equal("other", c.UpdateSearch(start, "other").SearchQuery())
	})

	s.Run("re-enabling restores transitions", func() {
		enabled := c.SetDisabled(start, false)
		s.Equal("999", c.ChangeText(enabled, "999").Number())
	})
}

func (s *ControllerSuite) TestSetDisabledLeavesPickerOpen() {
	c := New(s.dir, Config{})
	st := c.SetDisabled(c.OpenPicker(c.Initialize(InitOptions{})), true)

	s.True(st.Disabled())
	s.True(st.PickerOpen())

	searched := c.UpdateSearch(st, "fra")
	s.Equal("fra", searched.SearchQuery())

	selected := c.SelectCountry(searched, "FR")
	s.Equal(searched, selected)
	s.True(selected.PickerOpen())

	s.False(c.ClosePicker(st).PickerOpen())
}

func (s *ControllerSuite) TestNormalizedNumber() {
	c := New(s.dir, Config{})

	tests := []struct {
		name   string
		code   string
		number string
		want   FormattedResult
	}{
		{"strips trunk zero", "GB", "07911123456", FormattedResult{"7911123456", "+447911123456"}},
		{"strips only one zero", "GB", "007911", FormattedResult{"07911", "+4407911"}},
		{"no zero", "GB", "7911123456", FormattedResult{"7911123456", "+447911123456"}},
		{"only a zero", "GB", "0", FormattedResult{"", ""}},
		{"empty", "US", "", FormattedResult{"", ""}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			st := c.Initialize(InitOptions{DefaultCode: tt.code, Value: tt.number})
			s.Equal(tt.want, c.NormalizedNumber(st))
			s.Equal(tt.number, st.Number(), "normalizing does not change state")
		})
	}
}

func (s *ControllerSuite) TestIsValidUsesSelectedCountry() {
	var gotNumber, gotCode string
	c := New(s.dir, Config{Validator: func(number, code string) bool {
		gotNumber, gotCode = number, code
		return true
	}})

	st := c.Initialize(InitOptions{DefaultCode: "FR", Value: "0612345678"})
	s.True(c.IsValid(st))
	s.Equal("0612345678", gotNumber)
	s.Equal("FR", gotCode)
}

func (s *ControllerSuite) TestCallingCodeInvariant() {
	c := New(s.dir, Config{})
	st := c.Initialize(InitOptions{})
	rng := rand.New(rand.NewSource(7))
	codes := []string{"US", "GB", "CA", "FR", "ZZ", "", "gb"}

	for i := 0; i < 500; i++ {
		var action Action
		switch rng.Intn(6) {
		case 0:
			action = OpenPicker{}
		case 1:
			action = ClosePicker{}
		case 2:
			action = UpdateSearch{Query: codes[rng.Intn(len(codes))]}
		case 3:
			action = SelectCountry{Code: codes[rng.Intn(len(codes))]}
		case 4:
			action = ChangeText{Text: codes[rng.Intn(len(codes))]}
		case 5:
			action = SetDisabled{Disabled: rng.Intn(3) == 0}
		}
		st = c.Reduce(st, action)

		record, err := s.dir.ByCode(st.CountryCode())
		s.Require().NoError(err)
		s.Require().Equal(record.CallingCode, st.CallingCode())
		s.Require().Equal(c.CurrentCallingCode(st), st.CallingCode())
		s.Require().Equal(c.CurrentCountryCode(st), st.CountryCode())
	}
}

func (s *ControllerSuite) TestHandle() {
	h := NewHandle(s.recording(), InitOptions{DefaultCode: "US"})

	st := h.Dispatch(OpenPicker{}, UpdateSearch{Query: "king"}, SelectCountry{Code: "GB"}, ChangeText{Text: "07911123456"})

	s.equalState(st, h.State())
	s.Equal("GB", h.CountryCode())
	s.Equal("44", h.CallingCode())
	s.Equal("+4407911123456", h.FormattedText())
	s.Equal(FormattedResult{"7911123456", "+447911123456"}, h.NormalizedNumber())
	s.Equal(ModeIdle, st.Mode())

	s.equalState(st, h.Controller().Reduce(st, nil))
}

func (s *ControllerSuite) TestResumeHandle() {
	c := New(s.dir, Config{})
	st := c.ChangeText(c.SelectCountry(c.Initialize(InitOptions{}), "FR"), "612345678")

	h := ResumeHandle(c, st)
	s.equalState(st, h.State())

	other, err := country.New([]country.Record{{Code: "DE", Name: "Germany", CallingCode: "49"}})
	s.Require().NoError(err)

	moved := ResumeHandle(New(other, Config{}), st)
	s.Equal("DE", moved.CountryCode())
	s.Equal("49", moved.CallingCode())
	s.Equal("612345678", moved.State().Number())
}

func TestNilDirectoryUsesBundled(t *testing.T) {
	c := New(nil, Config{})
	if c.Directory() != country.Bundled() {
		t.Fatal("expected bundled directory")
	}
	if got := c.Initialize(InitOptions{DefaultCode: "JP"}).CallingCode(); got != "81" {
		t.Fatalf("calling code = %q, want 81", got)
	}
}
