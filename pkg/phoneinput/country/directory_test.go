package country

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	france       = Record{Code: "FR", Name: "France", CallingCode: "33", Flag: "🇫🇷"}
	unitedStates = Record{Code: "US", Name: "United States", CallingCode: "1", Flag: "🇺🇸"}
	canada       = Record{Code: "CA", Name: "Canada", CallingCode: "1", Flag: "🇨🇦"}
	britain      = Record{Code: "GB", Name: "United Kingdom", CallingCode: "44", Flag: "🇬🇧"}
)

func TestNewRejectsBadDatasets(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		reason  string
	}{
		{name: "empty", records: nil, reason: "no country records"},
		{name: "duplicate code", records: []Record{france, unitedStates, france}, reason: "duplicate country code"},
		{name: "blank code", records: []Record{{Name: "Nowhere", CallingCode: "0"}}, reason: "blank country code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.records)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, IsConfigError(err))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestByCode(t *testing.T) {
	d, err := New([]Record{france, unitedStates})
	require.NoError(t, err)

	got, err := d.ByCode("FR")
	require.NoError(t, err)
	assert.Equal(t, france, got)

	_, err = d.ByCode("fr")
	assert.True(t, errors.Is(err, ErrNotFound), "lookup is case-sensitive")

	_, err = d.ByCode("ZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeCode(t *testing.T) {
	d, err := New([]Record{france, britain})
	require.NoError(t, err)

	for _, in := range []string{"gb", " Gb ", "GB"} {
		got, err := d.ByCode(NormalizeCode(in))
		require.NoError(t, err, in)
		assert.Equal(t, britain, got)
	}
	assert.Equal(t, "", NormalizeCode("  "))
}

func TestSearch(t *testing.T) {
	d, err := New([]Record{france, unitedStates, canada, britain})
	require.NoError(t, err)

	t.Run("name substring", func(t *testing.T) {
		assert.Equal(t, []Record{france}, d.Search("fra"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, []Record{unitedStates, britain}, d.Search("UNITED"))
	})

	t.Run("calling code keeps directory order", func(t *testing.T) {
		assert.Equal(t, []Record{unitedStates, canada}, d.Search("1"))
	})

	t.Run("calling code with plus", func(t *testing.T) {
		assert.Equal(t, []Record{britain}, d.Search("+44"))
	})

	t.Run("country code", func(t *testing.T) {
		assert.Equal(t, []Record{britain}, d.Search("gb"))
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Equal(t, []Record{france, unitedStates, canada, britain}, d.Search(""))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, d.Search("atlantis"))
	})
}

func TestByCallingCode(t *testing.T) {
	d, err := New([]Record{france, unitedStates, canada})
	require.NoError(t, err)

	assert.Equal(t, []Record{unitedStates, canada}, d.ByCallingCode("1"))
	assert.Equal(t, []Record{france}, d.ByCallingCode("+33"))
	assert.Empty(t, d.ByCallingCode("999"))
}

func TestDefault(t *testing.T) {
	withUS, err := New([]Record{france, unitedStates})
	require.NoError(t, err)
	assert.Equal(t, unitedStates, withUS.Default())

	withoutUS, err := New([]Record{britain, france})
	require.NoError(t, err)
	assert.Equal(t, britain, withoutUS.Default(), "falls back to the first record")
}

func TestAllReturnsCopy(t *testing.T) {
	d, err := New([]Record{france, unitedStates})
	require.NoError(t, err)

	all := d.All()
	all[0].Name = "Gaul"

	got, err := d.ByCode("FR")
	require.NoError(t, err)
	assert.Equal(t, "France", got.Name)
	assert.Equal(t, 2, d.Len())
}

func TestBundled(t *testing.T) {
	d := Bundled()
	require.NotNil(t, d)
	assert.Same(t, d, Bundled())

	assert.Equal(t, "US", d.Default().Code)

	gb, err := d.ByCode("GB")
	require.NoError(t, err)
	assert.Equal(t, "44", gb.CallingCode)
	assert.Equal(t, "+44", gb.FormattedCallingCode())

	codes := map[string]bool{}
	for _, r := range d.ByCallingCode("1") {
		codes[r.Code] = true
	}
	assert.True(t, codes["US"])
	assert.True(t, codes["CA"])
}

func TestLoad(t *testing.T) {
	t.Run("declared default", func(t *testing.T) {
		d, err := Load(strings.NewReader(`
default = "DE"

[[country]]
code = "FR"
name = "France"
calling_code = "33"

[[country]]
code = "DE"
name = "Germany"
calling_code = "49"
`))
		require.NoError(t, err)
		assert.Equal(t, "DE", d.Default().Code)
		assert.Equal(t, 2, d.Len())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(strings.NewReader(`
[[country]]
code = "FR"
name = "France"
dial = "33"
`))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[[country]`))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Load(strings.NewReader(``))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no country records")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("does-not-exist.toml")
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}
