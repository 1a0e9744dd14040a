package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		country string
		want    bool
	}{
		{name: "uk mobile national", raw: "07911123456", country: "GB", want: true},
		{name: "uk mobile international", raw: "+447911123456", country: "GB", want: true},
		{name: "us number", raw: "2015550123", country: "US", want: true},
		{name: "too short", raw: "12", country: "US", want: false},
		{name: "letters", raw: "call me maybe", country: "US", want: false},
		{name: "empty", raw: "", country: "US", want: false},
		{name: "unknown region", raw: "7911123456", country: "ZZ", want: false},
		{name: "empty region", raw: "7911123456", country: "", want: false},
		{name: "garbage region", raw: "12345", country: "not-a-region", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.raw, tt.country))
		})
	}
}

func TestIsValidIsTotal(t *testing.T) {
	inputs := []string{"", "+", "++++", "0", "\x00\xff", "+999999999999999999999999", "(((", "😀"}
	for _, raw := range inputs {
		for _, region := range []string{"", "US", "gb", "??", "\x00"} {
			assert.NotPanics(t, func() { IsValid(raw, region) })
		}
	}
}

func TestE164(t *testing.T) {
	got, ok := E164("07911 123456", "GB")
	require.True(t, ok)
	assert.Equal(t, "+447911123456", got)

	_, ok = E164("123", "GB")
	assert.False(t, ok)
}

func TestAuditCallingCodes(t *testing.T) {
	dir, err := country.New([]country.Record{
		{Code: "GB", Name: "United Kingdom", CallingCode: "44"},
		{Code: "FR", Name: "France", CallingCode: "34"},
	})
	require.NoError(t, err)

	mismatches := AuditCallingCodes(dir)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "FR", mismatches[0].Record.Code)
	assert.Equal(t, "33", mismatches[0].Expected)
}

func TestBundledDatasetMatchesParser(t *testing.T) {
	assert.Empty(t, AuditCallingCodes(country.Bundled()))
}
