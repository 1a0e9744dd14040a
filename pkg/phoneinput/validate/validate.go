// Package validate wraps the phone number parser used to check what the user
// typed. Every function here is total: parser failures become false or an
// empty result, never an error or panic.
package validate

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
)

// IsValid reports whether raw is a valid phone number when read with
// countryCode as the region hint.
func IsValid(raw, countryCode string) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	num, err := phonenumbers.Parse(raw, countryCode)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// E164 returns raw in E.164 form ("+447911123456") if it is a valid number for
// the region.
func E164(raw, countryCode string) (formatted string, ok bool) {
	defer func() {
		if recover() != nil {
			formatted, ok = "", false
		}
	}()

	num, err := phonenumbers.Parse(raw, countryCode)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// Mismatch is a dataset record whose calling code disagrees with the
// parser's metadata for its region.
type Mismatch struct {
	Record   country.Record
	Expected string // Calling code known to the parser, "" if the region is unknown to it
}

// AuditCallingCodes compares every record in dir with the parser metadata.
func AuditCallingCodes(dir *country.Directory) []Mismatch {
	var mismatches []Mismatch
	for _, r := range dir.All() {
		expected := ""
		if cc := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(r.Code)); cc != 0 {
			expected = strconv.Itoa(cc)
		}
		if expected != r.CallingCode {
			mismatches = append(mismatches, Mismatch{Record: r, Expected: expected})
		}
	}
	return mismatches
}
