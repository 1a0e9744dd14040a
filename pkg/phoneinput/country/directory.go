// Package country holds the immutable directory of countries offered by the
// phone input widget: ISO alpha-2 code, display name, calling code and flag.
//
// A Directory is built once and is read-only afterwards, so it can be shared
// between any number of widget instances.
package country

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// DefaultCode is the country used when no (or an unknown) country is requested.
const DefaultCode = "US"

// Record is a single country entry.
type Record struct {
	Code        string // ISO 3166-1 alpha-2, unique within a Directory
	Name        string // Display name
	CallingCode string // International dialing prefix without '+', shared by some countries
	Flag        string // Flag asset key (the bundled dataset uses emoji flags)
}

// FormattedCallingCode returns the calling code with a leading '+'.
func (r Record) FormattedCallingCode() string {
	if r.CallingCode == "" {
		return ""
	}
	return "+" + r.CallingCode
}

type entry struct {
	record      Record
	foldedName  string
	foldedCode  string
	callingCode string
}

// Directory is an ordered, immutable set of country records keyed by code.
type Directory struct {
	entries     []entry
	byCode      map[string]int
	defaultCode string
}

// New builds a Directory from records, keeping their order.
// It returns a *ConfigError when records is empty, or when a code is blank or
// appears more than once.
func New(records []Record) (*Directory, error) {
	return newDirectory(records, DefaultCode)
}

func newDirectory(records []Record, defaultCode string) (*Directory, error) {
	if len(records) == 0 {
		return nil, &ConfigError{Reason: "no country records"}
	}

	for _, r := range records {
		if strings.TrimSpace(r.Code) == "" {
			return nil, &ConfigError{Reason: "blank country code", Code: r.Name}
		}
	}

	if dups := lo.FindDuplicatesBy(records, func(r Record) string { return r.Code }); len(dups) > 0 {
		return nil, &ConfigError{Reason: "duplicate country code", Code: dups[0].Code}
	}

	fold := cases.Fold()
	d := &Directory{
		entries: make([]entry, len(records)),
		byCode:  make(map[string]int, len(records)),
	}
	for i, r := range records {
		d.entries[i] = entry{
			record:      r,
			foldedName:  fold.String(r.Name),
			foldedCode:  fold.String(r.Code),
			callingCode: r.CallingCode,
		}
		d.byCode[r.Code] = i
	}

	switch {
	case defaultCode != "" && d.has(defaultCode):
		d.defaultCode = defaultCode
	case d.has(DefaultCode):
		d.defaultCode = DefaultCode
	default:
		d.defaultCode = records[0].Code
	}

	return d, nil
}

func (d *Directory) has(code string) bool {
	_, ok := d.byCode[code]
	return ok
}

// ByCode returns the record with exactly the given code.
// The match is case-sensitive; a miss returns ErrNotFound.
func (d *Directory) ByCode(code string) (Record, error) {
	i, ok := d.byCode[code]
	if !ok {
		return Record{}, notFound(code)
	}
	return d.entries[i].record, nil
}

// NormalizeCode turns user-typed input such as " gb" into the directory's
// upper-case form. ByCode itself stays exact.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ByCallingCode returns every record using the calling code, in directory order.
// Calling codes are not unique ("1" is both US and CA).
func (d *Directory) ByCallingCode(callingCode string) []Record {
	callingCode = strings.TrimPrefix(callingCode, "+")
	return lo.FilterMap(d.entries, func(e entry, _ int) (Record, bool) {
		return e.record, e.callingCode == callingCode
	})
}

// Default returns the designated fallback record.
func (d *Directory) Default() Record {
	return d.entries[d.byCode[d.defaultCode]].record
}

// Search returns the records whose name, calling code or code contains query,
// ignoring case. Results keep directory order. An empty query returns every
// record.
func (d *Directory) Search(query string) []Record {
	if query == "" {
		return d.All()
	}

	folded := cases.Fold().String(query)
	dialed := strings.TrimPrefix(folded, "+")

	return lo.FilterMap(d.entries, func(e entry, _ int) (Record, bool) {
		ok := strings.Contains(e.foldedName, folded) ||
			strings.Contains(e.callingCode, dialed) ||
			strings.Contains(e.foldedCode, folded)
		return e.record, ok
	})
}

// All returns a copy of every record in directory order.
func (d *Directory) All() []Record {
	return lo.Map(d.entries, func(e entry, _ int) Record { return e.record })
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.entries)
}
