// Package date provides a day-granularity Date value used for acquisition,
// basis, and transaction dates.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Separator is the character separating the fields of an imported date.
type Separator byte

const (
	Hyphen Separator = '-'
	Slash  Separator = '/'
	Period Separator = '.'
)

// ParseSeparator maps the single-letter selector used on import ("h", "s", "p")
// to the corresponding separator character.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "-":
		return Hyphen, nil
	case "s", "/":
		return Slash, nil
	case "p", ".":
		return Period, nil
	default:
		return 0, fmt.Errorf("unknown date separator %q: want h, s, or p", s)
	}
}

// ParseImported parses a date from an imported file, honoring the configured
// separator and field order. When iso is true the fields are year-month-day
// (two or four digit year); otherwise the US-style month-day-year is assumed.
func ParseImported(str string, sep Separator, iso bool) (Date, error) {
	fields := strings.Split(strings.TrimSpace(str), string(sep))
	if len(fields) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want three fields separated by %q", str, string(sep))
	}
	var y, m, d string
	if iso {
		y, m, d = fields[0], fields[1], fields[2]
	} else {
		m, d, y = fields[0], fields[1], fields[2]
	}
	if len(y) == 2 {
		y = "20" + y
	}
	on, err := time.Parse(readDateFormat, fmt.Sprintf("%s-%s-%s", y, m, d))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
	}
	return New(on.Date()), nil
}

// Compare returns -1, 0, or +1 comparing d to x, usable as a sort key.
func (d Date) Compare(x Date) int {
	switch {
	case d.Before(x):
		return -1
	case d.After(x):
		return 1
	default:
		return 0
	}
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
