// Package date implements calendar dates with day granularity.
//
// A Date carries no time zone: "2024-04-01" is the first of April on every
// machine, and so is its quarter.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is how a Date is written: ISO-8601, "2024-01-05".
const DateFormat = "2006-01-02"

// Dates are read leniently: "2024-1-5" is accepted too.
const lenientFormat = "2006-1-2"

// Date is a day in the proleptic Gregorian calendar. The zero value is no date.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the Date for year, month and day, normalized the way
// [time.Date] does: New(2024, 13, 1) is 2025-01-01.
func New(year int, month time.Month, day int) Date {
	var d Date
	d.y, d.m, d.d = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return d
}

// Today returns the current date in the local calendar.
func Today() Date { return New(time.Now().Date()) }

// time is midnight UTC of the day, comparable with ==.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Quarter returns the calendar quarter of the date, in [1..4].
func (d Date) Quarter() int { return int(d.m-1)/3 + 1 }

func (d Date) String() string { return d.time().Format(DateFormat) }

// Format formats the date with a [time.Format] layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse reads a date like "2024-01-05" or "2024-1-5".
func Parse(s string) (Date, error) {
	t, err := time.Parse(lenientFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, DateFormat, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }
