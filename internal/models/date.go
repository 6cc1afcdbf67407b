package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and command-line form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time of day and no zone. Two instants that
// fall on the same local day map to equal Dates.
type Date struct {
	t time.Time // midnight UTC of the day
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return d.t }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Year() int { return d.t.Year() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Equal reports whether both dates name the same calendar day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Between reports whether d lies in [start, end], both ends included.
func (d Date) Between(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// Short formats the day as "Jan 2", the chart label form.
func (d Date) Short() string { return d.t.Format("Jan 2") }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
