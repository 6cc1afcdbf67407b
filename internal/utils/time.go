package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/fittrack/internal/models"
)

// TimeOfDayLayout is how activity-log entries show the time they were made.
const TimeOfDayLayout = "03:04 PM"

// Clock supplies the current instant. Everything that needs "today" asks a
// Clock so tests can pin the date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Loc.
type SystemClock struct {
	Loc *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Loc == nil {
		return time.Now()
	}
	return time.Now().In(c.Loc)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today returns the calendar day of the clock's current instant.
func Today(c Clock) models.Date {
	return models.DateOf(c.Now())
}

// LoadLocation resolves a configured zone name. Empty and "Local" both mean
// the machine's zone.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return loc, nil
}
