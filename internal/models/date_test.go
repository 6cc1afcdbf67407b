package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	morning := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)
	night := time.Date(2025, 3, 10, 23, 55, 0, 0, loc)

	assert.True(t, DateOf(morning).Equal(DateOf(night)))
	assert.Equal(t, "2025-03-10", DateOf(night).String())
}

func TestDateBetweenIsInclusive(t *testing.T) {
	start := NewDate(2025, 3, 1)
	end := NewDate(2025, 3, 10)

	assert.True(t, start.Between(start, end))
	assert.True(t, end.Between(start, end))
	assert.True(t, NewDate(2025, 3, 5).Between(start, end))
	assert.False(t, NewDate(2025, 2, 28).Between(start, end))
	assert.False(t, NewDate(2025, 3, 11).Between(start, end))
}

func TestDateAddDaysCrossesMonths(t *testing.T) {
	d := NewDate(2025, 2, 25).AddDays(7)
	assert.Equal(t, "2025-03-04", d.String())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("10/03/2025")
	require.Error(t, err)

	d, err := ParseDate(" 2025-03-10 ")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, 3, 10), d)
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	b, err := json.Marshal(wrapper{Date: NewDate(2024, 12, 31)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-12-31"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-02"}`), &w))
	assert.Equal(t, NewDate(2024, 1, 2), w.Date)

	require.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &w))
}
