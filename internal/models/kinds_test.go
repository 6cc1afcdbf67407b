package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkoutType(t *testing.T) {
	cases := map[string]WorkoutType{
		"running":         Running,
		"Weight Training": WeightTraining,
		"weight-training": WeightTraining,
		"WeightTraining":  WeightTraining,
		"hiit":            HIIT,
		"other":           OtherWorkout,
	}
	for in, want := range cases {
		got, err := ParseWorkoutType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseWorkoutType("Curling")
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}

func TestParseIntensityAndMealSlot(t *testing.T) {
	i, err := ParseIntensity("VIGOROUS")
	require.NoError(t, err)
	assert.Equal(t, Vigorous, i)

	_, err = ParseIntensity("extreme")
	assert.ErrorIs(t, err, ErrUnknownIntensity)

	m, err := ParseMealSlot("snack")
	require.NoError(t, err)
	assert.Equal(t, Snack, m)

	_, err = ParseMealSlot("brunch")
	assert.ErrorIs(t, err, ErrUnknownMealSlot)
}
