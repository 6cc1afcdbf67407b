package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/misterclayt0n/fittrack/internal/models"
)

func TestCaloriesBurned(t *testing.T) {
	cases := []struct {
		name      string
		typ       models.WorkoutType
		minutes   int
		intensity models.Intensity
		want      int
	}{
		{"running hour moderate", models.Running, 60, models.Moderate, 560},
		{"unknown type falls back", models.WorkoutType("Unknown"), 30, models.Vigorous, 140},
		{"unknown intensity falls back", models.Yoga, 60, models.Intensity("Extreme"), 280},
		{"weight training light", models.WeightTraining, 45, models.Light, 158},
		{"walking short", models.Walking, 10, models.Light, 23},
		{"zero minutes", models.HIIT, 0, models.Vigorous, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CaloriesBurned(tc.typ, tc.minutes, tc.intensity))
		})
	}
}

func TestMETTableCoversEveryType(t *testing.T) {
	for _, typ := range models.WorkoutTypes {
		for _, i := range models.Intensities {
			_, ok := metTable[typ][i]
			assert.True(t, ok, "%s/%s missing", typ, i)
		}
	}
}
