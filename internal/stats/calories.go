package stats

import (
	"math"

	"github.com/misterclayt0n/fittrack/internal/models"
)

const (
	// AssumedBodyWeightKg is the body weight every calorie estimate uses.
	AssumedBodyWeightKg = 70
	// FallbackMET applies when the type or intensity has no table entry.
	FallbackMET = 4
)

var metTable = map[models.WorkoutType]map[models.Intensity]float64{
	models.Running:        {models.Light: 6, models.Moderate: 8, models.Vigorous: 10},
	models.Cycling:        {models.Light: 4, models.Moderate: 6, models.Vigorous: 8},
	models.Swimming:       {models.Light: 5, models.Moderate: 7, models.Vigorous: 9},
	models.WeightTraining: {models.Light: 3, models.Moderate: 5, models.Vigorous: 7},
	models.Yoga:           {models.Light: 2, models.Moderate: 3, models.Vigorous: 4},
	models.HIIT:           {models.Light: 6, models.Moderate: 8, models.Vigorous: 10},
	models.Walking:        {models.Light: 2, models.Moderate: 3, models.Vigorous: 4},
	models.OtherWorkout:   {models.Light: 3, models.Moderate: 4, models.Vigorous: 5},
}

// MET looks up the metabolic equivalent for a workout type and intensity.
func MET(t models.WorkoutType, i models.Intensity) float64 {
	byIntensity, ok := metTable[t]
	if !ok {
		return FallbackMET
	}
	met, ok := byIntensity[i]
	if !ok {
		return FallbackMET
	}
	return met
}

// CaloriesBurned estimates energy use as MET x kg x hours, rounded to the
// nearest kcal.
func CaloriesBurned(t models.WorkoutType, durationMinutes int, i models.Intensity) int {
	hours := float64(durationMinutes) / 60
	return int(math.Round(MET(t, i) * AssumedBodyWeightKg * hours))
}
