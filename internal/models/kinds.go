package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrUnknownIntensity   = errors.New("unknown intensity")
	ErrUnknownMealSlot    = errors.New("unknown meal slot")
)

type WorkoutType string

const (
	Running        WorkoutType = "Running"
	Cycling        WorkoutType = "Cycling"
	Swimming       WorkoutType = "Swimming"
	WeightTraining WorkoutType = "Weight Training"
	Yoga           WorkoutType = "Yoga"
	HIIT           WorkoutType = "HIIT"
	Walking        WorkoutType = "Walking"
	OtherWorkout   WorkoutType = "Other"
)

// WorkoutTypes lists every accepted workout type in display order.
var WorkoutTypes = []WorkoutType{Running, Cycling, Swimming, WeightTraining, Yoga, HIIT, Walking, OtherWorkout}

type Intensity string

const (
	Light    Intensity = "Light"
	Moderate Intensity = "Moderate"
	Vigorous Intensity = "Vigorous"
)

var Intensities = []Intensity{Light, Moderate, Vigorous}

type MealSlot string

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Dinner    MealSlot = "Dinner"
	Snack     MealSlot = "Snack"
)

var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snack}

// ActivityCategory tags an activity-log entry with the kind of action behind it.
type ActivityCategory string

const (
	CategoryWorkout ActivityCategory = "workout"
	CategoryMeal    ActivityCategory = "meal"
	CategoryWeight  ActivityCategory = "weight"
	CategoryWater   ActivityCategory = "water"
)

// normalize folds case and drops separators so "weight-training",
// "WeightTraining" and "weight training" all compare equal.
func normalize(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

func ParseWorkoutType(s string) (WorkoutType, error) {
	key := normalize(s)
	for _, t := range WorkoutTypes {
		if normalize(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q (accepted: %s)", ErrUnknownWorkoutType, s, join(WorkoutTypes))
}

func ParseIntensity(s string) (Intensity, error) {
	key := normalize(s)
	for _, i := range Intensities {
		if normalize(string(i)) == key {
			return i, nil
		}
	}
	return "", fmt.Errorf("%w %q (accepted: %s)", ErrUnknownIntensity, s, join(Intensities))
}

func ParseMealSlot(s string) (MealSlot, error) {
	key := normalize(s)
	for _, m := range MealSlots {
		if normalize(string(m)) == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (accepted: %s)", ErrUnknownMealSlot, s, join(MealSlots))
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
