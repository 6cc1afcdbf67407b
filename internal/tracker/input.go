package tracker

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/misterclayt0n/fittrack/internal/models"
)

// ErrInvalidInput wraps every validation failure.
var ErrInvalidInput = errors.New("invalid input")

type WorkoutInput struct {
	Type      models.WorkoutType
	Duration  int // minutes
	Intensity models.Intensity
	// Calories overrides the MET estimate when set.
	Calories *int
	Notes    string
}

func (in WorkoutInput) Validate() error {
	if in.Type == "" {
		return fmt.Errorf("%w: workout type is required", ErrInvalidInput)
	}
	if in.Intensity == "" {
		return fmt.Errorf("%w: intensity is required", ErrInvalidInput)
	}
	if in.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of minutes, got %d", ErrInvalidInput, in.Duration)
	}
	if in.Calories != nil && *in.Calories < 0 {
		return fmt.Errorf("%w: calories cannot be negative", ErrInvalidInput)
	}
	return nil
}

type MealInput struct {
	Slot     models.MealSlot
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

func (in MealInput) Validate() error {
	if in.Slot == "" {
		return fmt.Errorf("%w: meal slot is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: meal name is required", ErrInvalidInput)
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return fmt.Errorf("%w: calories and macros cannot be negative", ErrInvalidInput)
	}
	return nil
}

type WeightInput struct {
	Weight float64 // kg
	// Date defaults to today when zero.
	Date models.Date
}

func (in WeightInput) Validate() error {
	if in.Weight <= 0 || math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return fmt.Errorf("%w: weight must be a positive number of kg", ErrInvalidInput)
	}
	return nil
}
