package tracker

import (
	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/stats"
)

// Dashboard is everything the daily overview shows.
type Dashboard struct {
	Date      models.Date
	Workout   stats.WorkoutSummary
	Calories  stats.CalorieBalance
	Weight    models.WeightEntry
	HasWeight bool
	Water     int
	Activity  []models.ActivityLogEntry
}

func (t *Tracker) Dashboard() Dashboard {
	today := t.Today()
	weight, ok := stats.CurrentWeight(t.state)
	return Dashboard{
		Date:      today,
		Workout:   stats.TodaysWorkout(t.state, today),
		Calories:  stats.TodaysCalories(t.state, today),
		Weight:    weight,
		HasWeight: ok,
		Water:     t.state.WaterIntake,
		Activity:  append([]models.ActivityLogEntry{}, t.state.ActivityLog...),
	}
}

// Progress summarises the trailing windowDays ending today.
func (t *Tracker) Progress(windowDays int) stats.Progress {
	return stats.ProgressWindow(t.state, windowDays, t.Today())
}
