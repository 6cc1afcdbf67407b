package stats

import (
	"math"

	"github.com/misterclayt0n/fittrack/internal/models"
)

// WorkoutSummary describes today's training.
type WorkoutSummary struct {
	// Primary is the most recently logged workout of the day, nil if none.
	Primary        *models.WorkoutEntry
	Count          int
	CaloriesBurned int
}

// CalorieBalance compares today's intake to the daily goal.
type CalorieBalance struct {
	Goal      int
	Consumed  int
	Remaining int // never negative
	Protein   int
	Carbs     int
	Fat       int
	Meals     []models.MealEntry
}

// WeightChange is the difference between the newest and oldest weight in a
// window. Sufficient is false when fewer than two points were available.
type WeightChange struct {
	Delta      float64
	Sufficient bool
}

// Progress aggregates a trailing window of days ending today.
type Progress struct {
	WindowDays   int
	Start        models.Date
	End          models.Date
	Workouts     []models.WorkoutEntry
	Weights      []models.WeightEntry
	WorkoutCount int
	WeightChange WeightChange
	AvgPerWeek   float64 // one decimal place
}

func TodaysWorkout(state *models.AppState, today models.Date) WorkoutSummary {
	var sum WorkoutSummary
	for i := range state.Workouts {
		w := state.Workouts[i]
		if !w.Date.Equal(today) {
			continue
		}
		if sum.Primary == nil {
			sum.Primary = &w
		}
		sum.Count++
		sum.CaloriesBurned += w.Calories
	}
	return sum
}

func TodaysCalories(state *models.AppState, today models.Date) CalorieBalance {
	bal := CalorieBalance{Goal: state.DailyCalorieGoal}
	for _, m := range state.Meals {
		if !m.Date.Equal(today) {
			continue
		}
		bal.Consumed += m.Calories
		bal.Protein += m.Protein
		bal.Carbs += m.Carbs
		bal.Fat += m.Fat
		bal.Meals = append(bal.Meals, m)
	}
	bal.Remaining = max(0, bal.Goal-bal.Consumed)
	return bal
}

// CurrentWeight returns the latest weight entry.
func CurrentWeight(state *models.AppState) (models.WeightEntry, bool) {
	if len(state.WeightEntries) == 0 {
		return models.WeightEntry{}, false
	}
	return state.WeightEntries[0], true
}

func ProgressWindow(state *models.AppState, windowDays int, today models.Date) Progress {
	p := Progress{
		WindowDays: windowDays,
		Start:      today.AddDays(-windowDays),
		End:        today,
	}

	for _, w := range state.Workouts {
		if w.Date.Between(p.Start, p.End) {
			p.Workouts = append(p.Workouts, w)
		}
	}
	for _, w := range state.WeightEntries {
		if w.Date.Between(p.Start, p.End) {
			p.Weights = append(p.Weights, w)
		}
	}

	p.WorkoutCount = len(p.Workouts)
	p.WeightChange = weightChange(p.Weights)
	if windowDays > 0 {
		weeks := float64(windowDays) / 7
		p.AvgPerWeek = math.Round(float64(p.WorkoutCount)/weeks*10) / 10
	}
	return p
}

func weightChange(entries []models.WeightEntry) WeightChange {
	if len(entries) < 2 {
		return WeightChange{}
	}
	newest, oldest := entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.Date.After(newest.Date) {
			newest = e
		}
		if e.Date.Before(oldest.Date) {
			oldest = e
		}
	}
	return WeightChange{Delta: newest.Weight - oldest.Weight, Sufficient: true}
}
