package models

import "sort"

const (
	// MaxActivityLogEntries caps the activity log; older entries fall off the tail.
	MaxActivityLogEntries = 10
	DefaultCalorieGoal    = 2000
)

// AppState is the whole persisted record. Workouts, meals and the activity log
// are newest-first; weight entries are sorted descending by date.
type AppState struct {
	Workouts         []WorkoutEntry     `json:"workouts"`
	Meals            []MealEntry        `json:"meals"`
	WaterIntake      int                `json:"waterIntake"`
	WeightEntries    []WeightEntry      `json:"weightEntries"`
	DailyCalorieGoal int                `json:"dailyCalorieGoal"`
	ActivityLog      []ActivityLogEntry `json:"activityLog"`
}

func NewAppState() *AppState {
	return &AppState{
		Workouts:         []WorkoutEntry{},
		Meals:            []MealEntry{},
		WeightEntries:    []WeightEntry{},
		DailyCalorieGoal: DefaultCalorieGoal,
		ActivityLog:      []ActivityLogEntry{},
	}
}

// Normalize replaces nil collections with empty ones so a decoded blob encodes
// back with [] rather than null. A missing calorie goal stays zero for the
// caller to fill from its configuration.
func (s *AppState) Normalize() {
	if s.Workouts == nil {
		s.Workouts = []WorkoutEntry{}
	}
	if s.Meals == nil {
		s.Meals = []MealEntry{}
	}
	if s.WeightEntries == nil {
		s.WeightEntries = []WeightEntry{}
	}
	if s.ActivityLog == nil {
		s.ActivityLog = []ActivityLogEntry{}
	}
}

// Clone returns a copy that shares no slices with s.
func (s *AppState) Clone() AppState {
	c := *s
	c.Workouts = append([]WorkoutEntry{}, s.Workouts...)
	c.Meals = append([]MealEntry{}, s.Meals...)
	c.WeightEntries = append([]WeightEntry{}, s.WeightEntries...)
	c.ActivityLog = append([]ActivityLogEntry{}, s.ActivityLog...)
	return c
}

func (s *AppState) AddWorkout(w WorkoutEntry) {
	s.Workouts = append([]WorkoutEntry{w}, s.Workouts...)
}

func (s *AppState) AddMeal(m MealEntry) {
	s.Meals = append([]MealEntry{m}, s.Meals...)
}

// RemoveWorkout drops the workout with the given id and reports whether one
// was found.
func (s *AppState) RemoveWorkout(id string) bool {
	kept := make([]WorkoutEntry, 0, len(s.Workouts))
	for _, w := range s.Workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	removed := len(kept) != len(s.Workouts)
	s.Workouts = kept
	return removed
}

func (s *AppState) RemoveMeal(id string) bool {
	kept := make([]MealEntry, 0, len(s.Meals))
	for _, m := range s.Meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	removed := len(kept) != len(s.Meals)
	s.Meals = kept
	return removed
}

// UpsertWeight stores e, replacing any entry already recorded for the same
// date, then restores the descending date order. It reports whether an
// existing entry was replaced.
func (s *AppState) UpsertWeight(e WeightEntry) bool {
	replaced := false
	for i := range s.WeightEntries {
		if s.WeightEntries[i].Date.Equal(e.Date) {
			s.WeightEntries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		s.WeightEntries = append([]WeightEntry{e}, s.WeightEntries...)
	}
	sort.SliceStable(s.WeightEntries, func(i, j int) bool {
		return s.WeightEntries[i].Date.After(s.WeightEntries[j].Date)
	})
	return replaced
}

// LogActivity puts e at the head of the activity log and trims the tail to
// MaxActivityLogEntries.
func (s *AppState) LogActivity(e ActivityLogEntry) {
	s.ActivityLog = append([]ActivityLogEntry{e}, s.ActivityLog...)
	if len(s.ActivityLog) > MaxActivityLogEntries {
		s.ActivityLog = s.ActivityLog[:MaxActivityLogEntries]
	}
}
