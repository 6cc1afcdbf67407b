package tracker

import (
	"time"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/utils"
)

// seedState builds the first-run state: one example of each entry type and
// two log lines.
func seedState(now time.Time, goal int) *models.AppState {
	today := models.DateOf(now)
	clock := now.Format(utils.TimeOfDayLayout)

	s := models.NewAppState()
	s.DailyCalorieGoal = goal
	s.Workouts = []models.WorkoutEntry{{
		ID:        utils.NewID(),
		Type:      models.Running,
		Duration:  30,
		Intensity: models.Moderate,
		Calories:  300,
		Date:      today,
		Notes:     "Morning run in the park",
	}}
	s.Meals = []models.MealEntry{{
		ID:       utils.NewID(),
		Slot:     models.Breakfast,
		Name:     "Oatmeal with fruits",
		Calories: 350,
		Protein:  12,
		Carbs:    60,
		Fat:      8,
		Date:     today,
	}}
	s.WeightEntries = []models.WeightEntry{{
		ID:     utils.NewID(),
		Weight: 70,
		Date:   today,
	}}
	s.ActivityLog = []models.ActivityLogEntry{
		{ID: utils.NewID(), Category: models.CategoryWorkout, Message: "Logged Running workout", Date: today, Time: clock},
		{ID: utils.NewID(), Category: models.CategoryMeal, Message: "Logged Breakfast: Oatmeal with fruits", Date: today, Time: clock},
	}
	return s
}
