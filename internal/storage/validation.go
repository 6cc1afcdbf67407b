package storage

import (
	"fmt"
	"sort"

	"github.com/misterclayt0n/fittrack/internal/models"
)

// validateState checks a decoded blob and restores the ordering invariants a
// hand-edited file may have broken.
func validateState(state *models.AppState) error {
	if state.WaterIntake < 0 {
		return fmt.Errorf("negative water intake %d", state.WaterIntake)
	}
	if state.DailyCalorieGoal < 0 {
		return fmt.Errorf("negative daily calorie goal %d", state.DailyCalorieGoal)
	}
	for _, w := range state.WeightEntries {
		if w.Date.IsZero() {
			return fmt.Errorf("weight entry %s has no date", w.ID)
		}
	}

	if !sort.SliceIsSorted(state.WeightEntries, func(i, j int) bool {
		return state.WeightEntries[i].Date.After(state.WeightEntries[j].Date)
	}) {
		sort.SliceStable(state.WeightEntries, func(i, j int) bool {
			return state.WeightEntries[i].Date.After(state.WeightEntries[j].Date)
		})
	}
	if len(state.ActivityLog) > models.MaxActivityLogEntries {
		state.ActivityLog = state.ActivityLog[:models.MaxActivityLogEntries]
	}
	return nil
}
