package models

type WorkoutEntry struct {
	ID        string      `json:"id"`
	Type      WorkoutType `json:"type"`
	Duration  int         `json:"duration"` // minutes
	Intensity Intensity   `json:"intensity"`
	Calories  int         `json:"calories"`
	Date      Date        `json:"date"`
	Notes     string      `json:"notes"`
}

type MealEntry struct {
	ID       string   `json:"id"`
	Slot     MealSlot `json:"type"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"` // grams
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
	Date     Date     `json:"date"`
}

type WeightEntry struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"` // kg
	Date   Date    `json:"date"`
}

type ActivityLogEntry struct {
	ID       string           `json:"id"`
	Category ActivityCategory `json:"type"`
	Message  string           `json:"message"`
	Date     Date             `json:"date"`
	Time     string           `json:"time"` // display form, e.g. "09:05 AM"
}
