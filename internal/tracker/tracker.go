package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/stats"
	"github.com/misterclayt0n/fittrack/internal/storage"
	"github.com/misterclayt0n/fittrack/internal/utils"
)

// Tracker owns the AppState. Every mutation updates the in-memory state,
// appends one activity-log line and writes the whole state back to the store.
type Tracker struct {
	store  *storage.Storage
	clock  utils.Clock
	log    zerolog.Logger
	goal   int
	state  *models.AppState
	seeded bool
}

type Option func(*Tracker)

func WithClock(c utils.Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithCalorieGoal sets the goal used when a fresh state is seeded.
func WithCalorieGoal(goal int) Option {
	return func(t *Tracker) { t.goal = goal }
}

// Open loads the stored state. When nothing is stored a seeded state is
// created and saved. A blob that cannot be decoded is copied aside first and
// then replaced by the seed. Any other read failure is returned untouched so
// the stored data survives.
func Open(ctx context.Context, store *storage.Storage, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store: store,
		clock: utils.SystemClock{},
		log:   zerolog.Nop(),
		goal:  models.DefaultCalorieGoal,
	}
	for _, opt := range opts {
		opt(t)
	}

	state, err := store.Load(ctx)
	switch {
	case err == nil:
		if state.DailyCalorieGoal == 0 {
			state.DailyCalorieGoal = t.goal
		}
		t.state = state
		return t, nil
	case errors.Is(err, storage.ErrNotFound):
		t.log.Info().Msg("no saved state, seeding sample data")
	case errors.Is(err, storage.ErrCorrupt):
		t.log.Warn().Err(err).Msg("saved state is unreadable, starting fresh")
		if _, err := store.Backup(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	t.state = seedState(t.clock.Now(), t.goal)
	t.seeded = true
	if err := t.persist(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Seeded reports whether Open had to create a fresh state.
func (t *Tracker) Seeded() bool { return t.seeded }

// State returns a copy of the current state.
func (t *Tracker) State() models.AppState { return t.state.Clone() }

func (t *Tracker) Today() models.Date { return utils.Today(t.clock) }

func (t *Tracker) persist(ctx context.Context) error {
	if err := t.store.Save(ctx, t.state); err != nil {
		t.log.Error().Err(err).Msg("failed to save state")
		return err
	}
	return nil
}

func (t *Tracker) logActivity(category models.ActivityCategory, message string) {
	now := t.clock.Now()
	t.state.LogActivity(models.ActivityLogEntry{
		ID:       utils.NewID(),
		Category: category,
		Message:  message,
		Date:     models.DateOf(now),
		Time:     now.Format(utils.TimeOfDayLayout),
	})
	t.log.Debug().Str("category", string(category)).Str("message", message).Msg("activity")
}

// LogWorkout records a workout for today. Without explicit calories the MET
// estimate is used.
func (t *Tracker) LogWorkout(ctx context.Context, in WorkoutInput) (models.WorkoutEntry, error) {
	if err := in.Validate(); err != nil {
		return models.WorkoutEntry{}, err
	}

	calories := stats.CaloriesBurned(in.Type, in.Duration, in.Intensity)
	if in.Calories != nil {
		calories = *in.Calories
	}

	w := models.WorkoutEntry{
		ID:        utils.NewID(),
		Type:      in.Type,
		Duration:  in.Duration,
		Intensity: in.Intensity,
		Calories:  calories,
		Date:      t.Today(),
		Notes:     in.Notes,
	}
	t.state.AddWorkout(w)
	t.logActivity(models.CategoryWorkout, fmt.Sprintf("Logged %s workout", w.Type))
	return w, t.persist(ctx)
}

func (t *Tracker) LogMeal(ctx context.Context, in MealInput) (models.MealEntry, error) {
	if err := in.Validate(); err != nil {
		return models.MealEntry{}, err
	}

	m := models.MealEntry{
		ID:       utils.NewID(),
		Slot:     in.Slot,
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Date:     t.Today(),
	}
	t.state.AddMeal(m)
	t.logActivity(models.CategoryMeal, fmt.Sprintf("Logged %s: %s", m.Slot, m.Name))
	return m, t.persist(ctx)
}

// RecordWeight stores a weight for the given day, replacing any weight
// already recorded that day.
func (t *Tracker) RecordWeight(ctx context.Context, in WeightInput) (models.WeightEntry, error) {
	if err := in.Validate(); err != nil {
		return models.WeightEntry{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = t.Today()
	}
	e := models.WeightEntry{ID: utils.NewID(), Weight: in.Weight, Date: date}
	if t.state.UpsertWeight(e) {
		t.log.Debug().Str("date", date.String()).Msg("replaced weight entry")
	}
	t.logActivity(models.CategoryWeight, fmt.Sprintf("Logged weight: %s kg", strconv.FormatFloat(in.Weight, 'f', -1, 64)))
	return e, t.persist(ctx)
}

// DeleteWorkout removes a workout by id. An unknown id changes nothing but is
// still logged and saved. The bool reports whether a workout was removed.
func (t *Tracker) DeleteWorkout(ctx context.Context, id string) (bool, error) {
	removed := t.state.RemoveWorkout(id)
	t.logActivity(models.CategoryWorkout, "Deleted a workout")
	return removed, t.persist(ctx)
}

func (t *Tracker) DeleteMeal(ctx context.Context, id string) (bool, error) {
	removed := t.state.RemoveMeal(id)
	t.logActivity(models.CategoryMeal, "Deleted a meal")
	return removed, t.persist(ctx)
}

// AddWater adds one glass and returns the new total.
func (t *Tracker) AddWater(ctx context.Context) (int, error) {
	t.state.WaterIntake++
	t.logActivity(models.CategoryWater, fmt.Sprintf("Added water intake: %d glasses", t.state.WaterIntake))
	return t.state.WaterIntake, t.persist(ctx)
}
