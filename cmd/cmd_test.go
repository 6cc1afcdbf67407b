package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fittrack/internal/utils"
)

var seedDay = time.Date(2025, 3, 20, 18, 30, 0, 0, time.UTC)

// resetFlags puts every flag back to its default; flag values live in package
// vars and would otherwise leak from one Execute into the next.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// setupCLI points the root command at a fresh file store and pins the clock.
func setupCLI(t *testing.T) func(args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	for _, key := range []string{"TURSO_DATABASE_URL", "REDIS_URL", "DEV_MODE", "FITTRACK_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := fmt.Sprintf("timezone = \"UTC\"\n\n[store]\nbackend = \"file\"\npath = %q\n", filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	clock = utils.FixedClock(seedDay)
	t.Cleanup(func() { clock = nil })

	return func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs(append(args, "--config", cfgPath))
		defer resetFlags(rootCmd)
		err := rootCmd.Execute()
		return out.String(), err
	}
}

func TestInitSeedsOnce(t *testing.T) {
	run := setupCLI(t)

	out, err := run("init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized with sample data")

	out, err = run("init")
	require.NoError(t, err)
	assert.Contains(t, out, "already initialized")
}

func TestWorkoutAddShowsOnDashboard(t *testing.T) {
	run := setupCLI(t)

	out, err := run("workout", "add", "--type", "running", "--duration", "45", "--intensity", "vigorous")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Running workout: 45 min, Vigorous, 525 cal")

	out, err = run("dashboard")
	require.NoError(t, err)
	// Seeded 30 min run (300 cal) plus the one above.
	assert.Contains(t, out, "Calories burned: 825")
	assert.Contains(t, out, "Running (45 min)")
	assert.Contains(t, out, "Logged Running workout")
}

func TestWaterAddIncrements(t *testing.T) {
	run := setupCLI(t)

	out, err := run("water", "add")
	require.NoError(t, err)
	assert.Contains(t, out, "1 glasses")

	out, err = run("water", "add")
	require.NoError(t, err)
	assert.Contains(t, out, "2 glasses")
}

func TestWorkoutAddRejectsUnknownType(t *testing.T) {
	run := setupCLI(t)

	_, err := run("workout", "add", "--type", "curling", "--duration", "10")
	assert.Error(t, err)
}

func TestProgressRejectsNonPositiveWindow(t *testing.T) {
	run := setupCLI(t)

	_, err := run("progress", "--days", "0")
	assert.Error(t, err)

	out, err := run("progress", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "LAST 7 DAYS")
	assert.Contains(t, out, "Total workouts: 1")
}

func TestMealListTodayAndAll(t *testing.T) {
	run := setupCLI(t)
	_, err := run("init")
	require.NoError(t, err)

	clock = utils.FixedClock(seedDay.AddDate(0, 0, 1))

	out, err := run("meal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No meals logged for today.")

	out, err = run("meal", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-20")
	assert.Contains(t, out, "Oatmeal with fruits")

	out, err = run("meal", "add", "--slot", "lunch", "--name", "Salad", "--calories", "400", "--protein", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Lunch: Salad, 400 cal")

	out, err = run("meal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Salad")
	assert.NotContains(t, out, "Oatmeal")
	assert.Contains(t, out, "Total: 400 / 2000 cal  P: 12g")
	assert.Contains(t, out, "Remaining: 1600 cal")
}

func TestWeightAddReplacesSameDay(t *testing.T) {
	run := setupCLI(t)

	out, err := run("weight", "add", "71.5", "--date", "2025-03-19")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 71.5 kg on 2025-03-19")

	_, err = run("weight", "add", "71.2", "--date", "2025-03-19")
	require.NoError(t, err)

	out, err = run("weight", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "71.5 kg")
	newest := strings.Index(out, "2025-03-20  70 kg")
	older := strings.Index(out, "2025-03-19  71.2 kg")
	require.GreaterOrEqual(t, newest, 0)
	require.GreaterOrEqual(t, older, 0)
	assert.Less(t, newest, older)

	_, err = run("weight", "add", "heavy")
	assert.Error(t, err)
}

func TestCalendarMarksWorkoutDays(t *testing.T) {
	run := setupCLI(t)

	out, err := run("calendar", "3", "2025", "--details")
	require.NoError(t, err)
	assert.Contains(t, out, "March 2025")
	assert.Contains(t, out, "20*")
	assert.Contains(t, out, "Legend:")
	assert.Contains(t, out, "Thu, 20 Mar 2025")
	assert.Contains(t, out, "Running 30 min (Moderate, 300 cal)")

	out, err = run("calendar", "2", "2025")
	require.NoError(t, err)
	assert.NotContains(t, out, "Legend:")
	assert.NotContains(t, out, "Workout Details:")

	_, err = run("calendar", "13")
	assert.Error(t, err)
}

func TestActivityNewestFirst(t *testing.T) {
	run := setupCLI(t)
	_, err := run("water", "add")
	require.NoError(t, err)
	_, err = run("workout", "add", "--type", "yoga", "--duration", "20")
	require.NoError(t, err)

	out, err := run("activity")
	require.NoError(t, err)
	yoga := strings.Index(out, "Logged Yoga workout")
	water := strings.Index(out, "Added water intake: 1 glasses")
	require.GreaterOrEqual(t, yoga, 0)
	require.GreaterOrEqual(t, water, 0)
	assert.Less(t, yoga, water)
	assert.Contains(t, out, "06:30 PM")
}
