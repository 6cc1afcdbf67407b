package stats

import (
	"fmt"
	"sort"

	"github.com/misterclayt0n/fittrack/internal/models"
)

const (
	WeightSeriesName  = "Weight (kg)"
	WorkoutSeriesName = "Workouts per week"

	bucketDays = 7
	// Above this many buckets only every other week label is shown.
	denseLabelLimit = 4
)

// Series is plot-ready data: one label per value.
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

// WeekBucket counts workouts in the inclusive range [Start, End].
type WeekBucket struct {
	Start models.Date
	End   models.Date
	Count int
}

// WeightSeries plots the entries oldest to newest. Missing days are not
// interpolated.
func WeightSeries(entries []models.WeightEntry) Series {
	sorted := append([]models.WeightEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	s := Series{
		Name:   WeightSeriesName,
		Labels: make([]string, len(sorted)),
		Values: make([]float64, len(sorted)),
	}
	for i, e := range sorted {
		s.Labels[i] = e.Date.Short()
		s.Values[i] = e.Weight
	}
	return s
}

// WorkoutBuckets splits [start, end] into consecutive 7-day buckets, the last
// one cut short at end, and counts each workout in the first bucket that
// holds its date.
func WorkoutBuckets(workouts []models.WorkoutEntry, start, end models.Date) []WeekBucket {
	var buckets []WeekBucket
	for d := start; !d.After(end); d = d.AddDays(bucketDays) {
		last := d.AddDays(bucketDays - 1)
		if last.After(end) {
			last = end
		}
		buckets = append(buckets, WeekBucket{Start: d, End: last})
	}

	for _, w := range workouts {
		for i := range buckets {
			if w.Date.Between(buckets[i].Start, buckets[i].End) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

func WorkoutSeries(workouts []models.WorkoutEntry, start, end models.Date) Series {
	buckets := WorkoutBuckets(workouts, start, end)
	s := Series{
		Name:   WorkoutSeriesName,
		Labels: weekLabels(len(buckets)),
		Values: make([]float64, len(buckets)),
	}
	for i, b := range buckets {
		s.Values[i] = float64(b.Count)
	}
	return s
}

func weekLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		if n <= denseLabelLimit || i%2 == 0 || i == n-1 {
			labels[i] = fmt.Sprintf("Week %d", i+1)
		}
	}
	return labels
}

// Charts returns the weight and weekly-workout series for the window.
func (p Progress) Charts() (weight, workouts Series) {
	return WeightSeries(p.Weights), WorkoutSeries(p.Workouts, p.Start, p.End)
}
