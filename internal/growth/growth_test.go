package growth

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// fixedNow anchors every time-relative test.
var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func rec(date string, tasks, totalTasks, habits, totalHabits, learning, totalLearning, missed int) DailyRecord {
	return DailyRecord{
		Date:                   date,
		CycleDay:               1,
		TasksCompleted:         tasks,
		TotalTasks:             totalTasks,
		HabitsCompleted:        habits,
		TotalHabits:            totalHabits,
		LearningItemsCompleted: learning,
		TotalLearningItems:     totalLearning,
		MissedDays:             missed,
	}
}

func fullDay(date string) DailyRecord {
	return rec(date, 5, 5, 5, 5, 3, 3, 0)
}

// daysAgo formats the calendar date n days before fixedNow.
func daysAgo(n int) string {
	return FormatDate(fixedNow.AddDate(0, 0, -n))
}

// ============================================================
// CompoundGrowth
// ============================================================

func TestCompoundGrowthZeroDays(t *testing.T) {
	for _, v := range []float64{0, 1, 42.5, -3} {
		for _, r := range []float64{0, 0.01, 0.5, -0.2} {
			assert.Equal(t, v, CompoundGrowth(0, v, r))
		}
	}
}

func TestCompoundGrowthNegativeDays(t *testing.T) {
	assert.Equal(t, 7.0, CompoundGrowth(-5, 7, 0.01))
}

func TestCompoundGrowthStrictlyIncreasing(t *testing.T) {
	prev := CompoundGrowth(0, 1, 0.01)
	for d := 1; d <= 365; d++ {
		cur := CompoundGrowth(d, 1, 0.01)
		require.Greater(t, cur, prev, "day %d", d)
		prev = cur
	}
}

func TestCompoundGrowthYear(t *testing.T) {
	assert.InDelta(t, 37.78343, CompoundGrowth(365, 1, 0.01), 1e-4)
}

func TestProjectionCurve(t *testing.T) {
	curve := ProjectionCurve(30, 1, 0.01)
	require.Len(t, curve, 31)
	assert.Equal(t, 1.0, curve[0])
	assert.InDelta(t, CompoundGrowth(30, 1, 0.01), curve[30], eps)

	assert.Equal(t, []float64{2}, ProjectionCurve(-1, 2, 0.01))
}

// ============================================================
// ActualGrowth
// ============================================================

func TestActualGrowthEmpty(t *testing.T) {
	got := ActualGrowth(nil, DefaultConfig())
	assert.Equal(t, GrowthResult{TotalGrowth: 1, ProjectedGrowth: 1}, got)
}

func TestActualGrowthSingleFullDay(t *testing.T) {
	r := fullDay("2024-01-01")
	assert.InDelta(t, 1.0, PerformanceScore(r, DefaultConfig()), eps)

	got := ActualGrowth([]DailyRecord{r}, DefaultConfig())
	assert.InDelta(t, 1.01, got.TotalGrowth, eps)
	assert.InDelta(t, 1.0, got.GrowthPercentage, eps)
	assert.InDelta(t, 1.0, got.AverageDailyRate, eps)
	assert.InDelta(t, 1.01*math.Pow(1.01, 30), got.ProjectedGrowth, eps)
	assert.InDelta(t, (got.ProjectedGrowth-1)*100, got.ProjectedPercentage, eps)
}

func TestActualGrowthZeroConfigUsesDefaults(t *testing.T) {
	records := []DailyRecord{fullDay("2024-01-01"), rec("2024-01-02", 1, 4, 2, 3, 0, 2, 0)}
	assert.Equal(t, ActualGrowth(records, DefaultConfig()), ActualGrowth(records, Config{}))
}

func TestActualGrowthMissedDayConsistency(t *testing.T) {
	r := rec("2024-01-01", 5, 5, 5, 5, 3, 3, 2)
	assert.InDelta(t, 0.97, PerformanceScore(r, DefaultConfig()), eps)
}

func TestActualGrowthZeroTotalsGuarded(t *testing.T) {
	r := rec("2024-01-01", 0, 0, 0, 0, 0, 0, 0)
	got := ActualGrowth([]DailyRecord{r}, DefaultConfig())

	// Only the consistency weight contributes.
	assert.InDelta(t, 1.001, got.TotalGrowth, eps)
	assert.False(t, math.IsNaN(got.ProjectedGrowth))
}

func TestActualGrowthCompounds(t *testing.T) {
	records := []DailyRecord{fullDay("2024-01-01"), fullDay("2024-01-02"), fullDay("2024-01-03")}
	got := ActualGrowth(records, DefaultConfig())
	assert.InDelta(t, math.Pow(1.01, 3), got.TotalGrowth, eps)
	assert.InDelta(t, 1.0, got.AverageDailyRate, eps)
}

func TestActualGrowthCustomWeights(t *testing.T) {
	cfg := NewConfig(WithBaseRate(0.02), WithTaskWeight(1), WithHabitWeight(0), WithLearningWeight(0), WithConsistencyWeight(0))
	r := rec("2024-01-01", 1, 2, 0, 1, 0, 1, 0)
	got := ActualGrowth([]DailyRecord{r}, cfg)
	assert.InDelta(t, 1.01, got.TotalGrowth, eps)
}

func TestActualGrowthPartialConfig(t *testing.T) {
	day := []DailyRecord{fullDay("2024-01-01")}

	t.Run("base rate only keeps default weights", func(t *testing.T) {
		got := ActualGrowth(day, Config{BaseGrowthRate: ptr(0.02)})
		assert.InDelta(t, 1.02, got.TotalGrowth, eps)
	})

	t.Run("weights only keep default base rate", func(t *testing.T) {
		cfg := NewConfig(WithTaskWeight(0.4), WithHabitWeight(0.3), WithLearningWeight(0.2), WithConsistencyWeight(0.1))
		got := ActualGrowth(day, cfg)
		assert.InDelta(t, 1.01, got.TotalGrowth, eps)
	})

	t.Run("explicit zero weight is honoured", func(t *testing.T) {
		r := rec("2024-01-01", 1, 1, 0, 1, 0, 1, 0) // tasks only, no habits or learning done
		assert.InDelta(t, 0.5, PerformanceScore(r, NewConfig(WithConsistencyWeight(0), WithTaskWeight(0.5))), eps)
	})

	t.Run("explicit zero base rate flattens growth", func(t *testing.T) {
		got := ActualGrowth(day, NewConfig(WithBaseRate(0)))
		assert.InDelta(t, 1.0, got.TotalGrowth, eps)
	})
}

func TestConfigResolve(t *testing.T) {
	assert.Equal(t, DefaultWeights(), Config{}.Resolve())
	assert.Equal(t, DefaultWeights(), DefaultConfig().Resolve())

	w := NewConfig(WithHabitWeight(0.5)).Resolve()
	assert.Equal(t, 0.5, w.HabitWeight)
	assert.Equal(t, DefaultWeights().TaskWeight, w.TaskWeight)
	assert.Equal(t, w, w.Config().Resolve())
}

func ptr(v float64) *float64 { return &v }

func TestActualGrowthDoesNotMutateInput(t *testing.T) {
	records := []DailyRecord{fullDay("2024-01-03"), fullDay("2024-01-01")}
	ActualGrowth(records, DefaultConfig())
	assert.Equal(t, "2024-01-03", records[0].Date)
}
