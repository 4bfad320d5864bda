package growth

import "math"

// projectionDays is how far ActualGrowth extrapolates the average rate.
const projectionDays = 30

// Config weights the daily performance score. Every field is optional:
// a nil field takes its default from DefaultWeights, and an explicit zero
// is honoured. Weights are intended to sum to 1 but nothing enforces it.
type Config struct {
	BaseGrowthRate    *float64 `json:"baseGrowthRate,omitempty"`
	TaskWeight        *float64 `json:"taskWeight,omitempty"`
	HabitWeight       *float64 `json:"habitWeight,omitempty"`
	LearningWeight    *float64 `json:"learningWeight,omitempty"`
	ConsistencyWeight *float64 `json:"consistencyWeight,omitempty"`
}

// Weights is a Config with every field resolved.
type Weights struct {
	BaseGrowthRate    float64 `json:"baseGrowthRate"`
	TaskWeight        float64 `json:"taskWeight"`
	HabitWeight       float64 `json:"habitWeight"`
	LearningWeight    float64 `json:"learningWeight"`
	ConsistencyWeight float64 `json:"consistencyWeight"`
}

// DefaultWeights is 1% a day at full performance.
func DefaultWeights() Weights {
	return Weights{
		BaseGrowthRate:    0.01,
		TaskWeight:        0.4,
		HabitWeight:       0.3,
		LearningWeight:    0.2,
		ConsistencyWeight: 0.1,
	}
}

// Option sets one Config field.
type Option func(*Config)

func WithBaseRate(v float64) Option          { return func(c *Config) { c.BaseGrowthRate = &v } }
func WithTaskWeight(v float64) Option        { return func(c *Config) { c.TaskWeight = &v } }
func WithHabitWeight(v float64) Option       { return func(c *Config) { c.HabitWeight = &v } }
func WithLearningWeight(v float64) Option    { return func(c *Config) { c.LearningWeight = &v } }
func WithConsistencyWeight(v float64) Option { return func(c *Config) { c.ConsistencyWeight = &v } }

// NewConfig builds a Config from options. Fields without an option stay
// unset and resolve to their defaults.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DefaultConfig is a Config with every field set to its default.
func DefaultConfig() Config {
	return DefaultWeights().Config()
}

// Config converts resolved weights back to a fully set Config.
func (w Weights) Config() Config {
	return NewConfig(
		WithBaseRate(w.BaseGrowthRate),
		WithTaskWeight(w.TaskWeight),
		WithHabitWeight(w.HabitWeight),
		WithLearningWeight(w.LearningWeight),
		WithConsistencyWeight(w.ConsistencyWeight),
	)
}

// Resolve fills each unset field with its default.
func (c Config) Resolve() Weights {
	w := DefaultWeights()
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{c.BaseGrowthRate, &w.BaseGrowthRate},
		{c.TaskWeight, &w.TaskWeight},
		{c.HabitWeight, &w.HabitWeight},
		{c.LearningWeight, &w.LearningWeight},
		{c.ConsistencyWeight, &w.ConsistencyWeight},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return w
}

// GrowthResult is the compound-growth read model.
type GrowthResult struct {
	TotalGrowth         float64 `json:"totalGrowth"`
	GrowthPercentage    float64 `json:"growthPercentage"`
	AverageDailyRate    float64 `json:"averageDailyRate"` // percent
	ProjectedGrowth     float64 `json:"projectedGrowth"`
	ProjectedPercentage float64 `json:"projectedPercentage"`
}

// CompoundGrowth returns initialValue * (1+growthRate)^days. Negative days
// leave the value unchanged.
func CompoundGrowth(days int, initialValue, growthRate float64) float64 {
	if days < 0 {
		return initialValue
	}
	return initialValue * math.Pow(1+growthRate, float64(days))
}

// ProjectionCurve samples CompoundGrowth for day 0 through days.
func ProjectionCurve(days int, initialValue, growthRate float64) []float64 {
	if days < 0 {
		return []float64{initialValue}
	}
	curve := make([]float64, 0, days+1)
	for d := 0; d <= days; d++ {
		curve = append(curve, CompoundGrowth(d, initialValue, growthRate))
	}
	return curve
}

// PerformanceScore blends a record's completion ratios and its
// consistency factor (1 when tracked, 0.7 otherwise).
func PerformanceScore(r DailyRecord, cfg Config) float64 {
	return performanceScore(r, cfg.Resolve())
}

func performanceScore(r DailyRecord, w Weights) float64 {
	taskScore := CompletionRate(r.TasksCompleted, r.TotalTasks)
	habitScore := CompletionRate(r.HabitsCompleted, r.TotalHabits)
	learningScore := CompletionRate(r.LearningItemsCompleted, r.TotalLearningItems)
	consistencyScore := 0.7
	if r.MissedDays == 0 {
		consistencyScore = 1
	}

	return taskScore*w.TaskWeight +
		habitScore*w.HabitWeight +
		learningScore*w.LearningWeight +
		consistencyScore*w.ConsistencyWeight
}

// ActualGrowth compounds a performance-modulated daily rate over records in
// the order supplied. It does not sort: callers pass records oldest first.
func ActualGrowth(records []DailyRecord, cfg Config) GrowthResult {
	if len(records) == 0 {
		return GrowthResult{TotalGrowth: 1, ProjectedGrowth: 1}
	}
	w := cfg.Resolve()

	cumulative := 1.0
	var rateSum float64
	for _, r := range records {
		dailyRate := w.BaseGrowthRate * performanceScore(r, w)
		rateSum += dailyRate
		cumulative *= 1 + dailyRate
	}

	avgRate := rateSum / float64(len(records))
	projected := cumulative * math.Pow(1+avgRate, projectionDays)

	return GrowthResult{
		TotalGrowth:         cumulative,
		GrowthPercentage:    (cumulative - 1) * 100,
		AverageDailyRate:    avgRate * 100,
		ProjectedGrowth:     projected,
		ProjectedPercentage: (projected - 1) * 100,
	}
}
