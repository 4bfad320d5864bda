package growth

import (
	"math"
	"time"
)

// LiveItem is a checklist entry of the day in progress.
type LiveItem struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Query is an open question; unresolved ones count as knowledge debt.
type Query struct {
	Question string `json:"question"`
	Resolved bool   `json:"resolved"`
}

// LiveState is the not-yet-submitted day.
type LiveState struct {
	CycleDay int        `json:"cycleDay"`
	Tasks    []LiveItem `json:"tasks"`
	Habits   []LiveItem `json:"habits"`
	Queries  []Query    `json:"queries"`
}

// Productivity scores the current day only. Planner, Habits and Global are
// whole percentages.
type Productivity struct {
	Global        int `json:"global"`
	Planner       int `json:"planner"`
	Habits        int `json:"habits"`
	KnowledgeDebt int `json:"knowledgeDebt"`
}

// GrowthView is GrowthResult reshaped for the dashboard.
type GrowthView struct {
	Total               float64 `json:"total"`
	Percentage          float64 `json:"percentage"`
	Daily               float64 `json:"daily"`
	Projected           float64 `json:"projected"`
	ProjectedPercentage float64 `json:"projectedPercentage"`
}

// Snapshot is the dashboard read model.
type Snapshot struct {
	Productivity
	Growth           GrowthView    `json:"growth"`
	Trends           TrendResult   `json:"trends"`
	Summaries        Summaries     `json:"summaries"`
	Insights         InsightResult `json:"insights"`
	TotalDaysTracked int           `json:"totalDaysTracked"`
	ActiveDays       int           `json:"activeDays"`
}

func donePercent(items []LiveItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.Done {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

// CalculateProductivity scores the live day.
func CalculateProductivity(live LiveState) Productivity {
	planner := donePercent(live.Tasks)
	habits := donePercent(live.Habits)

	debt := 0
	for _, q := range live.Queries {
		if !q.Resolved {
			debt++
		}
	}

	return Productivity{
		Global:        int(math.Round(float64(planner+habits) / 2)),
		Planner:       planner,
		Habits:        habits,
		KnowledgeDebt: debt,
	}
}

// CalculateEnhancedProductivity is CalculateEnhancedProductivityAt
// evaluated against the current time.
func CalculateEnhancedProductivity(live LiveState, history []DailyRecord, cfg Config) Snapshot {
	return CalculateEnhancedProductivityAt(live, history, cfg, time.Now())
}

// CalculateEnhancedProductivityAt merges the live day's scores with the
// analytics over history. history is passed to ActualGrowth unsorted.
func CalculateEnhancedProductivityAt(live LiveState, history []DailyRecord, cfg Config, now time.Time) Snapshot {
	g := ActualGrowth(history, cfg)
	return Snapshot{
		Productivity: CalculateProductivity(live),
		Growth: GrowthView{
			Total:               g.TotalGrowth,
			Percentage:          g.GrowthPercentage,
			Daily:               g.AverageDailyRate,
			Projected:           g.ProjectedGrowth,
			ProjectedPercentage: g.ProjectedPercentage,
		},
		Trends:           AnalyzeTrendsAt(history, now),
		Summaries:        PeriodSummariesAt(history, now),
		Insights:         IdentifyInsights(history),
		TotalDaysTracked: len(history),
		ActiveDays:       live.CycleDay,
	}
}
