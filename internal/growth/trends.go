package growth

import (
	"math"
	"time"
)

// Trend classifies the recent week against the rest of the history.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

const (
	recentWindow     = 7
	goodDayThreshold = 0.7
	trendDeadband    = 10.0 // percent
)

// Streaks counts consecutive good days.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// TrendResult is the trend/streak read model. Averages and ratios are
// percentages.
type TrendResult struct {
	Trend          Trend   `json:"trend"`
	Improvement    float64 `json:"improvement"`
	Consistency    float64 `json:"consistency"`
	Streaks        Streaks `json:"streaks"`
	RecentAverage  float64 `json:"recentAverage"`
	OverallAverage float64 `json:"overallAverage"`
}

// AnalyzeTrends is AnalyzeTrendsAt evaluated against the current time.
func AnalyzeTrends(records []DailyRecord) TrendResult {
	return AnalyzeTrendsAt(records, time.Now())
}

// AnalyzeTrendsAt compares the last seven records with the older ones and
// detects good-day streaks. now anchors the "current" streak.
func AnalyzeTrendsAt(records []DailyRecord, now time.Time) TrendResult {
	if len(records) < 2 {
		return TrendResult{Trend: TrendInsufficientData}
	}

	sorted := sortedByDate(records)

	split := len(sorted) - recentWindow
	if split < 0 {
		split = 0
	}
	recent, older := sorted[split:], sorted[:split]

	recentAvg := avgCompletion(recent)
	olderAvg := avgCompletion(older)
	improvement := (recentAvg - olderAvg) / math.Max(olderAvg, 0.01) * 100

	goodDays := 0
	for _, r := range sorted {
		if DayCompletion(r) >= goodDayThreshold {
			goodDays++
		}
	}
	consistency := float64(goodDays) / float64(len(sorted)) * 100

	trend := TrendStable
	switch {
	case improvement > trendDeadband:
		trend = TrendImproving
	case improvement < -trendDeadband:
		trend = TrendDeclining
	}

	return TrendResult{
		Trend:          trend,
		Improvement:    improvement,
		Consistency:    consistency,
		Streaks:        detectStreaks(sorted, now),
		RecentAverage:  recentAvg * 100,
		OverallAverage: avgCompletion(sorted) * 100,
	}
}

// detectStreaks walks sorted records once. The current streak is
// overwritten at every good day dated within one day of now, so it reports
// the run as of the last such record.
func detectStreaks(sorted []DailyRecord, now time.Time) Streaks {
	var s Streaks
	run := 0
	for _, r := range sorted {
		if DayCompletion(r) < goodDayThreshold {
			run = 0
			continue
		}
		run++
		if run > s.Longest {
			s.Longest = run
		}
		if daysBetween(ParseDate(r.Date), now) <= 1 {
			s.Current = run
		}
	}
	return s
}

// daysBetween is floor((to - from) / 24h).
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
