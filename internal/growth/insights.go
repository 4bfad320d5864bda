package growth

import (
	"fmt"
	"unicode/utf8"
)

// minInsightRecords is the history needed before metrics are meaningful.
const minInsightRecords = 3

// Placeholder insights for a short history.
const (
	PlaceholderStrength    = "Start tracking to identify strengths"
	PlaceholderImprovement = "Complete daily records consistently"
)

// InsightResult lists natural-language strengths and improvement areas.
type InsightResult struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// insightRule maps one metric onto at most one message. Values strictly
// between low and high produce nothing.
type insightRule struct {
	high, low   float64
	strength    func(v float64) string
	improvement func(v float64) string
}

var (
	taskRule = insightRule{
		high: 0.8, low: 0.5,
		strength: func(v float64) string {
			return fmt.Sprintf("Excellent task completion at %.0f%%", v*100)
		},
		improvement: func(v float64) string {
			return fmt.Sprintf("Task completion is low at %.0f%%; try planning fewer, smaller tasks", v*100)
		},
	}
	habitRule = insightRule{
		high: 0.8, low: 0.5,
		strength: func(v float64) string {
			return fmt.Sprintf("Strong habit adherence at %.0f%%", v*100)
		},
		improvement: func(v float64) string {
			return fmt.Sprintf("Habit adherence is %.0f%%; anchor habits to an existing routine", v*100)
		},
	}
	learningRule = insightRule{
		high: 3, low: 1,
		strength: func(v float64) string {
			return fmt.Sprintf("Great learning pace: %.1f items per day", v)
		},
		improvement: func(v float64) string {
			return fmt.Sprintf("Only %.1f learning items per day; aim for at least one", v)
		},
	}
	consistencyRule = insightRule{
		high: 0.85, low: 0.6,
		strength: func(v float64) string {
			return fmt.Sprintf("Very consistent tracking: %.0f%% of days without gaps", v*100)
		},
		improvement: func(v float64) string {
			return fmt.Sprintf("Only %.0f%% of days tracked without gaps; submit every day", v*100)
		},
	}
	reflectionRule = insightRule{
		high: 0.7, low: 0.3,
		strength: func(v float64) string {
			return fmt.Sprintf("Thoughtful reflections on %.0f%% of days", v*100)
		},
		improvement: func(v float64) string {
			return fmt.Sprintf("Meaningful reflections on only %.0f%% of days; write a few sentences", v*100)
		},
	}
)

func (rule insightRule) apply(v float64, out *InsightResult) {
	switch {
	case v >= rule.high:
		out.Strengths = append(out.Strengths, rule.strength(v))
	case v < rule.low:
		out.Improvements = append(out.Improvements, rule.improvement(v))
	}
}

// IdentifyInsights evaluates task, habit, learning, consistency and
// reflection metrics over the whole history, in that order.
func IdentifyInsights(records []DailyRecord) InsightResult {
	if len(records) < minInsightRecords {
		return InsightResult{
			Strengths:    []string{PlaceholderStrength},
			Improvements: []string{PlaceholderImprovement},
		}
	}

	n := float64(len(records))
	var taskSum, habitSum, learningSum float64
	var tracked, reflective int
	for _, r := range records {
		taskSum += CompletionRate(r.TasksCompleted, r.TotalTasks)
		habitSum += CompletionRate(r.HabitsCompleted, r.TotalHabits)
		learningSum += float64(r.LearningItemsCompleted)
		if r.MissedDays == 0 {
			tracked++
		}
		if utf8.RuneCountInString(r.Reflection) > 10 {
			reflective++
		}
	}

	out := InsightResult{Strengths: []string{}, Improvements: []string{}}
	taskRule.apply(taskSum/n, &out)
	habitRule.apply(habitSum/n, &out)
	learningRule.apply(learningSum/n, &out)
	consistencyRule.apply(float64(tracked)/n, &out)
	reflectionRule.apply(float64(reflective)/n, &out)
	return out
}
