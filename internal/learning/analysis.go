package learning

import (
	"sort"
	"strings"

	"github.com/inboxsense/inboxsense/internal/feedback"
)

const (
	// MinEntriesForPatterns is the smallest log that pattern analysis will
	// aggregate.
	MinEntriesForPatterns = 5

	// MinEntriesForTrend is the smallest log that yields a time trend.
	MinEntriesForTrend = 10

	// minSenderEmails is how many entries a sender needs before it appears
	// in the sender patterns.
	minSenderEmails = 3

	// Accuracy cutoffs for strongest/weakest area classification. A level
	// between the two appears in neither list.
	strongAreaCutoff = 80
	weakAreaCutoff   = 60
)

// Trend direction labels.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// LevelAccuracy is the per-prediction-level accuracy rollup.
type LevelAccuracy struct {
	Total    int     `json:"total"`
	Accurate int     `json:"accurate"`
	Accuracy float64 `json:"accuracy"`
}

// SenderPattern is the per-sender rollup for senders with at least
// minSenderEmails entries. High value here means an escalation or a useful
// rating on a high/urgent prediction; a useful rating on a medium or low
// prediction is just low-priority agreement and does not count.
type SenderPattern struct {
	Sender          string  `json:"sender"`
	TotalEmails     int     `json:"total_emails"`
	HighValueEmails int     `json:"high_value_emails"`
	HighValueRate   float64 `json:"high_value_rate"`
	EscalatedEmails int     `json:"escalated_emails"`
	EscalationRate  float64 `json:"escalation_rate"`
	Accuracy        float64 `json:"accuracy"`
}

// TimeTrend compares prediction accuracy between the chronological halves
// of the entry log.
type TimeTrend struct {
	EarlyAccuracy  float64 `json:"early_accuracy"`
	RecentAccuracy float64 `json:"recent_accuracy"`
	Trend          string  `json:"trend"`
	Improvement    float64 `json:"improvement"`
}

// PatternAnalysis aggregates the full feedback log.
type PatternAnalysis struct {
	FeedbackCount   int                               `json:"feedback_count"`
	AccuracyByLevel map[feedback.Level]LevelAccuracy  `json:"accuracy_by_level"`
	SenderPatterns  []SenderPattern                   `json:"sender_patterns"`
	TimeTrend       *TimeTrend                        `json:"time_trends,omitempty"`
	FeedbackTypes   map[feedback.Type]int             `json:"feedback_type_distribution"`
	StrongestAreas  []feedback.Level                  `json:"strongest_areas"`
	WeakestAreas    []feedback.Level                  `json:"weakest_areas"`
}

// AnalyzePatterns aggregates the entry log into accuracy, sender, trend and
// distribution views. ok is false when fewer than MinEntriesForPatterns
// entries exist; that is a normal condition, not an error, and callers
// render a "need more feedback" message from the entry count. TimeTrend is
// nil below MinEntriesForTrend.
func AnalyzePatterns(entries []feedback.Entry) (*PatternAnalysis, bool) {
	if len(entries) < MinEntriesForPatterns {
		return nil, false
	}

	byLevel := accuracyByLevel(entries)

	return &PatternAnalysis{
		FeedbackCount:   len(entries),
		AccuracyByLevel: byLevel,
		SenderPatterns:  senderPatterns(entries),
		TimeTrend:       timeTrend(entries),
		FeedbackTypes:   feedbackDistribution(entries),
		StrongestAreas:  areasAtOrAbove(entries, byLevel, strongAreaCutoff),
		WeakestAreas:    areasBelow(entries, byLevel, weakAreaCutoff),
	}, true
}

// entryLevel normalizes the grouping key for accuracy-by-level. Entries
// with no recorded level group under "unknown".
func entryLevel(e feedback.Entry) feedback.Level {
	if e.PredictedLevel == "" {
		return "unknown"
	}
	return e.PredictedLevel
}

func accuracyByLevel(entries []feedback.Entry) map[feedback.Level]LevelAccuracy {
	type tally struct{ total, accurate int }
	counts := make(map[feedback.Level]*tally)

	for _, e := range entries {
		level := entryLevel(e)
		t, ok := counts[level]
		if !ok {
			t = &tally{}
			counts[level] = t
		}
		t.total++
		if e.WasAccurate {
			t.accurate++
		}
	}

	result := make(map[feedback.Level]LevelAccuracy, len(counts))
	for level, t := range counts {
		result[level] = LevelAccuracy{
			Total:    t.total,
			Accurate: t.accurate,
			Accuracy: round1(float64(t.accurate) / float64(t.total) * 100),
		}
	}
	return result
}

// isHighValueForSender applies the sender-scoped high-value definition: an
// escalation, or agreement with a high/urgent prediction. Deliberately
// stricter than the content-pattern definition in content.go.
func isHighValueForSender(e feedback.Entry) bool {
	if e.ActualInterest == feedback.InterestMoreImportant {
		return true
	}
	level := feedback.Level(strings.ToLower(string(e.PredictedLevel)))
	return e.ActualInterest == feedback.InterestUseful &&
		(level == feedback.LevelHigh || level == feedback.LevelUrgent)
}

func senderPatterns(entries []feedback.Entry) []SenderPattern {
	type tally struct {
		total, highValue, escalated, accurate int
	}
	counts := make(map[string]*tally)
	var order []string

	for _, e := range entries {
		sender := e.EmailFrom
		if sender == "" {
			sender = "Unknown"
		}
		t, ok := counts[sender]
		if !ok {
			t = &tally{}
			counts[sender] = t
			order = append(order, sender)
		}
		t.total++
		if e.ActualInterest == feedback.InterestMoreImportant {
			t.escalated++
		}
		if isHighValueForSender(e) {
			t.highValue++
		}
		if e.WasAccurate {
			t.accurate++
		}
	}

	var patterns []SenderPattern
	for _, sender := range order {
		t := counts[sender]
		if t.total < minSenderEmails {
			continue
		}
		patterns = append(patterns, SenderPattern{
			Sender:          sender,
			TotalEmails:     t.total,
			HighValueEmails: t.highValue,
			HighValueRate:   round1(float64(t.highValue) / float64(t.total) * 100),
			EscalatedEmails: t.escalated,
			EscalationRate:  round1(float64(t.escalated) / float64(t.total) * 100),
			Accuracy:        round1(float64(t.accurate) / float64(t.total) * 100),
		})
	}

	// Most frequent senders first; ties keep first-seen order.
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].TotalEmails > patterns[j].TotalEmails
	})
	return patterns
}

// timeTrend splits the chronological list in half and compares accuracy.
// The comparison uses a 5% band around the early accuracy so that small
// wobbles read as stable.
func timeTrend(entries []feedback.Entry) *TimeTrend {
	if len(entries) < MinEntriesForTrend {
		return nil
	}

	half := len(entries) / 2
	early := accuracyPercent(entries[:half])
	recent := accuracyPercent(entries[half:])

	trend := TrendStable
	switch {
	case recent > early*1.05:
		trend = TrendImproving
	case recent < early*0.95:
		trend = TrendDeclining
	}

	return &TimeTrend{
		EarlyAccuracy:  round1(early),
		RecentAccuracy: round1(recent),
		Trend:          trend,
		Improvement:    round1(recent - early),
	}
}

func accuracyPercent(entries []feedback.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	accurate := 0
	for _, e := range entries {
		if e.WasAccurate {
			accurate++
		}
	}
	return float64(accurate) / float64(len(entries)) * 100
}

func feedbackDistribution(entries []feedback.Entry) map[feedback.Type]int {
	dist := make(map[feedback.Type]int)
	for _, e := range entries {
		t := e.FeedbackType
		if t == "" {
			t = "unknown"
		}
		dist[t]++
	}
	return dist
}

func areasAtOrAbove(entries []feedback.Entry, byLevel map[feedback.Level]LevelAccuracy, cutoff float64) []feedback.Level {
	var areas []feedback.Level
	for _, level := range orderedLevels(entries, byLevel) {
		if byLevel[level].Accuracy >= cutoff {
			areas = append(areas, level)
		}
	}
	return areas
}

func areasBelow(entries []feedback.Entry, byLevel map[feedback.Level]LevelAccuracy, cutoff float64) []feedback.Level {
	var areas []feedback.Level
	for _, level := range orderedLevels(entries, byLevel) {
		if byLevel[level].Accuracy < cutoff {
			areas = append(areas, level)
		}
	}
	return areas
}

// orderedLevels yields the levels present in byLevel in canonical order
// (urgent, high, medium, low) followed by any other levels in first-seen
// order, so list output is deterministic.
func orderedLevels(entries []feedback.Entry, byLevel map[feedback.Level]LevelAccuracy) []feedback.Level {
	canonical := []feedback.Level{
		feedback.LevelUrgent, feedback.LevelHigh, feedback.LevelMedium, feedback.LevelLow,
	}

	seen := make(map[feedback.Level]bool, len(byLevel))
	var levels []feedback.Level
	for _, level := range canonical {
		if _, ok := byLevel[level]; ok {
			levels = append(levels, level)
			seen[level] = true
		}
	}
	for _, e := range entries {
		level := entryLevel(e)
		if _, ok := byLevel[level]; ok && !seen[level] {
			levels = append(levels, level)
			seen[level] = true
		}
	}
	return levels
}
