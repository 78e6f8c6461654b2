package feedback

import "sort"

// recentWindow is how many trailing entries the quick trend and the
// misprediction check look at.
const recentWindow = 20

// Trends compares accuracy over the most recent entries against the overall
// accuracy stored in the log.
type Trends struct {
	RecentAccuracy      float64 `json:"recent_accuracy"`
	OverallAccuracy     float64 `json:"overall_accuracy"`
	Trend               string  `json:"trend"`
	RecentFeedbackCount int     `json:"recent_feedback_count"`
}

// SenderSummary is a per-sender rollup used by the quick insights view.
// This is the simple view; the learning package computes the richer
// high-value/escalation sender patterns.
type SenderSummary struct {
	Sender       string  `json:"sender"`
	TotalEmails  int     `json:"total_emails"`
	Accuracy     float64 `json:"accuracy"`
	UsefulEmails int     `json:"useful_emails"`
}

// Insights is a lightweight summary rendered by the CLI without running the
// full pattern analysis.
type Insights struct {
	Stats           Stats           `json:"stats"`
	Trends          *Trends         `json:"trends,omitempty"`
	SenderPatterns  []SenderSummary `json:"sender_patterns,omitempty"`
	Recommendations []string        `json:"recommendations"`
}

// Insights summarizes the current log. With no entries only the zero stats
// and a hint to start rating are returned.
func (s *Store) Insights() Insights {
	entries := s.log.Entries
	if len(entries) == 0 {
		return Insights{
			Stats: s.log.Stats,
			Recommendations: []string{
				"No feedback data yet. Start providing feedback to see insights.",
			},
		}
	}

	return Insights{
		Stats:           s.log.Stats,
		Trends:          s.analyzeTrends(entries),
		SenderPatterns:  summarizeSenders(entries),
		Recommendations: s.recommendations(entries),
	}
}

func (s *Store) analyzeTrends(entries []Entry) *Trends {
	recent := entries
	if len(entries) > recentWindow {
		recent = entries[len(entries)-recentWindow:]
	}

	accurate := 0
	for _, e := range recent {
		if e.WasAccurate {
			accurate++
		}
	}
	recentAccuracy := float64(accurate) / float64(len(recent)) * 100

	overall := s.log.Stats.CurrentAccuracy
	trend := "stable"
	switch {
	case recentAccuracy > overall:
		trend = "improving"
	case recentAccuracy < overall:
		trend = "declining"
	}

	return &Trends{
		RecentAccuracy:      round1(recentAccuracy),
		OverallAccuracy:     overall,
		Trend:               trend,
		RecentFeedbackCount: len(recent),
	}
}

func summarizeSenders(entries []Entry) []SenderSummary {
	type tally struct {
		total, accurate, useful int
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
		if e.WasAccurate {
			t.accurate++
		}
		if e.ActualInterest == InterestUseful {
			t.useful++
		}
	}

	summaries := make([]SenderSummary, 0, len(order))
	for _, sender := range order {
		t := counts[sender]
		summaries = append(summaries, SenderSummary{
			Sender:       sender,
			TotalEmails:  t.total,
			Accuracy:     round1(float64(t.accurate) / float64(t.total) * 100),
			UsefulEmails: t.useful,
		})
	}

	// Most frequent senders first; ties keep first-seen order.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalEmails > summaries[j].TotalEmails
	})

	if len(summaries) > 10 {
		summaries = summaries[:10]
	}
	return summaries
}

func (s *Store) recommendations(entries []Entry) []string {
	var recs []string

	accuracy := s.log.Stats.CurrentAccuracy
	switch {
	case accuracy < 60:
		recs = append(recs, "Accuracy is low. Update your interest profile with current interests and projects.")
	case accuracy < 75:
		recs = append(recs, "Good progress. Continue providing feedback to improve accuracy.")
	case accuracy >= 85:
		recs = append(recs, "Excellent accuracy. The AI understands your preferences well.")
	}

	recent := entries
	if len(entries) > recentWindow {
		recent = entries[len(entries)-recentWindow:]
	}
	misses := 0
	for _, e := range recent {
		if !e.WasAccurate {
			misses++
		}
	}
	if misses > 10 {
		recs = append(recs, "Many recent mispredictions. Consider reviewing your interest profile.")
	}

	if s.log.Stats.TotalFeedbackCount < 20 {
		recs = append(recs, "Provide more feedback (20+ emails) for better AI learning.")
	}

	return recs
}
