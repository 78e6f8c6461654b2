package learning

import "github.com/inboxsense/inboxsense/internal/feedback"

// Truncation sizes for the content-pattern rankings.
const (
	maxCategoryTags = 10
	maxContentTags  = 15
)

// ContentPatterns ranks the AI-analysis tags found across high-value
// entries.
type ContentPatterns struct {
	HighValueCount      int        `json:"high_value_count"`
	PreferredCategories []TagCount `json:"preferred_categories"`
	TechnologyInterests []TagCount `json:"technology_interests"`
	TopicThemes         []TagCount `json:"topic_themes"`
}

// HighValueEntries filters to escalations and useful agreements at any
// predicted level. This is deliberately broader than the sender-pattern
// definition, which also requires a high or urgent prediction; the two
// definitions are scoped to their components and must not be unified.
func HighValueEntries(entries []feedback.Entry) []feedback.Entry {
	var highValue []feedback.Entry
	for _, e := range entries {
		if e.ActualInterest == feedback.InterestMoreImportant ||
			e.ActualInterest == feedback.InterestUseful {
			highValue = append(highValue, e)
		}
	}
	return highValue
}

// AnalyzeContent tallies category, technology and topic tags across the
// high-value subset of the log. ok is false when that subset is empty.
func AnalyzeContent(entries []feedback.Entry) (*ContentPatterns, bool) {
	highValue := HighValueEntries(entries)
	if len(highValue) == 0 {
		return nil, false
	}

	categories := newCounter()
	technologies := newCounter()
	topics := newCounter()

	for _, e := range highValue {
		if e.AIAnalysis == nil {
			continue
		}
		if e.AIAnalysis.Category != "" {
			categories.add(e.AIAnalysis.Category)
		}
		for _, tech := range e.AIAnalysis.TechnologiesMentioned {
			technologies.add(tech)
		}
		for _, topic := range e.AIAnalysis.TopicsIdentified {
			topics.add(topic)
		}
	}

	return &ContentPatterns{
		HighValueCount:      len(highValue),
		PreferredCategories: categories.top(maxCategoryTags),
		TechnologyInterests: technologies.top(maxContentTags),
		TopicThemes:         topics.top(maxContentTags),
	}, true
}
