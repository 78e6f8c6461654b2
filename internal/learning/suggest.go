package learning

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/inboxsense/inboxsense/internal/feedback"
)

const (
	// MinEntriesForSuggestions is the smallest log that yields profile
	// suggestions.
	MinEntriesForSuggestions = 10

	// interestWindow restricts interest mining to the most recent entries.
	interestWindow = 100

	// removeWindow is how many trailing entries the remove-interests
	// heuristic looks at.
	removeWindow = 30

	// sparseDataCutoff: below this many high-value entries a single
	// mention is enough to surface a tag; at or above it two are needed.
	sparseDataCutoff = 15

	maxSuggestionsPerKind = 5
)

// reasoningTechKeywords is the fallback vocabulary scanned in the AI
// reasoning text when an entry carries no explicit technology list.
var reasoningTechKeywords = []string{
	"docker", "kubernetes", "python", "javascript", "github", "ai", "ml",
	"machine learning", "react", "node", "aws", "azure",
}

// subjectStopWords are excluded from the raw-subject keyword fallback.
var subjectStopWords = map[string]bool{
	"email":   true,
	"message": true,
}

// Suggestion proposes a single profile change with a confidence tier and a
// human-readable reason. Suggestions are transient: regenerated on every
// call, never persisted.
type Suggestion struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}

// Suggestions groups the profile update proposals.
type Suggestions struct {
	AddInterests    []Suggestion `json:"add_interests"`
	RemoveInterests []Suggestion `json:"remove_interests"`
	AddSenders      []Suggestion `json:"add_senders"`
	ConfidenceNotes string       `json:"confidence_notes"`
}

// SuggestionEngine generates profile update suggestions from the feedback
// log, gated on the user's current interests and trusted senders.
type SuggestionEngine struct {
	Interests      []string
	TrustedSenders []string
}

// Suggest produces ranked, deduplicated profile suggestions. ok is false
// when fewer than MinEntriesForSuggestions entries exist.
func (eng *SuggestionEngine) Suggest(entries []feedback.Entry) (*Suggestions, bool) {
	if len(entries) < MinEntriesForSuggestions {
		return nil, false
	}

	return &Suggestions{
		AddInterests:    eng.suggestInterestsToAdd(entries),
		RemoveInterests: suggestInterestsToRemove(entries),
		AddSenders:      eng.suggestSendersToAdd(entries),
		ConfidenceNotes: confidenceNotes(len(entries)),
	}, true
}

func (eng *SuggestionEngine) suggestInterestsToAdd(entries []feedback.Entry) []Suggestion {
	window := entries
	if len(window) > interestWindow {
		window = window[len(window)-interestWindow:]
	}
	highValue := HighValueEntries(window)
	if len(highValue) == 0 {
		return nil
	}

	current := make(map[string]bool, len(eng.Interests))
	for _, interest := range eng.Interests {
		current[interest] = true
	}

	technologies := newCounter()
	topics := newCounter()

	for _, e := range highValue {
		analysis := e.AIAnalysis
		if analysis == nil {
			analysis = &feedback.AIAnalysis{}
		}

		for _, tech := range analysis.TechnologiesMentioned {
			technologies.add(tech)
		}
		if len(analysis.TechnologiesMentioned) == 0 && analysis.Reasoning != "" {
			reasoning := strings.ToLower(analysis.Reasoning)
			for _, keyword := range reasoningTechKeywords {
				if strings.Contains(reasoning, keyword) {
					technologies.add(keyword)
				}
			}
		}

		for _, topic := range analysis.TopicsIdentified {
			topics.add(topic)
		}
		if len(analysis.TopicsIdentified) == 0 && analysis.Category != "" {
			for _, topic := range topicsFromCategory(analysis.Category) {
				topics.add(topic)
			}
		}
	}

	// Permissive while data is sparse, stricter once enough signal exists.
	threshold := 2
	if len(highValue) < sparseDataCutoff {
		threshold = 1
	}

	var suggestions []Suggestion

	for _, tc := range technologies.top(maxSuggestionsPerKind) {
		name := titleCase(tc.Name)
		// The duplicate check against the profile is deliberately
		// case-sensitive on this path; the batch-apply flow does the
		// fuzzy matching.
		if tc.Count < threshold || current[name] {
			continue
		}
		confidence := fmt.Sprintf("Emerging interest (%d mention)", tc.Count)
		if tc.Count >= 2 {
			confidence = "High Confidence"
		}
		suggestions = append(suggestions, Suggestion{
			Name:       name,
			Confidence: confidence,
			Reason:     fmt.Sprintf("Mentioned in %d escalated email(s) you rated highly", tc.Count),
		})
	}

	for _, tc := range topics.top(maxSuggestionsPerKind) {
		name := titleCase(tc.Name)
		if tc.Count < threshold || current[name] {
			continue
		}
		if containsNameFold(suggestions, tc.Name) {
			continue
		}
		confidence := fmt.Sprintf("Emerging theme (%d mention)", tc.Count)
		if tc.Count >= 2 {
			confidence = "High Confidence"
		}
		suggestions = append(suggestions, Suggestion{
			Name:       name,
			Confidence: confidence,
			Reason:     fmt.Sprintf("Consistent topic in %d high-value email(s) you find valuable", tc.Count),
		})
	}

	// Last resort: frequent words from raw subjects of high-value entries.
	if len(suggestions) == 0 {
		words := newCounter()
		for _, e := range highValue {
			for _, word := range strings.Fields(strings.ToLower(e.EmailSubject)) {
				if utf8.RuneCountInString(word) > 4 && !subjectStopWords[word] {
					words.add(word)
				}
			}
		}
		for _, tc := range words.top(maxSuggestionsPerKind) {
			name := titleCase(tc.Name)
			if current[name] || tc.Count < 2 || !isAlpha(tc.Name) {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Name:       name,
				Confidence: fmt.Sprintf("%d recent high-value emails", tc.Count),
				Reason:     "Found in escalated or high-priority content you rated highly",
			})
		}
	}

	if len(suggestions) > maxSuggestionsPerKind {
		suggestions = suggestions[:maxSuggestionsPerKind]
	}
	return suggestions
}

// topicsFromCategory infers topic labels from the analysis category when no
// explicit topics were identified.
func topicsFromCategory(category string) []string {
	category = strings.ToLower(category)
	var topics []string
	if strings.Contains(category, "developer") || strings.Contains(category, "dev") {
		topics = append(topics, "developer tools")
	}
	if strings.Contains(category, "trusted") || strings.Contains(category, "newsletter") {
		topics = append(topics, "trusted content")
	}
	if strings.Contains(category, "informational") || strings.Contains(category, "news") {
		topics = append(topics, "technology news")
	}
	return topics
}

// suggestInterestsToRemove emits a single generic review suggestion when
// more than 40% of the recent window was rated low. It never names
// specific interests.
func suggestInterestsToRemove(entries []feedback.Entry) []Suggestion {
	window := entries
	if len(window) > removeWindow {
		window = window[len(window)-removeWindow:]
	}

	lowRated := 0
	for _, e := range window {
		if e.ActualInterest == feedback.InterestNotInteresting ||
			e.ActualInterest == feedback.InterestLessImportant {
			lowRated++
		}
	}
	if lowRated == 0 {
		return nil
	}

	if float64(lowRated) > float64(len(window))*0.4 {
		return []Suggestion{{
			Name:       "Review current interests",
			Confidence: fmt.Sprintf("%d/%d recent emails rated low", lowRated, len(window)),
			Reason:     "Many recent emails not matching interests",
		}}
	}
	return nil
}

func (eng *SuggestionEngine) suggestSendersToAdd(entries []feedback.Entry) []Suggestion {
	type tally struct {
		total, highValue, escalated int
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
	}

	trusted := make(map[string]bool, len(eng.TrustedSenders))
	for _, sender := range eng.TrustedSenders {
		trusted[sender] = true
	}

	type candidate struct {
		sender                  string
		total, highValue        int
		highValueRate, escaRate float64
	}
	var candidates []candidate
	for _, sender := range order {
		t := counts[sender]
		if t.total < minSenderEmails || trusted[sender] {
			continue
		}
		highValueRate := float64(t.highValue) / float64(t.total)
		escalationRate := float64(t.escalated) / float64(t.total)
		if highValueRate >= 0.3 || escalationRate >= 0.2 {
			candidates = append(candidates, candidate{
				sender:        sender,
				total:         t.total,
				highValue:     t.highValue,
				highValueRate: highValueRate,
				escaRate:      escalationRate,
			})
		}
	}

	// Busiest senders first; ties keep first-seen order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].total > candidates[j].total
	})

	if len(candidates) > maxSuggestionsPerKind {
		candidates = candidates[:maxSuggestionsPerKind]
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, Suggestion{
			Name:       c.sender,
			Confidence: fmt.Sprintf("%d/%d high-value (%.0f%%)", c.highValue, c.total, c.highValueRate*100),
			Reason:     fmt.Sprintf("Consistently escalated (%.0f%%) or high-priority", c.escaRate*100),
		})
	}
	return suggestions
}

func confidenceNotes(total int) string {
	switch {
	case total < 20:
		return "Low confidence (few feedback entries). Provide more ratings."
	case total < 50:
		return "Medium confidence. More feedback will improve suggestions."
	default:
		return "High confidence. Suggestions based on substantial feedback."
	}
}

func containsNameFold(suggestions []Suggestion, name string) bool {
	for _, s := range suggestions {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// titleCase uppercases every letter that follows a non-letter and
// lowercases the rest ("machine learning" -> "Machine Learning",
// "k8s" -> "K8S"). Suggested names are normalized this way before the
// duplicate check against the profile.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
