package feedback

import "time"

// Level is the AI's predicted interest level for an email.
type Level string

// Known prediction levels. Entries may carry other values; grouping
// operations key on the raw string rather than rejecting unknowns.
const (
	LevelUrgent Level = "urgent"
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Interest is the user's judgment of a prediction.
type Interest string

const (
	InterestUseful         Interest = "useful"
	InterestNotInteresting Interest = "not_interesting"
	InterestMoreImportant  Interest = "more_important"
	InterestLessImportant  Interest = "less_important"
)

// Type is the UI action that produced a feedback entry. It is redundant
// with Interest but stored separately, never derived.
type Type string

const (
	TypeThumbsUp   Type = "thumbs_up"
	TypeThumbsDown Type = "thumbs_down"
	TypeEscalate   Type = "escalate"
	TypeDowngrade  Type = "downgrade"
)

// AIAnalysis is the richer metadata the analysis step attached to a
// prediction, present only when the caller supplied it.
type AIAnalysis struct {
	Category              string   `json:"category,omitempty"`
	TechnologiesMentioned []string `json:"technologies_mentioned,omitempty"`
	TopicsIdentified      []string `json:"topics_identified,omitempty"`
	Reasoning             string   `json:"reasoning,omitempty"`
}

// Entry is a single piece of user feedback. Entries are append-only and
// immutable once written; WasAccurate is computed once at record time and
// never recomputed.
type Entry struct {
	Timestamp      time.Time   `json:"timestamp"`
	EmailSubject   string      `json:"email_subject"`
	EmailFrom      string      `json:"email_from"`
	PredictedLevel Level       `json:"predicted_level"`
	ActualInterest Interest    `json:"actual_interest"`
	FeedbackType   Type        `json:"feedback_type"`
	Notes          string      `json:"notes"`
	WasAccurate    bool        `json:"was_accurate"`
	AIAnalysis     *AIAnalysis `json:"ai_analysis,omitempty"`
}

// Stats is the aggregate recomputed from the full entry list on every
// append. It is cached in the log document but never patched incrementally.
type Stats struct {
	TotalFeedbackCount    int     `json:"total_feedback_count"`
	AccuratePredictions   int     `json:"accurate_predictions"`
	InaccuratePredictions int     `json:"inaccurate_predictions"`
	CurrentAccuracy       float64 `json:"current_accuracy"`
}

// Log is the on-disk feedback document. Entry order is insertion order and
// is significant: trend analysis splits the list chronologically.
type Log struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"feedback_entries"`
	Stats     Stats     `json:"stats"`
}
