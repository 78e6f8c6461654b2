package learning

import "github.com/inboxsense/inboxsense/internal/feedback"

// Status labels the variants of the adaptive context. The values marshal
// to the strings the downstream prompt builder expects.
type Status string

const (
	StatusReady            Status = "ready"
	StatusInsufficientData Status = "insufficient_data"
	StatusNoData           Status = "no_data"
)

// LearnedPreferences carries only aggregated level names, never raw
// feedback text.
type LearnedPreferences struct {
	StrongestAreas []feedback.Level `json:"strongest_areas"`
	WeakestAreas   []feedback.Level `json:"weakest_areas"`
}

// LearningAdjustments are the switches the prompt builder applies when
// constructing the next analysis prompt.
type LearningAdjustments struct {
	UseLearnedSenderPreferences bool `json:"use_learned_sender_preferences"`
	EmphasizeStrongestAreas     bool `json:"emphasize_strongest_areas"`
	ApplyConfidenceAdjustments  bool `json:"apply_confidence_adjustments"`
}

// AdaptiveContext is the sole interface between the learning core and the
// external prompt-construction step. It carries aggregated signals only.
type AdaptiveContext struct {
	Status              Status               `json:"status"`
	FeedbackCount       int                  `json:"feedback_count,omitempty"`
	LearnedPreferences  *LearnedPreferences  `json:"learned_preferences,omitempty"`
	LearningAdjustments *LearningAdjustments `json:"learning_adjustments,omitempty"`
	Weights             *Weights             `json:"weights,omitempty"`
}

// ContextBuilder assembles the adaptive context from pattern analysis and
// learning weights.
type ContextBuilder struct {
	TrustedSenders []string
}

// Build combines the pattern analysis and calculated weights. When the
// analysis reports insufficient data that status is propagated untouched,
// carrying the current entry count.
func (b *ContextBuilder) Build(entries []feedback.Entry) AdaptiveContext {
	analysis, ok := AnalyzePatterns(entries)
	if !ok {
		return AdaptiveContext{
			Status:        StatusInsufficientData,
			FeedbackCount: len(entries),
		}
	}

	weights, _ := CalculateWeights(entries)

	return AdaptiveContext{
		Status: StatusReady,
		LearnedPreferences: &LearnedPreferences{
			StrongestAreas: analysis.StrongestAreas,
			WeakestAreas:   analysis.WeakestAreas,
		},
		LearningAdjustments: &LearningAdjustments{
			UseLearnedSenderPreferences: len(b.TrustedSenders) > 0,
			EmphasizeStrongestAreas:     len(analysis.StrongestAreas) > 0,
			ApplyConfidenceAdjustments:  true,
		},
		Weights: weights,
	}
}
