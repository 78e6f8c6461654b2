package learning

import (
	"encoding/json"
	"math"

	"github.com/inboxsense/inboxsense/internal/feedback"
)

// Weights are the scalar confidence adjustments derived from feedback
// accuracy. They bias future predictions; they never feed back into the
// accuracy classification itself.
type Weights struct {
	// BaseConfidence is the overall accuracy as a fraction.
	BaseConfidence float64

	// MinimumConfidenceThreshold floors at 0.3 regardless of accuracy.
	MinimumConfidenceThreshold float64

	// TrustedSenderBoost is 1.5 once overall accuracy reaches 70%,
	// otherwise 1.2.
	TrustedSenderBoost float64

	// AntiPatternsWeight grows as accuracy drops, capped at 1.5.
	AntiPatternsWeight float64

	// LevelConfidence holds the per-level accuracy fraction for every
	// level present in the log.
	LevelConfidence map[feedback.Level]float64
}

// MarshalJSON flattens the per-level confidences into level_<name>_confidence
// keys, the layout the prompt builder consumes.
func (w Weights) MarshalJSON() ([]byte, error) {
	m := map[string]float64{
		"base_confidence":              w.BaseConfidence,
		"minimum_confidence_threshold": w.MinimumConfidenceThreshold,
		"trusted_sender_boost":         w.TrustedSenderBoost,
		"anti_patterns_weight":         w.AntiPatternsWeight,
	}
	for level, confidence := range w.LevelConfidence {
		m["level_"+string(level)+"_confidence"] = confidence
	}
	return json.Marshal(m)
}

// CalculateWeights derives the adjustment weights from overall and
// per-level accuracy over the full log. ok is false when the log is empty,
// in which case no weights exist at all.
func CalculateWeights(entries []feedback.Entry) (*Weights, bool) {
	if len(entries) == 0 {
		return nil, false
	}

	overall := accuracyPercent(entries)

	w := &Weights{
		BaseConfidence:             overall / 100,
		MinimumConfidenceThreshold: math.Max(0.3, (overall-10)/100),
		TrustedSenderBoost:         1.2,
		AntiPatternsWeight:         math.Min(1.5, 2.0-overall/100),
		LevelConfidence:            make(map[feedback.Level]float64),
	}
	if overall >= 70 {
		w.TrustedSenderBoost = 1.5
	}

	for level, stats := range accuracyByLevel(entries) {
		w.LevelConfidence[level] = stats.Accuracy / 100
	}

	return w, true
}
