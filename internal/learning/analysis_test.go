package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboxsense/inboxsense/internal/feedback"
)

// fbEntry builds an entry with the accuracy computed the same way the
// store does at record time.
func fbEntry(from string, level feedback.Level, interest feedback.Interest) feedback.Entry {
	return feedback.Entry{
		EmailFrom:      from,
		PredictedLevel: level,
		ActualInterest: interest,
		WasAccurate:    feedback.Classify(level, interest),
	}
}

func repeatEntries(n int, from string, level feedback.Level, interest feedback.Interest) []feedback.Entry {
	entries := make([]feedback.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, fbEntry(from, level, interest))
	}
	return entries
}

func TestAnalyzePatternsInsufficientData(t *testing.T) {
	entries := repeatEntries(MinEntriesForPatterns-1, "a@example.com", feedback.LevelHigh, feedback.InterestUseful)

	analysis, ok := AnalyzePatterns(entries)
	assert.False(t, ok)
	assert.Nil(t, analysis)
}

func TestAnalyzePatternsMinimumEntries(t *testing.T) {
	entries := repeatEntries(MinEntriesForPatterns, "a@example.com", feedback.LevelHigh, feedback.InterestUseful)

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)
	assert.Equal(t, MinEntriesForPatterns, analysis.FeedbackCount)
	assert.Nil(t, analysis.TimeTrend, "trend needs more entries")
}

func TestAccuracyByLevel(t *testing.T) {
	entries := []feedback.Entry{
		fbEntry("a@example.com", feedback.LevelHigh, feedback.InterestUseful),
		fbEntry("a@example.com", feedback.LevelHigh, feedback.InterestUseful),
		fbEntry("a@example.com", feedback.LevelHigh, feedback.InterestLessImportant),
		fbEntry("b@example.com", feedback.LevelLow, feedback.InterestNotInteresting),
		fbEntry("b@example.com", "", feedback.InterestUseful),
	}

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)

	high := analysis.AccuracyByLevel[feedback.LevelHigh]
	assert.Equal(t, 3, high.Total)
	assert.Equal(t, 2, high.Accurate)
	assert.Equal(t, 66.7, high.Accuracy)

	low := analysis.AccuracyByLevel[feedback.LevelLow]
	assert.Equal(t, 1, low.Total)
	assert.Equal(t, 100.0, low.Accuracy)

	// An entry without a recorded level groups under "unknown"
	unknown, ok := analysis.AccuracyByLevel["unknown"]
	require.True(t, ok)
	assert.Equal(t, 1, unknown.Total)
}

func TestSenderPatternsFiltering(t *testing.T) {
	var entries []feedback.Entry
	entries = append(entries, repeatEntries(3, "busy@example.com", feedback.LevelHigh, feedback.InterestUseful)...)
	entries = append(entries, repeatEntries(2, "quiet@example.com", feedback.LevelLow, feedback.InterestNotInteresting)...)

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)

	// Only senders with at least three entries appear
	require.Len(t, analysis.SenderPatterns, 1)
	p := analysis.SenderPatterns[0]
	assert.Equal(t, "busy@example.com", p.Sender)
	assert.Equal(t, 3, p.TotalEmails)
	assert.Equal(t, 3, p.HighValueEmails)
	assert.Equal(t, 100.0, p.HighValueRate)
	assert.Equal(t, 0, p.EscalatedEmails)
}

func TestSenderHighValueDefinition(t *testing.T) {
	// useful on a medium prediction is low-priority agreement, not high
	// value; an escalation always is.
	entries := []feedback.Entry{
		fbEntry("s@example.com", feedback.LevelMedium, feedback.InterestUseful),
		fbEntry("s@example.com", feedback.LevelMedium, feedback.InterestUseful),
		fbEntry("s@example.com", feedback.LevelLow, feedback.InterestMoreImportant),
		fbEntry("other@example.com", feedback.LevelHigh, feedback.InterestUseful),
		fbEntry("other2@example.com", feedback.LevelHigh, feedback.InterestUseful),
	}

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)

	require.Len(t, analysis.SenderPatterns, 1)
	p := analysis.SenderPatterns[0]
	assert.Equal(t, "s@example.com", p.Sender)
	assert.Equal(t, 1, p.HighValueEmails, "only the escalation counts")
	assert.Equal(t, 1, p.EscalatedEmails)
	assert.Equal(t, 33.3, p.HighValueRate)
}

func TestTimeTrendImproving(t *testing.T) {
	// Early half 2/5 accurate, recent half 5/5
	var entries []feedback.Entry
	entries = append(entries, repeatEntries(2, "a@x.com", feedback.LevelHigh, feedback.InterestUseful)...)
	entries = append(entries, repeatEntries(3, "a@x.com", feedback.LevelHigh, feedback.InterestLessImportant)...)
	entries = append(entries, repeatEntries(5, "a@x.com", feedback.LevelHigh, feedback.InterestUseful)...)

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)
	require.NotNil(t, analysis.TimeTrend)

	trend := analysis.TimeTrend
	assert.Equal(t, 40.0, trend.EarlyAccuracy)
	assert.Equal(t, 100.0, trend.RecentAccuracy)
	assert.Equal(t, TrendImproving, trend.Trend)
	assert.Equal(t, 60.0, trend.Improvement)
}

func TestTimeTrendStableWithinBand(t *testing.T) {
	// 8/10 early vs 8/10 recent: identical accuracy stays stable
	var entries []feedback.Entry
	for half := 0; half < 2; half++ {
		entries = append(entries, repeatEntries(8, "a@x.com", feedback.LevelHigh, feedback.InterestUseful)...)
		entries = append(entries, repeatEntries(2, "a@x.com", feedback.LevelHigh, feedback.InterestLessImportant)...)
	}

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)
	require.NotNil(t, analysis.TimeTrend)
	assert.Equal(t, TrendStable, analysis.TimeTrend.Trend)
}

func TestStrongestAndWeakestAreas(t *testing.T) {
	var entries []feedback.Entry
	// urgent: 100% accurate
	entries = append(entries, repeatEntries(3, "a@x.com", feedback.LevelUrgent, feedback.InterestUseful)...)
	// medium: 0% accurate
	entries = append(entries, repeatEntries(3, "a@x.com", feedback.LevelMedium, feedback.InterestLessImportant)...)
	// low: 66.7%, in neither list
	entries = append(entries, repeatEntries(2, "a@x.com", feedback.LevelLow, feedback.InterestNotInteresting)...)
	entries = append(entries, fbEntry("a@x.com", feedback.LevelLow, feedback.InterestMoreImportant))

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)

	assert.Equal(t, []feedback.Level{feedback.LevelUrgent}, analysis.StrongestAreas)
	assert.Equal(t, []feedback.Level{feedback.LevelMedium}, analysis.WeakestAreas)
}

func TestTimeTrendEntryCountBoundary(t *testing.T) {
	var entries []feedback.Entry
	entries = append(entries, repeatEntries(5, "a@x.com", feedback.LevelHigh, feedback.InterestLessImportant)...)
	entries = append(entries, repeatEntries(4, "a@x.com", feedback.LevelHigh, feedback.InterestUseful)...)

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)
	assert.Nil(t, analysis.TimeTrend, "nine entries is one short of a trend")

	entries = append(entries, fbEntry("a@x.com", feedback.LevelHigh, feedback.InterestUseful))
	analysis, ok = AnalyzePatterns(entries)
	require.True(t, ok)
	require.NotNil(t, analysis.TimeTrend)

	// Ten entries split 5/5 between the halves
	trend := analysis.TimeTrend
	assert.Equal(t, 0.0, trend.EarlyAccuracy)
	assert.Equal(t, 100.0, trend.RecentAccuracy)
	assert.Equal(t, TrendImproving, trend.Trend)
}

func TestMixedAccuracyScenario(t *testing.T) {
	var entries []feedback.Entry
	entries = append(entries, repeatEntries(8, "a@x.com", feedback.LevelHigh, feedback.InterestUseful)...)
	entries = append(entries, repeatEntries(4, "b@x.com", feedback.LevelMedium, feedback.InterestNotInteresting)...)

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)

	high := analysis.AccuracyByLevel[feedback.LevelHigh]
	assert.Equal(t, 8, high.Total)
	assert.Equal(t, 100.0, high.Accuracy)

	medium := analysis.AccuracyByLevel[feedback.LevelMedium]
	assert.Equal(t, 4, medium.Total)
	assert.Equal(t, 0.0, medium.Accuracy)

	assert.Equal(t, []feedback.Level{feedback.LevelHigh}, analysis.StrongestAreas)
	assert.Equal(t, []feedback.Level{feedback.LevelMedium}, analysis.WeakestAreas)

	weights, ok := CalculateWeights(entries)
	require.True(t, ok)
	assert.InDelta(t, 8.0/12.0, weights.BaseConfidence, 1e-9, "8 of 12 accurate overall")
	assert.InDelta(t, (800.0/12.0-10)/100, weights.MinimumConfidenceThreshold, 1e-9)
	assert.Equal(t, 1.2, weights.TrustedSenderBoost)
}

func TestFeedbackTypeDistribution(t *testing.T) {
	entries := []feedback.Entry{
		{FeedbackType: feedback.TypeThumbsUp, ActualInterest: feedback.InterestUseful, PredictedLevel: feedback.LevelHigh, WasAccurate: true},
		{FeedbackType: feedback.TypeThumbsUp, ActualInterest: feedback.InterestUseful, PredictedLevel: feedback.LevelHigh, WasAccurate: true},
		{FeedbackType: feedback.TypeEscalate, ActualInterest: feedback.InterestMoreImportant, PredictedLevel: feedback.LevelLow},
		{ActualInterest: feedback.InterestUseful, PredictedLevel: feedback.LevelLow, WasAccurate: true},
		{FeedbackType: feedback.TypeThumbsDown, ActualInterest: feedback.InterestNotInteresting, PredictedLevel: feedback.LevelHigh},
	}

	analysis, ok := AnalyzePatterns(entries)
	require.True(t, ok)

	assert.Equal(t, 2, analysis.FeedbackTypes[feedback.TypeThumbsUp])
	assert.Equal(t, 1, analysis.FeedbackTypes[feedback.TypeEscalate])
	assert.Equal(t, 1, analysis.FeedbackTypes["unknown"])
}
