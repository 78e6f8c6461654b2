package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboxsense/inboxsense/internal/feedback"
)

func TestHighValueEntriesIncludesAnyUseful(t *testing.T) {
	entries := []feedback.Entry{
		fbEntry("a@x.com", feedback.LevelLow, feedback.InterestUseful),
		fbEntry("a@x.com", feedback.LevelLow, feedback.InterestMoreImportant),
		fbEntry("a@x.com", feedback.LevelHigh, feedback.InterestNotInteresting),
		fbEntry("a@x.com", feedback.LevelHigh, feedback.InterestLessImportant),
	}

	highValue := HighValueEntries(entries)

	// Unlike the sender-scoped definition, a useful rating counts at any
	// predicted level here.
	require.Len(t, highValue, 2)
	assert.Equal(t, feedback.InterestUseful, highValue[0].ActualInterest)
	assert.Equal(t, feedback.InterestMoreImportant, highValue[1].ActualInterest)
}

func TestAnalyzeContentNoHighValue(t *testing.T) {
	entries := repeatEntries(5, "a@x.com", feedback.LevelHigh, feedback.InterestNotInteresting)

	patterns, ok := AnalyzeContent(entries)
	assert.False(t, ok)
	assert.Nil(t, patterns)
}

func TestAnalyzeContentRankings(t *testing.T) {
	withAnalysis := func(category string, techs, topics []string) feedback.Entry {
		e := fbEntry("a@x.com", feedback.LevelHigh, feedback.InterestUseful)
		e.AIAnalysis = &feedback.AIAnalysis{
			Category:              category,
			TechnologiesMentioned: techs,
			TopicsIdentified:      topics,
		}
		return e
	}

	entries := []feedback.Entry{
		withAnalysis("dev tools", []string{"kubernetes", "go"}, []string{"infrastructure"}),
		withAnalysis("dev tools", []string{"kubernetes"}, nil),
		withAnalysis("newsletter", nil, []string{"infrastructure"}),
		// High value but without analysis metadata still counts toward the total
		fbEntry("a@x.com", feedback.LevelLow, feedback.InterestMoreImportant),
		// Not high value, ignored entirely
		fbEntry("a@x.com", feedback.LevelHigh, feedback.InterestNotInteresting),
	}

	patterns, ok := AnalyzeContent(entries)
	require.True(t, ok)

	assert.Equal(t, 4, patterns.HighValueCount)

	require.NotEmpty(t, patterns.PreferredCategories)
	assert.Equal(t, TagCount{Name: "dev tools", Count: 2}, patterns.PreferredCategories[0])

	require.NotEmpty(t, patterns.TechnologyInterests)
	assert.Equal(t, TagCount{Name: "kubernetes", Count: 2}, patterns.TechnologyInterests[0])

	require.NotEmpty(t, patterns.TopicThemes)
	assert.Equal(t, TagCount{Name: "infrastructure", Count: 2}, patterns.TopicThemes[0])
}

func TestCounterTiesKeepFirstSeenOrder(t *testing.T) {
	c := newCounter()
	c.add("beta")
	c.add("alpha")
	c.add("beta")
	c.add("alpha")
	c.add("gamma")

	top := c.top(3)
	require.Len(t, top, 3)
	assert.Equal(t, "beta", top[0].Name)
	assert.Equal(t, "alpha", top[1].Name)
	assert.Equal(t, "gamma", top[2].Name)
}
