package learning

import (
	"fmt"
	"strings"
	"time"

	"github.com/inboxsense/inboxsense/internal/feedback"
)

// Report renders the full learning analysis as a markdown document:
// summary, accuracy by level, trends, strongest/weakest areas, profile
// suggestions and top senders.
func Report(entries []feedback.Entry, stats feedback.Stats, eng *SuggestionEngine, now time.Time) string {
	var b strings.Builder

	b.WriteString("# AI Learning Analysis Report\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", now.Format("January 2, 2006 at 3:04 PM"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Feedback Entries:** %d\n", len(entries))
	fmt.Fprintf(&b, "- **Overall Accuracy:** %.1f%%\n\n", stats.CurrentAccuracy)

	if len(entries) == 0 {
		b.WriteString("No feedback data available yet.\n")
		return b.String()
	}

	analysis, ok := AnalyzePatterns(entries)
	if ok {
		writeAccuracySection(&b, entries, analysis)
		writeTrendSection(&b, analysis)
		writeAreaSections(&b, analysis)
	}

	if suggestions, ok := eng.Suggest(entries); ok {
		writeSuggestionSection(&b, suggestions)
	}

	if ok {
		writeSenderSection(&b, analysis)
	}

	return b.String()
}

func writeAccuracySection(b *strings.Builder, entries []feedback.Entry, analysis *PatternAnalysis) {
	if len(analysis.AccuracyByLevel) == 0 {
		return
	}
	b.WriteString("## Accuracy by Interest Level\n\n")
	for _, level := range orderedLevels(entries, analysis.AccuracyByLevel) {
		stats := analysis.AccuracyByLevel[level]
		fmt.Fprintf(b, "- **%s:** %.1f%% (%d/%d correct)\n",
			titleCase(string(level)), stats.Accuracy, stats.Accurate, stats.Total)
	}
	b.WriteString("\n")
}

func writeTrendSection(b *strings.Builder, analysis *PatternAnalysis) {
	trend := analysis.TimeTrend
	if trend == nil {
		return
	}
	b.WriteString("## Accuracy Trends\n\n")
	fmt.Fprintf(b, "- **Early Accuracy:** %.1f%%\n", trend.EarlyAccuracy)
	fmt.Fprintf(b, "- **Recent Accuracy:** %.1f%%\n", trend.RecentAccuracy)
	fmt.Fprintf(b, "- **Trend:** %s\n", titleCase(trend.Trend))
	fmt.Fprintf(b, "- **Improvement:** %+.1f%%\n\n", trend.Improvement)
}

func writeAreaSections(b *strings.Builder, analysis *PatternAnalysis) {
	if len(analysis.StrongestAreas) > 0 {
		b.WriteString("## Strongest Areas (80%+ accurate)\n\n")
		for _, area := range analysis.StrongestAreas {
			fmt.Fprintf(b, "- %s\n", titleCase(string(area)))
		}
		b.WriteString("\n")
	}
	if len(analysis.WeakestAreas) > 0 {
		b.WriteString("## Areas for Improvement (<60% accurate)\n\n")
		for _, area := range analysis.WeakestAreas {
			fmt.Fprintf(b, "- %s\n", titleCase(string(area)))
		}
		b.WriteString("\n")
	}
}

func writeSuggestionSection(b *strings.Builder, suggestions *Suggestions) {
	b.WriteString("## Profile Suggestions\n\n")

	if len(suggestions.AddInterests) > 0 {
		b.WriteString("### Interests to Add\n\n")
		for _, s := range suggestions.AddInterests {
			fmt.Fprintf(b, "- **%s** - %s\n", s.Name, s.Reason)
		}
		b.WriteString("\n")
	}

	if len(suggestions.AddSenders) > 0 {
		b.WriteString("### Trusted Senders to Add\n\n")
		for _, s := range suggestions.AddSenders {
			fmt.Fprintf(b, "- **%s** - %s\n", s.Name, s.Reason)
		}
		b.WriteString("\n")
	}

	if suggestions.ConfidenceNotes != "" {
		b.WriteString("### Confidence Notes\n\n")
		fmt.Fprintf(b, "> %s\n\n", suggestions.ConfidenceNotes)
	}
}

func writeSenderSection(b *strings.Builder, analysis *PatternAnalysis) {
	if len(analysis.SenderPatterns) == 0 {
		return
	}
	b.WriteString("## Top Senders\n\n")
	patterns := analysis.SenderPatterns
	if len(patterns) > 5 {
		patterns = patterns[:5]
	}
	for _, p := range patterns {
		fmt.Fprintf(b, "- **%s:** %d emails, %.1f%% accurate prediction\n",
			p.Sender, p.TotalEmails, p.Accuracy)
		if p.HighValueRate > 0 {
			fmt.Fprintf(b, "  - High-value content: %d/%d (%.1f%%)\n",
				p.HighValueEmails, p.TotalEmails, p.HighValueRate)
		}
		if p.EscalationRate > 0 {
			fmt.Fprintf(b, "  - Escalations: %d/%d (%.1f%%)\n",
				p.EscalatedEmails, p.TotalEmails, p.EscalationRate)
		}
	}
	b.WriteString("\n")
}
