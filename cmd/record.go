package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/feedback"
)

var knownLevels = []feedback.Level{
	feedback.LevelUrgent,
	feedback.LevelHigh,
	feedback.LevelMedium,
	feedback.LevelLow,
}

var knownInterests = []feedback.Interest{
	feedback.InterestUseful,
	feedback.InterestNotInteresting,
	feedback.InterestMoreImportant,
	feedback.InterestLessImportant,
}

var knownTypes = []feedback.Type{
	feedback.TypeThumbsUp,
	feedback.TypeThumbsDown,
	feedback.TypeEscalate,
	feedback.TypeDowngrade,
}

// defaultFeedbackType maps a judgment to the UI action that usually
// produced it, used when --type is not given.
func defaultFeedbackType(interest feedback.Interest) feedback.Type {
	switch interest {
	case feedback.InterestUseful:
		return feedback.TypeThumbsUp
	case feedback.InterestNotInteresting:
		return feedback.TypeThumbsDown
	case feedback.InterestMoreImportant:
		return feedback.TypeEscalate
	case feedback.InterestLessImportant:
		return feedback.TypeDowngrade
	}
	return feedback.TypeThumbsUp
}

func newRecordCmd() *cobra.Command {
	var (
		subject      string
		from         string
		predicted    string
		interest     string
		feedbackType string
		notes        string
		category     string
		technologies []string
		topics       []string
		reasoning    string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record feedback on an email interest prediction",
		Long: `Record whether an AI interest prediction matched your actual judgment.

The entry is appended to the feedback log and the running accuracy is
recomputed. The predicted level is one of urgent, high, medium or low;
the interest judgment is one of useful, not_interesting, more_important
or less_important.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := feedback.Level(predicted)
			if !levelKnown(level) {
				return fmt.Errorf("unknown predicted level %q (expected one of %v)", predicted, knownLevels)
			}
			judgment := feedback.Interest(interest)
			if !interestKnown(judgment) {
				return fmt.Errorf("unknown interest %q (expected one of %v)", interest, knownInterests)
			}

			fbType := defaultFeedbackType(judgment)
			if feedbackType != "" {
				fbType = feedback.Type(feedbackType)
				if !typeKnown(fbType) {
					return fmt.Errorf("unknown feedback type %q (expected one of %v)", feedbackType, knownTypes)
				}
			}

			var analysis *feedback.AIAnalysis
			if category != "" || len(technologies) > 0 || len(topics) > 0 || reasoning != "" {
				analysis = &feedback.AIAnalysis{
					Category:              category,
					TechnologiesMentioned: technologies,
					TopicsIdentified:      topics,
					Reasoning:             reasoning,
				}
			}

			metrics, flush := cliInstrumentation(cmd.Context())
			defer flush()

			store := feedback.Open(config.FeedbackLogPath(), slog.Default())
			entry, err := store.Record(feedback.Input{
				EmailSubject:   subject,
				EmailFrom:      from,
				PredictedLevel: level,
				ActualInterest: judgment,
				FeedbackType:   fbType,
				Notes:          notes,
				AIAnalysis:     analysis,
			})
			if err != nil {
				return err
			}
			metrics.RecordFeedback(cmd.Context(), string(fbType), entry.WasAccurate)

			stats := store.Stats()
			fmt.Printf("Recorded feedback for %q (accurate: %v)\n", entry.EmailSubject, entry.WasAccurate)
			fmt.Printf("Current accuracy: %.1f%% over %d entries\n", stats.CurrentAccuracy, stats.TotalFeedbackCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject of the rated email")
	cmd.Flags().StringVar(&from, "from", "", "Sender of the rated email")
	cmd.Flags().StringVar(&predicted, "predicted", "", "Predicted interest level: urgent, high, medium or low")
	cmd.Flags().StringVar(&interest, "interest", "", "Your judgment: useful, not_interesting, more_important or less_important")
	cmd.Flags().StringVar(&feedbackType, "type", "", "Feedback action: thumbs_up, thumbs_down, escalate or downgrade (derived from --interest when omitted)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional free-form notes")
	cmd.Flags().StringVar(&category, "category", "", "AI-assigned category of the email")
	cmd.Flags().StringSliceVar(&technologies, "technologies", nil, "Technologies the AI identified in the email")
	cmd.Flags().StringSliceVar(&topics, "topics", nil, "Topics the AI identified in the email")
	cmd.Flags().StringVar(&reasoning, "reasoning", "", "The AI's reasoning for the prediction")

	_ = cmd.MarkFlagRequired("predicted")
	_ = cmd.MarkFlagRequired("interest")

	return cmd
}

func levelKnown(l feedback.Level) bool {
	for _, known := range knownLevels {
		if l == known {
			return true
		}
	}
	return false
}

func interestKnown(i feedback.Interest) bool {
	for _, known := range knownInterests {
		if i == known {
			return true
		}
	}
	return false
}

func typeKnown(t feedback.Type) bool {
	for _, known := range knownTypes {
		if t == known {
			return true
		}
	}
	return false
}
