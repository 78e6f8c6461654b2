package feedback

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/inboxsense/inboxsense/internal/logging"
)

// logVersion is written into every feedback log document.
const logVersion = "1.0"

// Store owns the feedback log file. The whole document lives in memory and
// is rewritten on every append; there is no partial write and no locking.
// Concurrent writers can clobber each other, which is an accepted
// limitation of a single-user CLI tool.
type Store struct {
	path   string
	log    Log
	logger *slog.Logger
	now    func() time.Time
}

// Open loads the feedback log at path. A missing file yields an empty log;
// an unparseable file is reported and replaced with an empty log rather
// than surfaced as an error.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, logger: logger, now: time.Now}
	s.log = s.load()
	return s
}

func (s *Store) load() Log {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read feedback log, starting empty",
				"path", s.path, logging.Err(err))
		}
		return emptyLog(s.now())
	}

	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		s.logger.Warn("feedback log is corrupt, starting empty",
			"path", s.path, logging.Err(err))
		return emptyLog(s.now())
	}
	return l
}

func emptyLog(now time.Time) Log {
	return Log{Version: logVersion, CreatedAt: now}
}

// Input holds the caller-supplied fields of a feedback entry. Accuracy is
// computed by the store, not the caller.
type Input struct {
	EmailSubject   string
	EmailFrom      string
	PredictedLevel Level
	ActualInterest Interest
	FeedbackType   Type
	Notes          string
	AIAnalysis     *AIAnalysis
}

// Record classifies the prediction, appends the entry, recomputes the
// aggregate stats from scratch and persists the whole document.
func (s *Store) Record(in Input) (Entry, error) {
	entry := Entry{
		Timestamp:      s.now(),
		EmailSubject:   in.EmailSubject,
		EmailFrom:      in.EmailFrom,
		PredictedLevel: in.PredictedLevel,
		ActualInterest: in.ActualInterest,
		FeedbackType:   in.FeedbackType,
		Notes:          in.Notes,
		WasAccurate:    Classify(in.PredictedLevel, in.ActualInterest),
		AIAnalysis:     in.AIAnalysis,
	}

	s.log.Entries = append(s.log.Entries, entry)
	s.log.Stats = computeStats(s.log.Entries)

	if err := s.save(); err != nil {
		return Entry{}, fmt.Errorf("failed to save feedback log: %w", err)
	}
	return entry, nil
}

// Entries returns the chronological entry list.
func (s *Store) Entries() []Entry {
	return s.log.Entries
}

// Stats returns the cached aggregate statistics.
func (s *Store) Stats() Stats {
	return s.log.Stats
}

// Path returns the location of the feedback log file.
func (s *Store) Path() string {
	return s.path
}

// computeStats always recomputes from the full entry list so the cached
// aggregate can never drift from the entries.
func computeStats(entries []Entry) Stats {
	total := len(entries)
	if total == 0 {
		return Stats{}
	}

	accurate := 0
	for _, e := range entries {
		if e.WasAccurate {
			accurate++
		}
	}

	return Stats{
		TotalFeedbackCount:    total,
		AccuratePredictions:   accurate,
		InaccuratePredictions: total - accurate,
		CurrentAccuracy:       round1(float64(accurate) / float64(total) * 100),
	}
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feedback log: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// round1 rounds to one decimal place, matching how every accuracy
// percentage in the log and analysis output is stored.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
