// Package feedback records user ratings of AI-predicted email interest
// levels and maintains the append-only feedback log.
//
// The log is a whole-file JSON document: every append loads nothing
// incrementally, recomputes the aggregate stats from the full entry list
// and rewrites the file. Entries are immutable once written; the accuracy
// verdict is classified once at record time via Classify and stored.
//
// A missing or corrupt log file is never an error. The store falls back to
// an empty log and reports the condition through its logger, which is the
// deliberate data-loss-tolerant policy for this single-user tool.
package feedback
