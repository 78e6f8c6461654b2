package profile

import (
	"fmt"
	"strings"
)

// variations maps an interest to alternate spellings and abbreviations
// that should count as the same interest. Keys and values are lowercase.
var variations = map[string][]string{
	"machine learning":        {"ml", "deep learning"},
	"ml":                      {"machine learning"},
	"artificial intelligence": {"ai"},
	"ai":                      {"artificial intelligence"},
	"javascript":              {"js"},
	"js":                      {"javascript"},
	"typescript":              {"ts"},
	"ts":                      {"typescript"},
	"python":                  {"py"},
	"react":                   {"reactjs"},
	"docker":                  {"containerization"},
	"kubernetes":              {"k8s"},
	"k8s":                     {"kubernetes"},
}

// FindSimilar returns the existing entries that look like duplicates of
// candidate: case-insensitive equality, substring containment in either
// direction, or a known abbreviation pair. Comparison is lowercase
// throughout; the returned strings keep their original casing.
func FindSimilar(candidate string, existing []string) []string {
	cand := strings.ToLower(strings.TrimSpace(candidate))
	if cand == "" {
		return nil
	}

	var similar []string
	for _, item := range existing {
		cur := strings.ToLower(item)
		if cur == cand ||
			strings.Contains(cur, cand) || strings.Contains(cand, cur) ||
			isVariation(cand, cur) {
			similar = append(similar, item)
		}
	}
	return similar
}

func isVariation(a, b string) bool {
	for _, v := range variations[a] {
		if v == b {
			return true
		}
	}
	for _, v := range variations[b] {
		if v == a {
			return true
		}
	}
	return false
}

// BatchAddResult reports what a batch interest addition did. Similar
// matches are surfaced for the user to resolve; nothing similar is ever
// added automatically.
type BatchAddResult struct {
	Added         []string            `json:"added"`
	Duplicates    []string            `json:"duplicates"`
	Similar       map[string][]string `json:"similar"`
	TotalAdded    int                 `json:"total_added"`
	BackupCreated bool                `json:"backup_created"`
}

// BatchAddInterests adds several interests at once with duplicate and
// similarity gating: exact (case-insensitive) duplicates are skipped and
// reported, candidates with similar existing entries are held back for
// review, and the rest are appended.
func (s *Store) BatchAddInterests(interests []string, backupFirst bool) (*BatchAddResult, error) {
	result := &BatchAddResult{
		Added:      []string{},
		Duplicates: []string{},
		Similar:    map[string][]string{},
	}

	if backupFirst {
		if err := s.Backup(); err != nil {
			return nil, err
		}
		result.BackupCreated = true
	}

	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}

		if containsFold(s.profile.CoreInterests, interest) {
			result.Duplicates = append(result.Duplicates, interest)
			continue
		}

		if similar := FindSimilar(interest, s.profile.CoreInterests); len(similar) > 0 {
			result.Similar[interest] = similar
			continue
		}

		s.profile.CoreInterests = append(s.profile.CoreInterests, interest)
		result.Added = append(result.Added, interest)
	}

	result.TotalAdded = len(result.Added)
	if result.TotalAdded > 0 {
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ConsolidateResult reports a consolidation of duplicate interests.
type ConsolidateResult struct {
	Removed       []string `json:"removed"`
	Added         bool     `json:"added"`
	BackupCreated bool     `json:"backup_created"`
}

// ConsolidateInterests removes the named variants and adds the single
// consolidated interest in their place, backing up first.
func (s *Store) ConsolidateInterests(remove []string, consolidated string) (*ConsolidateResult, error) {
	if err := s.Backup(); err != nil {
		return nil, err
	}
	result := &ConsolidateResult{BackupCreated: true}

	kept := s.profile.CoreInterests[:0]
	for _, existing := range s.profile.CoreInterests {
		if containsFold(remove, existing) {
			result.Removed = append(result.Removed, existing)
		} else {
			kept = append(kept, existing)
		}
	}
	s.profile.CoreInterests = kept

	consolidated = strings.TrimSpace(consolidated)
	if consolidated != "" && !containsFold(s.profile.CoreInterests, consolidated) {
		s.profile.CoreInterests = append(s.profile.CoreInterests, consolidated)
		result.Added = true
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	return result, nil
}

func containsFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}

// Snapshot captures the mutable profile lists for later comparison.
type Snapshot struct {
	CoreInterests  []string
	ActiveProjects []string
	TrustedSenders []string
}

// Snapshot copies the current profile lists.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		CoreInterests:  append([]string(nil), s.profile.CoreInterests...),
		ActiveProjects: append([]string(nil), s.profile.ActiveProjects...),
		TrustedSenders: append([]string(nil), s.profile.TrustedSenders...),
	}
}

// FieldDiff is the per-list delta between two snapshots.
type FieldDiff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Comparison summarizes the changes between two profile snapshots.
type Comparison struct {
	Interests FieldDiff `json:"interests"`
	Projects  FieldDiff `json:"projects"`
	Senders   FieldDiff `json:"senders"`
	Summary   string    `json:"summary"`
}

// Compare diffs two snapshots and produces a one-line change summary.
func Compare(before, after Snapshot) Comparison {
	c := Comparison{
		Interests: diffLists(before.CoreInterests, after.CoreInterests),
		Projects:  diffLists(before.ActiveProjects, after.ActiveProjects),
		Senders:   diffLists(before.TrustedSenders, after.TrustedSenders),
	}

	var parts []string
	for _, field := range []struct {
		label string
		diff  FieldDiff
	}{
		{"interest(s)", c.Interests},
		{"project(s)", c.Projects},
		{"trusted sender(s)", c.Senders},
	} {
		if n := len(field.diff.Added); n > 0 {
			parts = append(parts, fmt.Sprintf("+%d %s", n, field.label))
		}
		if n := len(field.diff.Removed); n > 0 {
			parts = append(parts, fmt.Sprintf("-%d %s", n, field.label))
		}
	}
	if len(parts) == 0 {
		c.Summary = "No changes"
	} else {
		c.Summary = strings.Join(parts, ", ")
	}
	return c
}

func diffLists(before, after []string) FieldDiff {
	var d FieldDiff
	for _, item := range after {
		if !contains(before, item) {
			d.Added = append(d.Added, item)
		}
	}
	for _, item := range before {
		if !contains(after, item) {
			d.Removed = append(d.Removed, item)
		}
	}
	return d
}
