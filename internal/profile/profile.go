package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/inboxsense/inboxsense/internal/logging"
)

// Profile is the on-disk interest profile document. The string lists keep
// insertion order for display; uniqueness is enforced by the mutation ops.
type Profile struct {
	CoreInterests     []string        `json:"core_interests"`
	ActiveProjects    []string        `json:"active_projects"`
	TrustedForwarders []string        `json:"trusted_forwarders"`
	TrustedSenders    []string        `json:"trusted_senders"`
	UrgencyKeywords   []string        `json:"urgency_keywords"`
	AutoSkipKeywords  []string        `json:"auto_skip_keywords"`
	DigestSettings    DigestSettings  `json:"digest_settings"`
	UrgencySettings   UrgencySettings `json:"urgency_settings"`
	AISettings        AISettings      `json:"ai_settings"`
}

// DigestSettings controls digest generation cadence and size.
type DigestSettings struct {
	MaxEmailsPerDigest        int      `json:"max_emails_per_digest"`
	Schedule                  string   `json:"schedule"`
	PreferredDays             []string `json:"preferred_days"`
	AutoArchiveLowInterest    bool     `json:"auto_archive_low_interest"`
	IncludeLowInterestSummary bool     `json:"include_low_interest_summary"`
}

// UrgencySettings controls immediate notification behavior.
type UrgencySettings struct {
	NotifyUrgentImmediately  bool     `json:"notify_urgent_immediately"`
	TrustedSendersForUrgency []string `json:"trusted_senders_for_urgency"`
}

// AISettings are passed through to the external analysis step.
type AISettings struct {
	Model               string  `json:"model"`
	MaxTokensPerEmail   int     `json:"max_tokens_per_email"`
	Temperature         float64 `json:"temperature"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

// Default returns the profile written on first use.
func Default() *Profile {
	return &Profile{
		CoreInterests:     []string{},
		ActiveProjects:    []string{},
		TrustedForwarders: []string{},
		TrustedSenders:    []string{},
		UrgencyKeywords:   []string{},
		AutoSkipKeywords:  []string{},
		DigestSettings: DigestSettings{
			MaxEmailsPerDigest:        100,
			Schedule:                  "biweekly",
			PreferredDays:             []string{"wednesday", "sunday"},
			AutoArchiveLowInterest:    false,
			IncludeLowInterestSummary: true,
		},
		UrgencySettings: UrgencySettings{
			NotifyUrgentImmediately:  false,
			TrustedSendersForUrgency: []string{"security@", "noreply@"},
		},
		AISettings: AISettings{
			Model:               "claude-sonnet-4-20250514",
			MaxTokensPerEmail:   1500,
			Temperature:         0.3,
			ConfidenceThreshold: 0.7,
		},
	}
}

// Store owns the profile file. Every mutation backs up the current file
// (timestamped to the second) before rewriting the whole document. The
// backup-then-overwrite sequence is the only guard: there is no rollback
// if the write itself fails.
type Store struct {
	path    string
	profile *Profile
	logger  *slog.Logger
	now     func() time.Time
}

// Open loads the profile at path. A missing file is replaced with the
// default profile and saved; a corrupt file is backed up first, then
// replaced with the default.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, logger: logger, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}
		s.logger.Info("profile not found, creating default", "path", path)
		s.profile = Default()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("profile is corrupt, backing up and resetting to defaults",
			"path", path, logging.Err(err))
		if err := s.Backup(); err != nil {
			s.logger.Warn("could not back up corrupt profile", logging.Err(err))
		}
		s.profile = Default()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.profile = &p
	return s, nil
}

// Current returns the loaded profile. Callers mutate only through the
// store's operations.
func (s *Store) Current() *Profile {
	return s.profile
}

// Path returns the location of the profile file.
func (s *Store) Path() string {
	return s.path
}

// Backup copies the current profile file next to itself with a timestamp
// suffix. A missing source file is not an error.
func (s *Store) Backup() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read profile for backup: %w", err)
	}

	stamp := s.now().Format("2006-01-02_15-04-05")
	backupPath := strings.TrimSuffix(s.path, ".json") + "_backup_" + stamp + ".json"
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	s.logger.Info("profile backup created", "path", backupPath)
	return nil
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// AddInterests appends interests not already present. The duplicate check
// on this path is an exact string match; the batch path in similarity.go
// does the fuzzy matching. Returns the interests actually added.
func (s *Store) AddInterests(interests []string) ([]string, error) {
	return s.addToList(&s.profile.CoreInterests, interests)
}

// RemoveInterests removes the named interests. Returns those removed.
func (s *Store) RemoveInterests(interests []string) ([]string, error) {
	return s.removeFromList(&s.profile.CoreInterests, interests)
}

// AddProjects appends projects not already present.
func (s *Store) AddProjects(projects []string) ([]string, error) {
	return s.addToList(&s.profile.ActiveProjects, projects)
}

// RemoveProjects removes the named projects.
func (s *Store) RemoveProjects(projects []string) ([]string, error) {
	return s.removeFromList(&s.profile.ActiveProjects, projects)
}

// AddSenders appends trusted senders, validating that each looks like an
// email address or a bare domain. Returns the senders added and those
// rejected as invalid.
func (s *Store) AddSenders(senders []string) (added, invalid []string, err error) {
	if err := s.Backup(); err != nil {
		return nil, nil, err
	}

	for _, sender := range senders {
		sender = strings.TrimSpace(sender)
		if sender == "" {
			continue
		}
		if !ValidSenderAddress(sender) {
			invalid = append(invalid, sender)
			continue
		}
		if contains(s.profile.TrustedSenders, sender) {
			continue
		}
		s.profile.TrustedSenders = append(s.profile.TrustedSenders, sender)
		added = append(added, sender)
	}

	if err := s.save(); err != nil {
		return nil, nil, err
	}
	return added, invalid, nil
}

// RemoveSenders removes the named trusted senders.
func (s *Store) RemoveSenders(senders []string) ([]string, error) {
	return s.removeFromList(&s.profile.TrustedSenders, senders)
}

// Reset replaces the profile with the defaults, backing up first.
func (s *Store) Reset() error {
	if err := s.Backup(); err != nil {
		return err
	}
	s.profile = Default()
	return s.save()
}

func (s *Store) addToList(list *[]string, names []string) ([]string, error) {
	if err := s.Backup(); err != nil {
		return nil, err
	}

	var added []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || contains(*list, name) {
			continue
		}
		*list = append(*list, name)
		added = append(added, name)
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	return added, nil
}

func (s *Store) removeFromList(list *[]string, names []string) ([]string, error) {
	var removed []string
	kept := make([]string, 0, len(*list))
	for _, existing := range *list {
		if contains(names, existing) {
			removed = append(removed, existing)
		} else {
			kept = append(kept, existing)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}

	// The list is swapped only after the backup succeeds; a failed
	// backup leaves the in-memory profile untouched.
	if err := s.Backup(); err != nil {
		return nil, err
	}
	*list = kept
	if err := s.save(); err != nil {
		return nil, err
	}
	return removed, nil
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

var (
	addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	domainPattern  = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidSenderAddress accepts full email addresses and bare domains.
func ValidSenderAddress(sender string) bool {
	if strings.Contains(sender, "@") {
		return addressPattern.MatchString(sender)
	}
	return domainPattern.MatchString(sender)
}
