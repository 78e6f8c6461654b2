package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by INBOXSENSE_ENV (or .env by
// default), then loads the corresponding .secret sidecar if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("INBOXSENSE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Both files are optional.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// DataDir is where the feedback log, profile and backups live.
// Defaults to local_data/personal_data.
func DataDir() string {
	dir := os.Getenv("INBOXSENSE_DATA_DIR")
	if dir == "" {
		return filepath.Join("local_data", "personal_data")
	}
	return dir
}

// FeedbackLogPath returns the location of the feedback log file.
func FeedbackLogPath() string {
	if p := os.Getenv("INBOXSENSE_FEEDBACK_LOG"); p != "" {
		return p
	}
	return filepath.Join(DataDir(), "email_feedback_log.json")
}

// ProfilePath returns the location of the interest profile file.
func ProfilePath() string {
	if p := os.Getenv("INBOXSENSE_PROFILE"); p != "" {
		return p
	}
	return filepath.Join(DataDir(), "email_interest_profile.json")
}

// ReportDir is where generated analysis reports are written.
// Defaults to the data directory.
func ReportDir() string {
	if dir := os.Getenv("INBOXSENSE_REPORT_DIR"); dir != "" {
		return dir
	}
	return DataDir()
}

// GmailAccount names the Google account whose cached token is used.
// Defaults to "default".
func GmailAccount() string {
	account := os.Getenv("INBOXSENSE_GMAIL_ACCOUNT")
	if account == "" {
		return "default"
	}
	return account
}

func GoogleClientID() string {
	return os.Getenv("GOOGLE_CLIENT_ID")
}

func GoogleClientSecret() string {
	return os.Getenv("GOOGLE_CLIENT_SECRET")
}

// ServerPort returns the API server port. Defaults to 8080.
func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// LogFormat returns the log output format (text or json).
// Defaults to "text" if not set.
func LogFormat() string {
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		return "text"
	}
	return format
}
