package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDirDefault(t *testing.T) {
	t.Setenv("INBOXSENSE_DATA_DIR", "")
	assert.Equal(t, filepath.Join("local_data", "personal_data"), DataDir())
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("INBOXSENSE_DATA_DIR", "/tmp/inboxsense")
	assert.Equal(t, "/tmp/inboxsense", DataDir())
}

func TestFeedbackLogPath(t *testing.T) {
	t.Setenv("INBOXSENSE_DATA_DIR", "")
	t.Setenv("INBOXSENSE_FEEDBACK_LOG", "")
	assert.Equal(t,
		filepath.Join("local_data", "personal_data", "email_feedback_log.json"),
		FeedbackLogPath())

	t.Setenv("INBOXSENSE_FEEDBACK_LOG", "/data/log.json")
	assert.Equal(t, "/data/log.json", FeedbackLogPath())
}

func TestProfilePath(t *testing.T) {
	t.Setenv("INBOXSENSE_DATA_DIR", "/data")
	t.Setenv("INBOXSENSE_PROFILE", "")
	assert.Equal(t, filepath.Join("/data", "email_interest_profile.json"), ProfilePath())
}

func TestReportDirFallsBackToDataDir(t *testing.T) {
	t.Setenv("INBOXSENSE_DATA_DIR", "/data")
	t.Setenv("INBOXSENSE_REPORT_DIR", "")
	assert.Equal(t, "/data", ReportDir())

	t.Setenv("INBOXSENSE_REPORT_DIR", "/reports")
	assert.Equal(t, "/reports", ReportDir())
}

func TestGmailAccountDefault(t *testing.T) {
	t.Setenv("INBOXSENSE_GMAIL_ACCOUNT", "")
	assert.Equal(t, "default", GmailAccount())

	t.Setenv("INBOXSENSE_GMAIL_ACCOUNT", "work")
	assert.Equal(t, "work", GmailAccount())
}

func TestServerPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	assert.Equal(t, 8080, ServerPort())
	assert.Equal(t, ":8080", ServerAddr())

	t.Setenv("SERVER_PORT", "9000")
	assert.Equal(t, 9000, ServerPort())
	assert.Equal(t, ":9000", ServerAddr())

	t.Setenv("SERVER_PORT", "not-a-port")
	assert.Equal(t, 8080, ServerPort())
}

func TestLogDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "text", LogFormat())

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, "json", LogFormat())
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	t.Setenv("INBOXSENSE_ENV", filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, Load())
}
