package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const validConfig = `
user:
  start_date: "2023-06-01"
  personal_token: "tok-123"
  include_naps: true
oura:
  sleep_url: "https://api.ouraring.com/v2/usercollection/daily_sleep"
  sessions_url: "https://api.ouraring.com/v2/usercollection/sleep"
db:
  backend: sqlite
  path: "sleep.db"
`

func TestLoad_ValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "2023-06-01", cfg.StartDate)
	assert.Equal(t, "tok-123", cfg.PersonalToken)
	assert.True(t, cfg.IncludeNaps)
	assert.False(t, cfg.ResetTable)
	assert.Equal(t, "sleep_data", cfg.DBTable) // default
	// end_date defaults to today
	assert.Equal(t, time.Now().Format("2006-01-02"), cfg.EndDate)
}

func TestLoad_MissingTokenFailsBeforeAnyIO(t *testing.T) {
	body := `
user:
  start_date: "2023-06-01"
oura:
  sleep_url: "https://example.com/a"
  sessions_url: "https://example.com/b"
db:
  backend: sqlite
  path: "sleep.db"
`
	_, err := Load(writeConfig(t, body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personal_token")
}

func TestLoad_BadStartDate(t *testing.T) {
	_, err := Load(writeConfig(t, `
user:
  start_date: "01/06/2023"
  personal_token: "tok"
oura:
  sleep_url: "https://example.com/a"
  sessions_url: "https://example.com/b"
db:
  backend: sqlite
  path: "sleep.db"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	_, err := Load(writeConfig(t, `
user:
  start_date: "2023-06-01"
  personal_token: "tok"
oura:
  sleep_url: "https://example.com/a"
  sessions_url: "https://example.com/b"
db:
  backend: postgres
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.dsn")
}

func TestLoad_UnknownBackendRejected(t *testing.T) {
	_, err := Load(writeConfig(t, `
user:
  start_date: "2023-06-01"
  personal_token: "tok"
oura:
  sleep_url: "https://example.com/a"
  sessions_url: "https://example.com/b"
db:
  backend: mongodb
  path: "x"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
