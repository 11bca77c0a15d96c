package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const dateFormat = "2006-01-02"

// Config holds everything a run needs, resolved up front so that nothing
// reads process-wide state mid-run. Re-running with the same Config is
// always safe: writes are insert-or-skip keyed by date.
type Config struct {
	StartDate     string
	EndDate       string // optional, defaults to today
	PersonalToken string
	SleepURL      string
	SessionsURL   string
	IncludeNaps   bool
	DebugMode     bool
	ResetTable    bool

	DBBackend string // "postgres", "sqlite", or "file"
	DBDSN     string // postgres connection string
	DBPath    string // sqlite or json file path
	DBTable   string
	ServeAddr string
	LogFile   string
}

// Load reads the config file at path (any format viper understands; the
// original tool shipped an ini file) plus OURA_* environment overrides,
// and validates before any network or database work happens.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("oura")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.backend", "postgres")
	v.SetDefault("db.tablename", "sleep_data")
	v.SetDefault("serve.addr", ":8088")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{
		StartDate:     v.GetString("user.start_date"),
		EndDate:       v.GetString("user.end_date"),
		PersonalToken: v.GetString("user.personal_token"),
		SleepURL:      v.GetString("oura.sleep_url"),
		SessionsURL:   v.GetString("oura.sessions_url"),
		IncludeNaps:   v.GetBool("user.include_naps"),
		DebugMode:     v.GetBool("dev.debug_mode"),
		ResetTable:    v.GetBool("dev.reset_table"),
		DBBackend:     v.GetString("db.backend"),
		DBDSN:         v.GetString("db.dsn"),
		DBPath:        v.GetString("db.path"),
		DBTable:       v.GetString("db.tablename"),
		ServeAddr:     v.GetString("serve.addr"),
		LogFile:       v.GetString("log.file"),
	}
	if cfg.EndDate == "" {
		cfg.EndDate = time.Now().Format(dateFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PersonalToken == "" {
		return errors.New("config: user.personal_token is required")
	}
	if c.SleepURL == "" || c.SessionsURL == "" {
		return errors.New("config: oura.sleep_url and oura.sessions_url are required")
	}
	if c.StartDate == "" {
		return errors.New("config: user.start_date is required")
	}
	if _, err := time.Parse(dateFormat, c.StartDate); err != nil {
		return fmt.Errorf("config: user.start_date must be YYYY-MM-DD: %w", err)
	}
	if _, err := time.Parse(dateFormat, c.EndDate); err != nil {
		return fmt.Errorf("config: user.end_date must be YYYY-MM-DD: %w", err)
	}
	if c.DBTable == "" {
		return errors.New("config: db.tablename is required")
	}
	switch c.DBBackend {
	case "postgres":
		if c.DBDSN == "" {
			return errors.New("config: db.dsn is required when db.backend=postgres")
		}
	case "sqlite", "file":
		if c.DBPath == "" {
			return fmt.Errorf("config: db.path is required when db.backend=%s", c.DBBackend)
		}
	default:
		return fmt.Errorf("config: db.backend must be postgres, sqlite, or file, got %q", c.DBBackend)
	}
	return nil
}
