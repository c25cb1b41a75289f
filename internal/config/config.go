package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"event-scheduling-service/internal/events/core/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres" // lib/pq
	DriverPgx      = "pgx"      // jackc/pgx/v5 stdlib
	DriverSQLite   = "sqlite"   // modernc.org/sqlite

	defaultSQLiteDSN = "events.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
)

type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// CORSOrigins is a comma separated allow list, "*" for any origin.
	CORSOrigins     string        `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DBConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type ScheduleConfig struct {
	// AllowedStart and AllowedEnd bound the bookable window, e.g. "08:00 AM".
	AllowedStart string `yaml:"allowed_start"`
	AllowedEnd   string `yaml:"allowed_end"`
	// Timezone is an IANA name or "Local"; every event is interpreted in it.
	Timezone        string `yaml:"timezone"`
	OverlapFailOpen bool   `yaml:"overlap_fail_open"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Log      LogConfig      `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			CORSOrigins:     "*",
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Driver:          DriverPostgres,
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Schedule: ScheduleConfig{
			AllowedStart: domain.DefaultAllowedHours.Start.String(),
			AllowedEnd:   domain.DefaultAllowedHours.End.String(),
			Timezone:     "Local",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then environment variables (a .env file in the working directory is
// loaded first when present).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}

	setString("HTTP_ADDR", &c.HTTP.Addr)
	setString("CORS_ORIGINS", &c.HTTP.CORSOrigins)
	setString("DB_DRIVER", &c.DB.Driver)
	setString("DB_DSN", &c.DB.DSN)
	// POSTGRES_DSN is kept for deployments that predate DB_DSN.
	if c.DB.DSN == "" {
		setString("POSTGRES_DSN", &c.DB.DSN)
	}
	setString("ALLOWED_START", &c.Schedule.AllowedStart)
	setString("ALLOWED_END", &c.Schedule.AllowedEnd)
	setString("TIMEZONE", &c.Schedule.Timezone)
	setString("LOG_LEVEL", &c.Log.Level)

	if err := setBool("OVERLAP_FAIL_OPEN", &c.Schedule.OverlapFailOpen); err != nil {
		return err
	}
	return setBool("LOG_PRETTY", &c.Log.Pretty)
}

// Normalize fills zero values with defaults so partial files still work.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.HTTP.Addr == "" {
		c.HTTP.Addr = def.HTTP.Addr
	}
	if c.HTTP.CORSOrigins == "" {
		c.HTTP.CORSOrigins = def.HTTP.CORSOrigins
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = def.HTTP.ShutdownTimeout
	}

	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	if c.DB.Driver == "" {
		c.DB.Driver = def.DB.Driver
	}
	if c.DB.Driver == DriverSQLite && c.DB.DSN == "" {
		c.DB.DSN = defaultSQLiteDSN
	}
	if c.DB.MaxOpenConns <= 0 {
		c.DB.MaxOpenConns = def.DB.MaxOpenConns
	}
	if c.DB.MaxIdleConns <= 0 {
		c.DB.MaxIdleConns = def.DB.MaxIdleConns
	}
	if c.DB.ConnMaxLifetime <= 0 {
		c.DB.ConnMaxLifetime = def.DB.ConnMaxLifetime
	}

	if c.Schedule.AllowedStart == "" {
		c.Schedule.AllowedStart = def.Schedule.AllowedStart
	}
	if c.Schedule.AllowedEnd == "" {
		c.Schedule.AllowedEnd = def.Schedule.AllowedEnd
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = def.Schedule.Timezone
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverPgx:
		if c.DB.DSN == "" {
			return errors.New("db dsn is required (set DB_DSN or POSTGRES_DSN)")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}

	if _, err := c.AllowedHours(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

func (c *Config) AllowedHours() (domain.AllowedHours, error) {
	start, err := domain.ParseClock(c.Schedule.AllowedStart)
	if err != nil {
		return domain.AllowedHours{}, fmt.Errorf("schedule.allowed_start: %w", err)
	}
	end, err := domain.ParseClock(c.Schedule.AllowedEnd)
	if err != nil {
		return domain.AllowedHours{}, fmt.Errorf("schedule.allowed_end: %w", err)
	}
	if start >= end {
		return domain.AllowedHours{}, fmt.Errorf("schedule window %s - %s is empty", start, end)
	}
	return domain.AllowedHours{Start: start, End: end}, nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule.timezone: %w", err)
	}
	return loc, nil
}
