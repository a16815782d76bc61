package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tritoncc/booking-service/internal/domain"
	"github.com/tritoncc/booking-service/pkg/types"
)

// ErrInvalidConfig is returned when the configuration file is inconsistent
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full service configuration loaded from TOML
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Notifier NotifierConfig `toml:"notifier"`
}

// ServerConfig describes the HTTP listener
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig describes the PostgreSQL connection
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig describes log output
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig describes prometheus exposition
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotifierConfig describes the outbound notification gateway
type NotifierConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// DayHoursConfig is the TOML form of one weekday's opening hours.
// Empty open/close means the day is closed.
type DayHoursConfig struct {
	Open       string `toml:"open"`
	Close      string `toml:"close"`
	LunchStart string `toml:"lunch_start"`
	LunchEnd   string `toml:"lunch_end"`
}

// BusinessConfig is the TOML form of the business calendar
type BusinessConfig struct {
	Timezone            string `toml:"timezone"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	BufferMinutes       int    `toml:"buffer_minutes"`
	MinNoticeMinutes    int    `toml:"min_notice_minutes"`
	LookAheadDays       int    `toml:"look_ahead_days"`

	Monday    DayHoursConfig `toml:"monday"`
	Tuesday   DayHoursConfig `toml:"tuesday"`
	Wednesday DayHoursConfig `toml:"wednesday"`
	Thursday  DayHoursConfig `toml:"thursday"`
	Friday    DayHoursConfig `toml:"friday"`
	Saturday  DayHoursConfig `toml:"saturday"`
	Sunday    DayHoursConfig `toml:"sunday"`
}

// Load reads and validates the configuration from the given TOML file
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort <= 0 {
		return nil, fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if cfg.Notifier.Enabled && cfg.Notifier.URL == "" {
		return nil, fmt.Errorf("%w: notifier.url is required when notifier is enabled", ErrInvalidConfig)
	}

	// Validate the calendar eagerly so a broken schedule fails at startup,
	// not on the first availability query.
	if _, err := cfg.Business.ToCalendar(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ToCalendar converts the TOML business section into the domain calendar
func (b BusinessConfig) ToCalendar() (*domain.BusinessCalendar, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: business.timezone %q: %v", ErrInvalidConfig, b.Timezone, err)
	}

	calendar := &domain.BusinessCalendar{
		Location:            loc,
		Monday:              b.Monday.toDomain(),
		Tuesday:             b.Tuesday.toDomain(),
		Wednesday:           b.Wednesday.toDomain(),
		Thursday:            b.Thursday.toDomain(),
		Friday:              b.Friday.toDomain(),
		Saturday:            b.Saturday.toDomain(),
		Sunday:              b.Sunday.toDomain(),
		SlotDurationMinutes: b.SlotDurationMinutes,
		BufferMinutes:       b.BufferMinutes,
		MinNoticeMinutes:    b.MinNoticeMinutes,
		LookAheadDays:       b.LookAheadDays,
	}

	if err := calendar.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return calendar, nil
}

func (d DayHoursConfig) toDomain() domain.DayHours {
	return domain.DayHours{
		Open:       types.TimeString(d.Open),
		Close:      types.TimeString(d.Close),
		LunchStart: types.TimeString(d.LunchStart),
		LunchEnd:   types.TimeString(d.LunchEnd),
	}
}

// defaults returns the configuration pre-filled with the standard business
// schedule: Mon-Fri 07:00-17:00 with a 12:00-13:00 lunch, Sat 08:00-15:00,
// Sun closed.
func defaults() *Config {
	weekday := DayHoursConfig{Open: "07:00", Close: "17:00", LunchStart: "12:00", LunchEnd: "13:00"}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Notifier: NotifierConfig{
			Timeout: 5,
		},
		Business: BusinessConfig{
			Timezone:            domain.DefaultTimezone,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			BufferMinutes:       domain.DefaultBufferMinutes,
			MinNoticeMinutes:    domain.DefaultMinNoticeMinutes,
			LookAheadDays:       domain.DefaultLookAheadDays,
			Monday:              weekday,
			Tuesday:             weekday,
			Wednesday:           weekday,
			Thursday:            weekday,
			Friday:              weekday,
			Saturday:            DayHoursConfig{Open: "08:00", Close: "15:00"},
			Sunday:              DayHoursConfig{},
		},
	}
}
