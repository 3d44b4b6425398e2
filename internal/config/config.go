package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig бизнес-параметры расписания станции
type ScheduleConfig struct {
	ServiceSequence  []string       `toml:"service_sequence"`
	SlotTimes        []string       `toml:"slot_times"`
	SearchWindowDays int            `toml:"search_window_days"`
	WorkDays         []string       `toml:"work_days"`
	Capacity         map[string]int `toml:"capacity"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if len(c.Schedule.ServiceSequence) == 0 {
		return fmt.Errorf("config: schedule.service_sequence must not be empty")
	}
	if len(c.Schedule.SlotTimes) == 0 {
		return fmt.Errorf("config: schedule.slot_times must not be empty")
	}
	for _, s := range c.Schedule.ServiceSequence {
		if _, ok := c.Schedule.Capacity[s]; !ok {
			return fmt.Errorf("config: schedule.capacity missing entry for service %q", s)
		}
	}
	for i := 1; i < len(c.Schedule.SlotTimes); i++ {
		if c.Schedule.SlotTimes[i] <= c.Schedule.SlotTimes[i-1] {
			return fmt.Errorf("config: schedule.slot_times must be strictly ascending")
		}
	}
	return nil
}

// ScheduleParams конвертирует конфигурацию расписания в доменную модель
func (c *Config) ScheduleParams() (*domain.ScheduleParams, error) {
	params := &domain.ScheduleParams{
		ServiceSequence:  make([]domain.ServiceType, 0, len(c.Schedule.ServiceSequence)),
		SlotTimes:        make([]types.TimeString, 0, len(c.Schedule.SlotTimes)),
		Capacity:         make(map[domain.ServiceType]int, len(c.Schedule.Capacity)),
		SearchWindowDays: c.Schedule.SearchWindowDays,
		WorkDays:         make([]time.Weekday, 0, len(c.Schedule.WorkDays)),
	}

	if params.SearchWindowDays <= 0 {
		params.SearchWindowDays = domain.DefaultSearchWindowDays
	}

	for _, s := range c.Schedule.ServiceSequence {
		params.ServiceSequence = append(params.ServiceSequence, domain.ServiceType(s))
	}

	for _, t := range c.Schedule.SlotTimes {
		ts, err := types.NewTimeStringFromString(t)
		if err != nil {
			return nil, fmt.Errorf("config: invalid slot time %q: %w", t, err)
		}
		params.SlotTimes = append(params.SlotTimes, ts)
	}

	for s, ceiling := range c.Schedule.Capacity {
		if ceiling <= 0 {
			return nil, fmt.Errorf("config: capacity for service %q must be positive", s)
		}
		params.Capacity[domain.ServiceType(s)] = ceiling
	}

	for _, d := range c.Schedule.WorkDays {
		wd, err := parseWeekday(d)
		if err != nil {
			return nil, err
		}
		params.WorkDays = append(params.WorkDays, wd)
	}

	return params, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == s {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("config: invalid work day %q", s)
}
