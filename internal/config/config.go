package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Service  Service  `toml:"service"`
	Resend   Resend   `toml:"resend"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// Database настройки подключения к PostgreSQL
type Database struct {
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

// DSN возвращает строку подключения к базе данных
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Service настройки единственного обслуживаемого дня.
// Бронирование закрывается в полночь после ServiceDate.
type Service struct {
	ServiceDate string `toml:"service_date"` // "2025-12-13"
	Timezone    string `toml:"timezone"`     // IANA name, e.g. "Pacific/Auckland"
}

// CutoffTime возвращает момент закрытия бронирования (полночь после service_date)
func (s Service) CutoffTime() (time.Time, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: invalid timezone %q: %w", s.Timezone, err)
	}
	date, err := time.ParseInLocation("2006-01-02", s.ServiceDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: invalid service_date %q: %w", s.ServiceDate, err)
	}
	return date.AddDate(0, 0, 1), nil
}

// Resend настройки клиента email-рассылки
type Resend struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	FromEmail  string `toml:"from_email"`
	AdminEmail string `toml:"admin_email"`
	Timeout    int    `toml:"timeout"` // seconds
}

// Load читает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database.host and database.dbname are required")
	}
	if cfg.Service.ServiceDate == "" {
		return nil, fmt.Errorf("config: service.service_date is required")
	}
	if cfg.Service.Timezone == "" {
		cfg.Service.Timezone = "Pacific/Auckland"
	}
	if _, err := cfg.Service.CutoffTime(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
