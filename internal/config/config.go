package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Режимы работы SMS-шлюза
const (
	SMSModeSimulate = "simulate"
	SMSModeLive     = "live"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (auth.secret, sms.api_token) можно переопределить переменными
// окружения AUTH_SECRET и TEXTLK_API_TOKEN
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Auth      AuthConfig      `toml:"auth"`
	SMS       SMSConfig       `toml:"sms"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
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

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	OpenTime            string          `toml:"open_time"`
	SlotDurationMinutes int             `toml:"slot_duration_minutes"`
	Sessions            []SessionConfig `toml:"sessions"`
}

// SessionConfig именованный интервал сессии [start, end)
type SessionConfig struct {
	Name  string `toml:"name"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// AuthConfig настройки выпуска токенов
type AuthConfig struct {
	Secret          string `toml:"secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// SMSConfig настройки SMS-шлюза Text.lk
// mode = "simulate" отключает реальную отправку: вызовы логируются и считаются успешными
type SMSConfig struct {
	Mode     string `toml:"mode"`
	BaseURL  string `toml:"base_url"`
	SenderID string `toml:"sender_id"`
	APIToken string `toml:"api_token"`
	Timeout  int    `toml:"timeout"`
}

// BootstrapConfig учетные данные суперадмина, создаваемого при старте, если его нет
type BootstrapConfig struct {
	SuperAdminUsername string `toml:"superadmin_username"`
	SuperAdminPassword string `toml:"superadmin_password"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("TEXTLK_API_TOKEN"); v != "" {
		cfg.SMS.APIToken = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("config: auth.secret is required (or AUTH_SECRET env)")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		c.Auth.TokenTTLMinutes = domain.DefaultTokenTTLMinutes
	}
	if c.Booking.SlotDurationMinutes <= 0 {
		c.Booking.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if _, err := types.NewTimeStringFromString(c.Booking.OpenTime); err != nil {
		return fmt.Errorf("config: booking.open_time: %w", err)
	}
	if len(c.Booking.Sessions) == 0 {
		return fmt.Errorf("config: at least one booking.sessions entry is required")
	}
	switch c.SMS.Mode {
	case SMSModeSimulate:
	case SMSModeLive:
		if c.SMS.APIToken == "" || c.SMS.SenderID == "" {
			return fmt.Errorf("config: sms.mode=live requires sms.api_token and sms.sender_id")
		}
	default:
		return fmt.Errorf("config: sms.mode must be %q or %q", SMSModeSimulate, SMSModeLive)
	}
	return nil
}

// Schedule собирает domain.Schedule из конфигурации сессий
func (c *Config) Schedule() (domain.Schedule, error) {
	sessions := make([]domain.SessionRange, 0, len(c.Booking.Sessions))
	for _, s := range c.Booking.Sessions {
		start, err := types.NewTimeStringFromString(s.Start)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("config: session %q start: %w", s.Name, err)
		}
		end, err := types.NewTimeStringFromString(s.End)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("config: session %q end: %w", s.Name, err)
		}
		sessions = append(sessions, domain.SessionRange{Name: s.Name, Start: start, End: end})
	}
	return domain.NewSchedule(sessions)
}
