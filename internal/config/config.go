package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Config конфигурация сервиса (config.toml + переменные окружения для секретов)
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Salon     SalonConfig     `toml:"salon"`
	Admin     AdminConfig     `toml:"admin"`
	Telegram  TelegramConfig  `toml:"telegram"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Redis     RedisConfig     `toml:"redis"`
	Reminders RemindersConfig `toml:"reminders"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig прайс, рабочая сетка и мастера
type SalonConfig struct {
	Services            map[string]int `toml:"services"`
	WorkHours           []string       `toml:"work_hours"`
	Stylists            []string       `toml:"stylists"`
	PhonePattern        string         `toml:"phone_pattern"`
	InternationalPrefix string         `toml:"international_prefix"`
	LocalPrefix         string         `toml:"local_prefix"`
	CodePrefix          string         `toml:"code_prefix"`
	MaxNameLength       int            `toml:"max_name_length"`
	MaxEmailLength      int            `toml:"max_email_length"`
}

type AdminConfig struct {
	PasswordHash string `toml:"password_hash"` // bcrypt
	JWTSecret    string `toml:"jwt_secret"`
	SessionTTL   int    `toml:"session_ttl"` // минуты
	SecureCookie bool   `toml:"secure_cookie"`
}

type TelegramConfig struct {
	Enabled     bool   `toml:"enabled"`
	APIURL      string `toml:"api_url"`
	BotToken    string `toml:"bot_token"`
	AdminChatID string `toml:"admin_chat_id"`
	Timeout     int    `toml:"timeout"` // секунды
}

type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	BookingLimit    int    `toml:"booking_limit"`  // запросов на окно
	BookingWindow   int    `toml:"booking_window"` // секунды
	RateLimitPrefix string `toml:"rate_limit_prefix"`

	// брать адрес клиента из X-Forwarded-For, только за своим прокси
	TrustForwardedFor bool `toml:"trust_forwarded_for"`
}

type RemindersConfig struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval"` // секунды
}

// Load читает TOML файл, подгружает .env (если есть) и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&c.Admin.JWTSecret, "ADMIN_JWT_SECRET")
	setString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Telegram.AdminChatID, "TELEGRAM_ADMIN_CHAT_ID")
	setString(&c.SMTP.Password, "SMTP_PASSWORD")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon_booking"
	}

	if c.Salon.PhonePattern == "" {
		c.Salon.PhonePattern = domain.DefaultPhonePattern
	}
	if c.Salon.InternationalPrefix == "" {
		c.Salon.InternationalPrefix = domain.DefaultInternationalPrefix
		c.Salon.LocalPrefix = domain.DefaultLocalPrefix
	}
	if c.Salon.CodePrefix == "" {
		c.Salon.CodePrefix = domain.DefaultCodePrefix
	}
	setDefault(&c.Salon.MaxNameLength, domain.DefaultMaxNameLength)
	setDefault(&c.Salon.MaxEmailLength, domain.DefaultMaxEmailLength)

	setDefault(&c.Admin.SessionTTL, 12*60)

	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = "https://api.telegram.org"
	}
	setDefault(&c.Telegram.Timeout, 5)
	setDefault(&c.SMTP.Port, 587)

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	setDefault(&c.Redis.BookingLimit, 10)
	setDefault(&c.Redis.BookingWindow, 60)
	if c.Redis.RateLimitPrefix == "" {
		c.Redis.RateLimitPrefix = "rl:book"
	}

	setDefault(&c.Reminders.Interval, 15*60)
}

// Validate проверяет конфигурацию салона и обязательные секреты
func (c *Config) Validate() error {
	if len(c.Salon.Services) == 0 {
		return errors.New("config: salon.services must not be empty")
	}
	for name, price := range c.Salon.Services {
		if price < 0 {
			return fmt.Errorf("config: salon.services.%s has negative price", name)
		}
	}

	if len(c.Salon.WorkHours) == 0 {
		return errors.New("config: salon.work_hours must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Salon.WorkHours))
	for _, h := range c.Salon.WorkHours {
		if _, err := time.Parse(domain.TimeFormat, h); err != nil {
			return fmt.Errorf("config: salon.work_hours: invalid time %q", h)
		}
		if _, ok := seen[h]; ok {
			return fmt.Errorf("config: salon.work_hours: duplicate time %q", h)
		}
		seen[h] = struct{}{}
	}

	stylists := make(map[string]struct{}, len(c.Salon.Stylists))
	for _, name := range c.Salon.Stylists {
		if strings.TrimSpace(name) == "" {
			return errors.New("config: salon.stylists: empty stylist name")
		}
		if _, ok := stylists[name]; ok {
			return fmt.Errorf("config: salon.stylists: duplicate stylist %q", name)
		}
		stylists[name] = struct{}{}
	}

	if _, err := regexp.Compile(c.Salon.PhonePattern); err != nil {
		return fmt.Errorf("config: salon.phone_pattern: %w", err)
	}

	if c.Admin.JWTSecret == "" {
		return errors.New("config: admin.jwt_secret (ADMIN_JWT_SECRET) is required")
	}

	return nil
}

// BuildSalon строит неизменяемую конфигурацию салона для движка бронирования
func (c *Config) BuildSalon() *domain.Salon {
	services := make(map[string]int, len(c.Salon.Services))
	for k, v := range c.Salon.Services {
		services[k] = v
	}

	return &domain.Salon{
		Services:            services,
		WorkHours:           append([]string(nil), c.Salon.WorkHours...),
		Stylists:            append([]string(nil), c.Salon.Stylists...),
		PhonePattern:        regexp.MustCompile(c.Salon.PhonePattern),
		InternationalPrefix: c.Salon.InternationalPrefix,
		LocalPrefix:         c.Salon.LocalPrefix,
		CodePrefix:          c.Salon.CodePrefix,
		MaxNameLength:       c.Salon.MaxNameLength,
		MaxEmailLength:      c.Salon.MaxEmailLength,
	}
}

// ServiceNames отсортированный список услуг (для логов)
func (c *Config) ServiceNames() []string {
	names := make([]string, 0, len(c.Salon.Services))
	for name := range c.Salon.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDefault(dst *int, def int) {
	if *dst <= 0 {
		*dst = def
	}
}
