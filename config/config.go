package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Pricing      PricingConfig      `yaml:"pricing"`
	Admin        AdminConfig        `yaml:"admin"`
	Notification NotificationConfig `yaml:"notification"`
	WorkerPool   WorkerPoolConfig   `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	RateLimitPerSec float64  `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int      `yaml:"rate_limit_burst"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	Seed                   bool   `yaml:"seed"`
}

// PricingConfig holds the pricing resolver tunables.
type PricingConfig struct {
	FallbackBasePrice int64 `yaml:"fallback_base_price"`
}

// AdminConfig holds the admin API auth settings.
type AdminConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// NotificationConfig holds the email and WhatsApp dispatch settings.
type NotificationConfig struct {
	SiteURL    string         `yaml:"site_url"`
	AdminEmail string         `yaml:"admin_email"`
	AdminPhone string         `yaml:"admin_phone"`
	SMTP       SMTPConfig     `yaml:"smtp"`
	WhatsApp   WhatsAppConfig `yaml:"whatsapp"`
}

// SMTPConfig holds the outbound mail server settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// WhatsAppConfig holds the WhatsApp Business API settings.
type WhatsAppConfig struct {
	PhoneNumberID string `yaml:"phone_number_id"`
	AccessToken   string `yaml:"access_token"`
	APIBaseURL    string `yaml:"api_base_url"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Pricing.FallbackBasePrice <= 0 {
		cfg.Pricing.FallbackBasePrice = 1000
	}

	if cfg.Notification.SMTP.Port <= 0 {
		cfg.Notification.SMTP.Port = 587
	}
	if cfg.Notification.WhatsApp.APIBaseURL == "" {
		cfg.Notification.WhatsApp.APIBaseURL = "https://graph.facebook.com/v18.0"
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}
