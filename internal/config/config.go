package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Notify    NotifyConfig    `yaml:"notify"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects and configures the persistence backend
type StoreConfig struct {
	Backend string `yaml:"backend"`  // "file" or "postgres"
	DataDir string `yaml:"data_dir"` // For file backend
}

// DatabaseConfig contains PostgreSQL connection settings (postgres backend)
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// GeminiConfig contains settings for the document-extraction collaborator
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// NotifyConfig selects the reminder delivery channel
type NotifyConfig struct {
	Channel  string         `yaml:"channel"` // "log", "email" or "push"
	SendGrid SendGridConfig `yaml:"sendgrid"`
	FCM      FCMConfig      `yaml:"fcm"`
}

// SendGridConfig contains email channel settings
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
	ToEmail   string `yaml:"to_email"`
	ToName    string `yaml:"to_name"`
}

// FCMConfig contains push channel settings
type FCMConfig struct {
	CredentialsFile string   `yaml:"credentials_file"`
	DeviceTokens    []string `yaml:"device_tokens"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendDueTomorrowReminders string `yaml:"send_due_tomorrow_reminders"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Store
	if val := os.Getenv("STORE_BACKEND"); val != "" {
		c.Store.Backend = val
	}
	if val := os.Getenv("STORE_DATA_DIR"); val != "" {
		c.Store.DataDir = val
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Gemini
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.Gemini.APIKey = val
	}
	if val := os.Getenv("GEMINI_MODEL"); val != "" {
		c.Gemini.Model = val
	}

	// Notify
	if val := os.Getenv("NOTIFY_CHANNEL"); val != "" {
		c.Notify.Channel = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notify.SendGrid.APIKey = val
	}
	if val := os.Getenv("FCM_CREDENTIALS_FILE"); val != "" {
		c.Notify.FCM.CredentialsFile = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Store validation
	if c.Store.Backend == "" {
		c.Store.Backend = "file"
	}
	switch c.Store.Backend {
	case "file":
		if c.Store.DataDir == "" {
			c.Store.DataDir = "./data"
		}
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required for postgres backend")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required for postgres backend")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown store backend: %s", c.Store.Backend)
	}

	// Gemini defaults
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	// Notify validation
	if c.Notify.Channel == "" {
		c.Notify.Channel = "log"
	}
	switch c.Notify.Channel {
	case "log":
	case "email":
		if c.Notify.SendGrid.APIKey == "" {
			return fmt.Errorf("sendgrid api key is required for email channel")
		}
		if c.Notify.SendGrid.ToEmail == "" {
			return fmt.Errorf("sendgrid recipient is required for email channel")
		}
	case "push":
		if c.Notify.FCM.CredentialsFile == "" {
			return fmt.Errorf("fcm credentials file is required for push channel")
		}
	default:
		return fmt.Errorf("unknown notify channel: %s", c.Notify.Channel)
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.SendDueTomorrowReminders == "" {
		c.Scheduler.SendDueTomorrowReminders = "0 0 * * * *" // Hourly
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
