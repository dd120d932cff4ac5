package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	DataGov     DataGov     `mapstructure:",squash"`
	MGNREGASync MGNREGASync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr       string `mapstructure:"redis_addr"`
	Password   string `mapstructure:"redis_password"`
	DB         int    `mapstructure:"redis_db"`
	TTLSeconds int    `mapstructure:"redis_ttl_seconds"`
}

// DataGov holds the data.gov.in MGNREGA feed settings. ResourceID selects the
// datastore resource; APIKey is optional and sent as the api-key header.
type DataGov struct {
	BaseURL        string `mapstructure:"datagov_base_url"`
	ResourceID     string `mapstructure:"datagov_resource_id"`
	APIKey         string `mapstructure:"datagov_api_key"`
	TimeoutSeconds int    `mapstructure:"datagov_timeout_seconds"`
	Source         string `mapstructure:"datagov_source"`
}

type MGNREGASync struct {
	CronSchedule string `mapstructure:"mgnrega_sync_cron"`
	Enabled      bool   `mapstructure:"mgnrega_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/civicview?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 1)
	viper.SetDefault("REDIS_TTL_SECONDS", 300) // 5 minutes

	viper.SetDefault("DATAGOV_BASE_URL", "https://www.data.gov.in/api/datastore/resource")
	viper.SetDefault("DATAGOV_RESOURCE_ID", "MGNREGA_RESOURCE_ID")
	viper.SetDefault("DATAGOV_API_KEY", "")
	viper.SetDefault("DATAGOV_TIMEOUT_SECONDS", 30)
	viper.SetDefault("DATAGOV_SOURCE", "data.gov.in/mgnrega")

	viper.SetDefault("MGNREGA_SYNC_CRON", "0 2 * * 0") // weekly, Sunday 2am
	viper.SetDefault("MGNREGA_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// FeedURL builds the full datastore resource URL for the configured feed.
func (c *Config) FeedURL() string {
	return fmt.Sprintf("%s/%s", c.DataGov.BaseURL, c.DataGov.ResourceID)
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on environment variables")
}
