package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig   `validate:"required"`
	Postgres PostgresConfig `validate:"required"`
	Auth     AuthConfig     `validate:"required"`
	Logging  LoggingConfig  `validate:"required"`
	Cache    CacheConfig
	Engine   EngineConfig `validate:"required"`
}

type ServerConfig struct {
	Port        string `validate:"required"`
	Mode        string `validate:"oneof=debug release test"`
	CORSOrigins []string
}

type PostgresConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required"`
	User     string `validate:"required"`
	Password string
	DBName   string `validate:"required"`
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret string `validate:"required"`
}

type LoggingConfig struct {
	Level string `validate:"required"`
}

// CacheConfig controls the tax rule snapshot cache kept in front of the repository.
type CacheConfig struct {
	RuleTTL time.Duration
}

type EngineConfig struct {
	// BatchConcurrency bounds the goroutines one batch calculation fans out to.
	BatchConcurrency int `validate:"min=1,max=64"`
}

// NewConfig loads configs/.env (if present), an optional config.yaml and FLEETADMIN_* env vars.
func NewConfig() (*Configuration, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		fmt.Println("No configs/.env file found or error loading it")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/fleetadmin")

	v.SetEnvPrefix("FLEETADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.corsorigins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.dbname", "postgres")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("auth.jwtsecret", "default_super_secret_key")
	v.SetDefault("logging.level", "info")
	v.SetDefault("cache.rulettl", time.Minute)
	v.SetDefault("engine.batchconcurrency", 8)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Server.Mode == "release" && c.Auth.JWTSecret == "default_super_secret_key" {
		return errors.New("FLEETADMIN_AUTH_JWTSECRET must be set in release mode")
	}
	return nil
}

func (c PostgresConfig) GetDSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, sslMode)
}
