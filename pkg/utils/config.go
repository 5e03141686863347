package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	UploadPath     string
	RequestTimeout int // seconds
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret           string
	UserExpiryHours  int
	AdminExpiryHours int
}

type AuthConfig struct {
	AdminKeyHash       string
	ResetExpiryMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_USER_EXPIRY_HOURS", 168)
	viper.SetDefault("JWT_ADMIN_EXPIRY_HOURS", 24)
	viper.SetDefault("RESET_TOKEN_EXPIRY_MINUTES", 30)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 60)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPLOAD_PATH", "uploads/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			UploadPath:     viper.GetString("UPLOAD_PATH"),
			RequestTimeout: viper.GetInt("REQUEST_TIMEOUT_SECONDS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:           viper.GetString("JWT_SECRET"),
			UserExpiryHours:  viper.GetInt("JWT_USER_EXPIRY_HOURS"),
			AdminExpiryHours: viper.GetInt("JWT_ADMIN_EXPIRY_HOURS"),
		},
		Auth: AuthConfig{
			AdminKeyHash:       viper.GetString("ADMIN_KEY_HASH"),
			ResetExpiryMinutes: viper.GetInt("RESET_TOKEN_EXPIRY_MINUTES"),
		},
	}

	// Secrets are mandatory, refuse to start without them
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if config.Auth.AdminKeyHash == "" {
		return nil, fmt.Errorf("ADMIN_KEY_HASH is not set")
	}
	if config.Database.Host == "" || config.Database.Name == "" {
		return nil, fmt.Errorf("database configuration is incomplete")
	}

	return config, nil
}
