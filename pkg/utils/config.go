package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Client   ClientConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AuthConfig struct {
	JWTSecret       string
	AccessTTLMin    int
	RefreshTTLHours int
}

// ClientConfig feeds the SDK defaults. WSURL is a placeholder: chat is
// polling-based, the value is carried for a future push transport.
type ClientConfig struct {
	APIBaseURL string
	WSURL      string
}

type UploadConfig struct {
	Dir string
}

// requiredVars must be present (env or .env); startup fails listing every
// missing one at once.
var requiredVars = []string{"DB_HOST", "DB_NAME", "DB_USER", "DB_PASS", "JWT_SECRET"}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "travel-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 15)
	viper.SetDefault("REFRESH_TOKEN_TTL_HOURS", 720)
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("UPLOAD_DIR", "uploads/")

	// A missing .env file is fine when everything comes from the environment.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !strings.Contains(err.Error(), "no such file") {
				return nil, err
			}
		}
	}

	viper.AutomaticEnv()

	var missing []string
	for _, key := range requiredVars {
		if viper.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			JWTSecret:       viper.GetString("JWT_SECRET"),
			AccessTTLMin:    viper.GetInt("ACCESS_TOKEN_TTL_MINUTES"),
			RefreshTTLHours: viper.GetInt("REFRESH_TOKEN_TTL_HOURS"),
		},
		Client: ClientConfig{
			APIBaseURL: viper.GetString("API_BASE_URL"),
			WSURL:      viper.GetString("WS_URL"),
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
	}

	return config, nil
}
