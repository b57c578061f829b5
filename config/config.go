package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	DataFile        string `mapstructure:"DATA_FILE"`
	AutopaySchedule string `mapstructure:"AUTOPAY_SCHEDULE"`
	CORSOrigins     string `mapstructure:"CORS_ORIGINS"`
}

// CORSOriginList splits the comma-separated origin setting.
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATA_FILE", "data/demobank.json")
	viper.SetDefault("AUTOPAY_SCHEDULE", "0 6 * * *")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("DATA_FILE")
	_ = viper.BindEnv("AUTOPAY_SCHEDULE")
	_ = viper.BindEnv("CORS_ORIGINS")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
