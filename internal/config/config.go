package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerName   string `mapstructure:"SERVER_NAME"`
	ListenAddr   string `mapstructure:"LISTEN_ADDR"`
	DatabasePath string `mapstructure:"DB_PATH"`
	AdminSecret  string `mapstructure:"ADMIN"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("SERVER_NAME", "LinkHub")
	viper.SetDefault("LISTEN_ADDR", ":3000")
	viper.SetDefault("DB_PATH", "linkhub.db")

	viper.AutomaticEnv()
	// The admin secret comes from the environment first, lowercase or
	// uppercase spelling.
	_ = viper.BindEnv("ADMIN", "admin", "ADMIN")

	// Support fallback loading from a file for the secret if env is not set
	viper.SetConfigFile(".env")
	// Ignore err if .env doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.AdminSecret = unquote(config.AdminSecret)

	return &config, nil
}

// unquote trims surrounding whitespace and one layer of matching quote
// characters. An unpaired or mismatched quote is left alone.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
