package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// loadFromEnv overrides configuration with the variables named by env tags.
// Variables that are not set leave the file or default value in place.
func loadFromEnv(config *Config) error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return err
	}

	config.CORS.AllowedOrigins = tidyList(config.CORS.AllowedOrigins)
	config.CORS.AllowedMethods = tidyList(config.CORS.AllowedMethods)
	config.CORS.AllowedHeaders = tidyList(config.CORS.AllowedHeaders)
	return nil
}

// tidyList trims comma separated entries and drops blank ones
func tidyList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// EnvUsage describes every environment variable the configuration reads
func EnvUsage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
