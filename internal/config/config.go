package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Seed     SeedConfig
	Session  SessionConfig
}

type AppConfig struct {
	Env string // "development", "production"
}

type DatabaseConfig struct {
	Path string // sqlite file, ":memory:" for throwaway runs
}

type SeedConfig struct {
	ProduktePath string
	LexikonPath  string
	Demo         bool // seed a demo event with jobs into an empty store
}

type SessionConfig struct {
	Role     string
	Language string
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("DB_PATH", "gastrogrid.db")
	viper.SetDefault("SEED_PRODUKTE", "data/produkte.json")
	viper.SetDefault("SEED_LEXIKON", "data/lexikon.json")
	viper.SetDefault("SEED_DEMO", false)
	viper.SetDefault("SESSION_ROLE", "crew")
	viper.SetDefault("SESSION_LANGUAGE", "de")

	cfg := &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Seed: SeedConfig{
			ProduktePath: viper.GetString("SEED_PRODUKTE"),
			LexikonPath:  viper.GetString("SEED_LEXIKON"),
			Demo:         viper.GetBool("SEED_DEMO"),
		},
		Session: SessionConfig{
			Role:     viper.GetString("SESSION_ROLE"),
			Language: viper.GetString("SESSION_LANGUAGE"),
		},
	}

	return cfg, nil
}
