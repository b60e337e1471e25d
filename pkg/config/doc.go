// Package config loads process configuration from environment variables into
// tagged Go structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The default ".env" file in the working directory is read once per process
// when present. WithEnvFiles replaces it with explicit files, which must exist.
// Variables already set in the environment always win.
//
// Every (type, prefix) pair is parsed once and cached; Reset drops the cache.
package config
