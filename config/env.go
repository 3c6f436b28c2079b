package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvServerName = "STOMP_SERVER_NAME"
	EnvPort       = "STOMP_PORT"
	EnvTickRate   = "STOMP_TICKRATE"
	EnvLevel      = "STOMP_LEVEL"
)

// LoadEnv loads the given .env files (".env" when none are named) into the
// process environment and applies STOMP_* overrides to Server. A missing
// .env file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return applyServerEnv(&Server)
}

func applyServerEnv(s *ServerConfig) error {
	if v := os.Getenv(EnvServerName); v != "" {
		s.Name = v
	}
	if v := os.Getenv(EnvLevel); v != "" {
		s.LevelPath = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		s.Port = uint(port)
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		if rate <= 0 {
			return fmt.Errorf("%s: tick rate must be positive, got %d", EnvTickRate, rate)
		}
		s.TickRate = rate
	}
	return nil
}
