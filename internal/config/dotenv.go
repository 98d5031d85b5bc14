package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

const (
	dotEnvPathVar     = "DOTENV"
	defaultDotEnvFile = ".env"
)

// loadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables that are already set keep their values.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}
	return nil
}
