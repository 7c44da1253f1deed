package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadSourceEnv returns the extra environment for the source command: the
// variables read from envFile, overlaid by env. A relative envFile is
// resolved against configDir when one is given.
func LoadSourceEnv(envFile string, env map[string]string, configDir string) (map[string]string, error) {
	merged := make(map[string]string, len(env))

	if envFile != "" {
		path := envFile
		if !filepath.IsAbs(path) && configDir != "" {
			path = filepath.Join(configDir, path)
		}

		fileEnv, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("source env file not found: %s", path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading source env file %s: %w", path, err)
		}
		maps.Copy(merged, fileEnv)
	}

	maps.Copy(merged, env)
	return merged, nil
}
