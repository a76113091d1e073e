// Package config resolves where the task file lives.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	envPrefix       = "TASKPAD"
	defaultDirName  = ".taskpad"
	defaultFileName = "tasks.parquet"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// File is the path of the parquet store.
	File string
}

// Load resolves the task file path. Precedence: the explicit flag
// value, then the TASKPAD_FILE environment variable, then an optional
// $HOME/.taskpad/config.yaml, then the built-in default under
// $HOME/.taskpad/.
func Load(flagFile string) (*Config, error) {
	if flagFile != "" {
		return &Config{File: flagFile}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv("file"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	v.SetDefault("file", filepath.Join(home, defaultDirName, defaultFileName))

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, defaultDirName))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{File: v.GetString("file")}, nil
}
