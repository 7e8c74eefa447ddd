package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the notes directory, relative to the working directory.
	DefaultPath = "saved_notes"
)

type Config interface {
	BasePath() string
	LogPath() string
}

// LoadConfig reads .notes.yaml from $NOTES_CONFIG_PATH or the working
// directory and NOTES_* environment variables. A missing config file is fine.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", DefaultPath)
	viper.SetDefault("log", "")
	viper.SetConfigName(".notes") // .yaml is implicit
	viper.SetEnvPrefix("NOTES")
	viper.AutomaticEnv()

	if override := os.Getenv("NOTES_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return NewConfig(viper.GetString("path"), viper.GetString("log"))
}

// NewConfig builds a Config from explicit paths, expanding a leading ~.
func NewConfig(path, log string) (Config, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand path %q: %w", path, err)
	}
	l, err := homedir.Expand(log)
	if err != nil {
		return nil, fmt.Errorf("expand log %q: %w", log, err)
	}
	return &fileConfig{Path: p, Log: l}, nil
}

// ConfigFile reports the config file viper loaded, if any.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

type fileConfig struct {
	Path string `json:"path"`
	Log  string `json:"log"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogPath() string {
	return f.Log
}
