package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath   = "~/.roster"
	ConfigPathEnv = "ROSTER_CONFIG_PATH"
)

type Config interface {
	BasePath() string
}

// LoadConfig reads an optional .roster.yaml from $ROSTER_CONFIG_PATH or the
// working directory. ROSTER_PATH overrides the data directory.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetConfigName(".roster") // .yaml is implicit
	v.SetEnvPrefix("ROSTER")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand %q: %w", v.GetString("path"), err)
	}
	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

// StaticConfig is a Config with a fixed base path.
type StaticConfig string

func (s StaticConfig) BasePath() string {
	return string(s)
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigFile returns the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.File
	}
	return ""
}
