// Package config loads and validates the interpreter's configuration.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name looked up in the config directory.
	ConfigurationName = "config.yaml"
	// DirName is the config directory under the user's home.
	DirName = ".gosh"
)

// Color output modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Config holds the user-tunable interpreter settings.
type Config struct {
	// Motd is printed once when an interactive session starts.
	Motd string `json:"motd"`

	// Prompt is a template: \u expands to the user, \h to the host,
	// \w to the working directory and \$ to the prompt character.
	Prompt string `json:"prompt" validate:"required"`

	// Color controls colored output: always, auto or never.
	Color string `json:"color" validate:"oneof=always auto never"`

	// HistoryFile is where history is persisted; a leading "~/" resolves
	// against the user's home directory.
	HistoryFile string `json:"history_file" validate:"required"`

	// HistorySize is the history ring-buffer capacity.
	HistorySize int `json:"history_size" validate:"gte=1,lte=10000"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// HistoryPath resolves the configured history file to an absolute path.
func (c *Config) HistoryPath() string {
	return expandHome(c.HistoryFile)
}

// Default returns the built-in configuration.
func Default() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		// The embedded config ships with the binary; failing to parse it
		// is a programming error.
		panic(err)
	}
	return &out
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
