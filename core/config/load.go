package config

import (
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// DefaultDir returns the per-user configuration directory.
func DefaultDir() string {
	return expandHome("~/" + DirName)
}

// Load reads the configuration from the directory.
func Load(fs afero.Fs, path string) (*Config, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Config
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory unless a
// configuration already exists there.
func Initialize(fs afero.Fs, path string) (string, error) {
	if err := fs.MkdirAll(path, 0755); err != nil {
		return "", err
	}

	dest := filepath.Join(path, ConfigurationName)
	if exists, err := afero.Exists(fs, dest); err != nil {
		return "", err
	} else if exists {
		return dest, nil
	}

	if err := afero.WriteFile(fs, dest, defaultConfigData, 0644); err != nil {
		return "", err
	}
	return dest, nil
}
