package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.HistorySize)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"empty prompt", func(c *Config) { c.Prompt = "" }, false},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, false},
		{"zero history size", func(c *Config) { c.HistorySize = 0 }, false},
		{"huge history size", func(c *Config) { c.HistorySize = 100000 }, false},
		{"no history file", func(c *Config) { c.HistoryFile = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestInitializeAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()

	dest, err := Initialize(fs, "/home/user/.gosh")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/.gosh/config.yaml", dest)

	cfg, err := Load(fs, "/home/user/.gosh")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Loading via the file path works too.
	cfg, err = Load(fs, dest)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInitializeKeepsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	custom := []byte("prompt: '> '\ncolor: never\nhistory_file: /tmp/h\nhistory_size: 5\n")
	require.NoError(t, fs.MkdirAll("/etc/gosh", 0755))
	require.NoError(t, afero.WriteFile(fs, "/etc/gosh/config.yaml", custom, 0644))

	_, err := Initialize(fs, "/etc/gosh")
	require.NoError(t, err)

	cfg, err := Load(fs, "/etc/gosh")
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 5, cfg.HistorySize)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	bad := []byte("prompt: '> '\ncolor: never\nhistory_file: /tmp/h\nhistory_size: 5\nshell_level: 3\n")
	require.NoError(t, afero.WriteFile(fs, "/etc/gosh/config.yaml", bad, 0644))

	_, err := Load(fs, "/etc/gosh")
	assert.Error(t, err)
}
