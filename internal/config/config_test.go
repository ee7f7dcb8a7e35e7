package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Defaults when config file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: configuration is loaded
		conf := MustLoad(path)

		// Then: env-default values apply
		assert.Equal(t, ModeCLI, conf.Mode)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "O", conf.BotMark)
	})

	t.Run("Values from YAML file", func(t *testing.T) {
		// Given: a config file selecting the web driver
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "mode: web\nlog-level: debug\nhttp-port: \"9090\"\nbot-mark: X\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: configuration is loaded
		conf := MustLoad(path)

		// Then: the file values win over the defaults
		assert.Equal(t, ModeWeb, conf.Mode)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "X", conf.BotMark)
	})
}
