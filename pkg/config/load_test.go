package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogcore/pkg/config"
)

type sampleConfig struct {
	Name  string `yaml:"name" env:"SAMPLE_NAME" env-default:"default-name"`
	Limit int    `yaml:"limit" env:"SAMPLE_LIMIT" env-default:"2"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults from env tags", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.NoError(t, err)
		assert.Equal(t, "default-name", cfg.Name)
		assert.Equal(t, 2, cfg.Limit)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SAMPLE_LIMIT", "7")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Limit)
	})

	t.Run("missing file falls back to environment", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "test", filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "default-name", cfg.Name)
	})

	t.Run("values from yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: from-file\nlimit: 5\n"), 0o600))

		cfg, err := config.Load[sampleConfig](ctx, "test", path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 5, cfg.Limit)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("SAMPLE_LIMIT", "many")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
