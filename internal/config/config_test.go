package config_test

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/stretchr/testify/require"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return config.NewLoader(nil)
}

func TestLoaderDefaults(t *testing.T) {
	conf, err := newLoader(t).Read()
	require.NoError(t, err)
	require.Equal(t, "fr-FR", conf.Locale)
	require.Equal(t, config.DefaultStorageKey, conf.StorageKey)
	require.Equal(t, 10, conf.IdleLimit)
	require.Equal(t, 5, conf.RotateEvery)
	require.Equal(t, 500, conf.FadeDelayMs)
	require.InDelta(t, 0.6, conf.FadeOpacity, 0.0001)
	require.Equal(t, config.DefaultBackgrounds, conf.Backgrounds)
	require.Equal(t, "admin", conf.AdminUser)
	require.Equal(t, "admin", conf.AdminPassword)
}

func TestLoaderEnvOverride(t *testing.T) {
	loader := newLoader(t)
	t.Setenv("MRSBOARD_IDLE_LIMIT", "42")
	t.Setenv("MRSBOARD_LOCALE", "en-US")

	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 42, conf.IdleLimit)
	require.Equal(t, "en-US", conf.Locale)
}

func TestFadeDelay(t *testing.T) {
	conf := config.Config{FadeDelayMs: 250}
	require.Equal(t, "250ms", conf.FadeDelay().String())
}

func TestDBPathOverride(t *testing.T) {
	conf := config.Config{DatabasePath: "/tmp/board.db"}
	require.Equal(t, "/tmp/board.db", conf.DBPath())
}
