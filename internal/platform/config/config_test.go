package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/exhorizon/internal/core/domain"
	"github.com/srgjo27/exhorizon/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "EXhOrizon", cfg.ProductName)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, "exhorizon_plans_v5", cfg.StorageSlot)
	assert.Equal(t, domain.LocaleZH, cfg.WeekdayLocale())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOCALE", "en")
	t.Setenv("PDF_FONT", "/usr/share/fonts/NotoSansSC-Regular.ttf")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "/usr/share/fonts/NotoSansSC-Regular.ttf", cfg.PDFFont)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, domain.LocaleEN, cfg.WeekdayLocale())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := config.Load()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestLoad_InvalidLocale(t *testing.T) {
	t.Setenv("LOCALE", "fr")
	_, err := config.Load()
	assert.ErrorContains(t, err, "LOCALE")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PRODUCT_NAME=TourBook\n"), 0o644))

	t.Setenv("PRODUCT_NAME", "")
	os.Unsetenv("PRODUCT_NAME")

	require.NoError(t, config.LoadDotEnv(path))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "TourBook", cfg.ProductName)
}
