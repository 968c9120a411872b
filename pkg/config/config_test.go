package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8787", cfg.HTTP.Addr())
	assert.Equal(t, 90, cfg.Analysis.DeadStockDays)
	assert.Equal(t, 180, cfg.Analysis.CriticalDays)
	assert.Equal(t, 90, cfg.Analysis.WarningDays)
	assert.Equal(t, 50, cfg.Import.MaxFileMB)
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, "postgres://postgres:@localhost:5432/bodega_wms?sslmode=disable", cfg.DB.ConnectionString())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("ANALYSIS_CRITICAL_DAYS", "365")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/wms")
	t.Setenv("DB_MAX_CONNS", "no-numérico")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 365, cfg.Analysis.CriticalDays)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, "postgres://u:p@db:5432/wms", cfg.DB.ConnectionString())
	assert.Equal(t, 8, cfg.DB.MaxConns)
}

func TestLoad_UmbralNegativo(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANALYSIS_WARNING_DAYS", "-1")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapaContraseña(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 1, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:1/d?sslmode=disable", c.DSN())
}
