package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 进程环境里总是带着 PATH、HOST、PORT 等变量，默认配置不应被它们污染。
func TestDefaultsSurviveAmbientEnv(t *testing.T) {
	t.Setenv("PATH", "/usr/local/bin:/usr/bin")
	t.Setenv("HOST", "ambient-host")
	t.Setenv("PORT", "9999")

	cfg := defaultConfig()
	require.NoError(t, envconfig.Process("sus", cfg))

	assert.Equal(t, "feedback.db", cfg.Sqlite.Path)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "smtp.qq.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
}

func TestPrefixedEnvOverride(t *testing.T) {
	t.Setenv("SUS_SQLITE_PATH", "/tmp/override.db")
	t.Setenv("SUS_MAIL_PORT", "587")
	t.Setenv("SUS_PORT", "8080")

	cfg := defaultConfig()
	require.NoError(t, envconfig.Process("sus", cfg))

	assert.Equal(t, "/tmp/override.db", cfg.Sqlite.Path)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "8080", cfg.Port)
}

func TestInitKeepsDefaultSqlitePath(t *testing.T) {
	cfg := Get()
	assert.Equal(t, "feedback.db", cfg.Sqlite.Path)
}
