package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("EDPAY_HOME", home)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, filepath.Join(home, "edpay.db"), cfg.DBPath)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, 5.0, cfg.PlatformFeePct)
	assert.Equal(t, 18.0, cfg.GSTPct)
	assert.Equal(t, 3*time.Second, cfg.ChatReplyDelay)
	assert.True(t, cfg.PayoutConfig().IsDefault())
}

func TestLoad_EnvVarOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("EDPAY_HOME", home)
	t.Setenv("EDPAY_DB", filepath.Join(home, "other.db"))
	t.Setenv("EDPAY_ENV", "production")
	t.Setenv("EDPAY_LOG_USE_CASES", "true")
	t.Setenv("EDPAY_PLATFORM_FEE_PCT", "10")
	t.Setenv("EDPAY_GST_PCT", "0")
	t.Setenv("EDPAY_CHAT_REPLY_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "other.db"), cfg.DBPath)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, 10.0, cfg.PlatformFeePct)
	assert.Equal(t, 0.0, cfg.GSTPct)
	assert.Equal(t, 250*time.Millisecond, cfg.ChatReplyDelay)
	assert.False(t, cfg.PayoutConfig().IsDefault())
}

func TestLoad_DotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("EDPAY_HOME", home)
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("EDPAY_GST_PCT=9\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.GSTPct)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	t.Setenv("EDPAY_HOME", t.TempDir())
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("just some words\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, ".env")
}

func TestLoad_ConfigYAMLBelowEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("EDPAY_HOME", home)
	yaml := "EDPAY_GST_PCT: 12\nEDPAY_PLATFORM_FEE_PCT: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("EDPAY_PLATFORM_FEE_PCT", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.GSTPct, "yaml overrides the default")
	assert.Equal(t, 2.0, cfg.PlatformFeePct, "environment overrides yaml")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"fee above 100", "EDPAY_PLATFORM_FEE_PCT", "101"},
		{"negative fee", "EDPAY_PLATFORM_FEE_PCT", "-1"},
		{"gst above 100", "EDPAY_GST_PCT", "150"},
		{"negative delay", "EDPAY_CHAT_REPLY_DELAY", "-1s"},
		{"unparsable delay", "EDPAY_CHAT_REPLY_DELAY", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDPAY_HOME", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	userHome, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.edpay")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, ".edpay"), got)

	got, err = expandHome("/var/lib/edpay")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/edpay", got)
}

func TestPayoutConfig_CarriesCharges(t *testing.T) {
	cfg := &Config{PlatformFeePct: 5, GSTPct: 18}
	pc := cfg.PayoutConfig()
	require.NotNil(t, pc.PlatformFeePercentage)
	assert.Equal(t, 5.0, *pc.PlatformFeePercentage)
	assert.Empty(t, pc.AdditionalCharges)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
