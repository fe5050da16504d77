package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  server:
    cors: "https://a.example, ,https://b.example"
    http:
      read_timeout_seconds: 10
otp:
  secret: from-file
  window_minutes: 5
  tolerance: 1
instrument:
  enabled: false
  trace_sample_ratio: 0.25
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetArray("app.server.cors"))
	assert.Equal(t, 10*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, 5*time.Minute, cfg.GetMinute("otp.window_minutes"))
	assert.Equal(t, 1, cfg.GetInt("otp.tolerance"))
	assert.False(t, cfg.GetBool("instrument.enabled"))
	assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.trace_sample_ratio"), 0.0001)
	assert.Equal(t, []byte("from-file"), cfg.GetBytes("otp.secret"))
	assert.Nil(t, cfg.GetBytes("missing.key"))
	assert.Empty(t, cfg.GetArray("missing.key"))
}

func TestNewViperFromBytes_RequiresType(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sample))
	assert.Error(t, err)
}

func TestViper_EnvOverrides(t *testing.T) {
	t.Setenv("OTP_SECRET", "from-env")
	t.Setenv("MAIL_HOST", "smtp.example.com")

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GetString("otp.secret"))
	assert.Equal(t, "smtp.example.com", cfg.GetString("mail.host"))
}

func TestViper_LegacyEnvAliases(t *testing.T) {
	t.Setenv("EMAIL_USER", "sender@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("TARGET_EMAIL", "ops@example.com")

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "sender@example.com", cfg.GetString("mail.username"))
	assert.Equal(t, "app-password", cfg.GetString("mail.password"))
	assert.Equal(t, "ops@example.com", cfg.GetString("registration.target_email"))
}

func TestNewViper_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.GetString("otp.secret"))
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
