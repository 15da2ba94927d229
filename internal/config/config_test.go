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
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "export_movies", cfg.Export.Queue)
	assert.False(t, cfg.Export.Durable)
	assert.Equal(t, QueueDriverAMQP, cfg.Export.QueueDriver)
	assert.Equal(t, 1, cfg.Export.Workers)
	assert.Equal(t, 5*time.Second, cfg.Export.RetryDelay)
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "urn:issuer:iut", cfg.Auth.Issuer)
	assert.Equal(t, "urn:audience:iut", cfg.Auth.Audience)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("EXPORT_QUEUE", "export_films_queue")
	t.Setenv("EXPORT_QUEUE_DURABLE", "true")
	t.Setenv("EXPORT_WORKERS", "4")
	t.Setenv("EXPORT_DEAD_LETTER_EXCHANGE", "export.dlx")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "export_films_queue", cfg.Export.Queue)
	assert.True(t, cfg.Export.Durable)
	assert.Equal(t, 4, cfg.Export.Workers)
	assert.Equal(t, "export.dlx", cfg.Export.DeadLetterExchange)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoad_EnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("JWT_SECRET=from-file\nQUEUE_DRIVER=memory\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("JWT_SECRET")
		_ = os.Unsetenv("QUEUE_DRIVER")
	})

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Auth.Secret)
	assert.Equal(t, QueueDriverMemory, cfg.Export.QueueDriver)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Configuration){
		"empty queue":      func(c *Configuration) { c.Export.Queue = "" },
		"no workers":       func(c *Configuration) { c.Export.Workers = 0 },
		"unknown driver":   func(c *Configuration) { c.Export.QueueDriver = "kafka" },
		"zero job timeout": func(c *Configuration) { c.Export.JobTimeout = 0 },
		"negative timeout": func(c *Configuration) { c.Export.JobTimeout = -time.Second },
		"negative delay":   func(c *Configuration) { c.Export.RetryDelay = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := &Configuration{Export: ExportOptions{
				QueueDriver: QueueDriverAMQP,
				Queue:       "export_movies",
				Workers:     1,
				JobTimeout:  time.Minute,
			}}
			mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ZeroRetryDelayAllowed(t *testing.T) {
	cfg := &Configuration{Export: ExportOptions{
		QueueDriver: QueueDriverAMQP,
		Queue:       "export_movies",
		Workers:     1,
		JobTimeout:  time.Minute,
	}}

	assert.NoError(t, cfg.Validate())
}

func TestLoad_RejectsZeroJobTimeout(t *testing.T) {
	t.Setenv("EXPORT_JOB_TIMEOUT", "0s")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.ErrorContains(t, err, "EXPORT_JOB_TIMEOUT")
}
