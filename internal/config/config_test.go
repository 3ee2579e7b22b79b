package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/forwardinfo/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  json: true
telegram:
  token: "123456789:file-token"
  mode: webhook
  webhook:
    url: https://bot.example.com/webhook
    listen: ":9090"
    path: /webhook
    secret_token: s3cret
messages:
  not_forwarded: "nope"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	assert.Equal(t, "123456789:file-token", cfg.Telegram.Token)
	assert.Equal(t, config.ModeWebhook, cfg.Telegram.Mode)
	assert.Equal(t, "https://bot.example.com/webhook", cfg.Telegram.Webhook.URL)
	assert.Equal(t, ":9090", cfg.Telegram.Webhook.Listen)
	assert.Equal(t, "s3cret", cfg.Telegram.Webhook.SecretToken)
	assert.Equal(t, "nope", cfg.Messages.NotForwarded)
	assert.NotEmpty(t, cfg.Messages.ReplyRequired, "unset messages keep defaults")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456789:env-token")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.JSON)
	assert.Equal(t, "123456789:env-token", cfg.Telegram.Token)
	assert.Equal(t, config.ModePolling, cfg.Telegram.Mode)
	assert.True(t, cfg.Telegram.DropPendingUpdates)
	assert.Equal(t, ":8080", cfg.Telegram.Webhook.Listen)
	assert.Equal(t, "/webhook", cfg.Telegram.Webhook.Path)

	require.Contains(t, cfg.Scheduler.Tasks, config.TaskWebhookHealth)
	require.Contains(t, cfg.Scheduler.Tasks, config.TaskCommandsSync)
	assert.True(t, cfg.Scheduler.Tasks[config.TaskWebhookHealth].Enabled)
	assert.NotEmpty(t, cfg.Scheduler.Tasks[config.TaskCommandsSync].Schedule)
}

func TestLoadConfigLegacyTokenVariable(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456789:legacy")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "123456789:legacy", cfg.Telegram.Token)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "file"
logger:
  level: warn
`)
	t.Setenv("BOT_LOGGER_LEVEL", "error")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logger.Level)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing token",
			body: "logger:\n  level: info\n",
		},
		{
			name: "bad log level",
			body: "telegram:\n  token: t\nlogger:\n  level: verbose\n",
		},
		{
			name: "bad mode",
			body: "telegram:\n  token: t\n  mode: push\n",
		},
		{
			name: "webhook without url",
			body: "telegram:\n  token: t\n  mode: webhook\n",
		},
		{
			name: "webhook with invalid url",
			body: "telegram:\n  token: t\n  mode: webhook\n  webhook:\n    url: not a url\n",
		},
		{
			name: "webhook path without slash",
			body: "telegram:\n  token: t\n  webhook:\n    path: hook\n",
		},
		{
			name: "enabled task without schedule",
			body: "telegram:\n  token: t\nscheduler:\n  tasks:\n    commands_sync:\n      enabled: true\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "telegram: [unclosed"))
	assert.Error(t, err)
}

func TestBotCommands(t *testing.T) {
	cfg := &config.Config{Messages: config.MessagesConfig{
		CmdStart: "Start",
		CmdID:    "Show IDs",
	}}

	cmds := cfg.BotCommands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "start", cmds[0].Command)
	assert.Equal(t, "id", cmds[1].Command)
}
