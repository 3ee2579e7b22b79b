// Package config provides configuration loading, validation, and management
// for the bot. It reads a YAML file, BOT_* environment variables and an
// optional .env file on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Update delivery modes.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Config is the root configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls the slog handler.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credentials and update delivery settings.
type TelegramConfig struct {
	Token              string        `mapstructure:"token"                validate:"required"`
	Mode               string        `mapstructure:"mode"                 validate:"oneof=polling webhook"`
	DropPendingUpdates bool          `mapstructure:"drop_pending_updates"`
	Webhook            WebhookConfig `mapstructure:"webhook"`

	// BotInfo is filled at startup from getMe.
	BotInfo *models.User `mapstructure:"-" validate:"-"`
}

// WebhookConfig configures the HTTP endpoint Telegram posts updates to.
type WebhookConfig struct {
	URL         string `mapstructure:"url"          validate:"omitempty,url"`
	Listen      string `mapstructure:"listen"       validate:"required"`
	Path        string `mapstructure:"path"         validate:"required,startswith=/"`
	SecretToken string `mapstructure:"secret_token" validate:"omitempty,max=256"`
}

// MessagesConfig holds user-facing texts and command descriptions.
type MessagesConfig struct {
	Welcome       string `mapstructure:"welcome"        validate:"required"`
	Help          string `mapstructure:"help"           validate:"required"`
	ReplyRequired string `mapstructure:"reply_required" validate:"required"`
	NotForwarded  string `mapstructure:"not_forwarded"  validate:"required"`
	GeneralError  string `mapstructure:"general_error"  validate:"required"`

	CmdStart string `mapstructure:"cmd_start"`
	CmdHelp  string `mapstructure:"cmd_help"`
	CmdID    string `mapstructure:"cmd_id"`
	CmdCheck string `mapstructure:"cmd_check"`
}

// SchedulerConfig maps task names to their schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task on a cron schedule (seconds field allowed).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// BotCommands returns the command menu published to Telegram.
func (c *Config) BotCommands() []models.BotCommand {
	var cmds []models.BotCommand
	for _, cmd := range []models.BotCommand{
		{Command: "start", Description: c.Messages.CmdStart},
		{Command: "help", Description: c.Messages.CmdHelp},
		{Command: "id", Description: c.Messages.CmdID},
		{Command: "check", Description: c.Messages.CmdCheck},
	} {
		if cmd.Description != "" {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// LoadConfig reads configuration from path, the environment and defaults,
// then validates it. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("telegram.token", "BOT_TELEGRAM_TOKEN", "TELEGRAM_BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			slog.Info("Configuration file not found, using defaults and environment", "path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateTelegram, TelegramConfig{})
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func validateTelegram(sl validator.StructLevel) {
	tc := sl.Current().Interface().(TelegramConfig)
	if tc.Mode == ModeWebhook && tc.Webhook.URL == "" {
		sl.ReportError(tc.Webhook.URL, "Webhook.URL", "URL", "required_in_webhook_mode", "")
	}
}
