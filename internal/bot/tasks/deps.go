// Package tasks implements the bot's scheduled maintenance tasks and their
// registration.
package tasks

import (
	"log/slog"

	"github.com/edgard/forwardinfo/internal/config"
	"github.com/edgard/forwardinfo/internal/telegram"
)

// TelegramAPI is the part of the bot API used by scheduled tasks.
// *bot.Bot satisfies it.
type TelegramAPI interface {
	telegram.WebhookAPI
	telegram.CommandPublisher
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Config *config.Config
	API    TelegramAPI
}
