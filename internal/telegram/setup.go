// Package telegram handles the setup of the go-telegram/bot client, handler
// registration, and the translation between Telegram types and the inspect
// package.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// RegisteredHandler describes a handler with its match rules and middleware.
// When MatchFunc is set it replaces HandlerType, Pattern and MatchType for
// matching; Pattern is then only used in logs.
type RegisteredHandler struct {
	HandlerType bot.HandlerType
	Pattern     string
	Handler     bot.HandlerFunc
	Middleware  []bot.Middleware
	MatchType   bot.MatchType
	MatchFunc   bot.MatchFunc
}

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(token))
	return b, nil
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "..."
	}
	return token[:8] + "..."
}

// applyMiddleware wraps a handler function with a slice of middleware.
// The first middleware in the slice is the outermost.
func applyMiddleware(handler bot.HandlerFunc, mw []bot.Middleware) bot.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// RegisterHandlers registers command handlers with the bot instance,
// applying each handler's middleware.
func RegisterHandlers(b *bot.Bot, logger *slog.Logger, registered map[string]RegisteredHandler) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "handler_registry")

	if len(registered) == 0 {
		log.Warn("No handlers provided for registration.")
		return nil
	}

	log.Info("Registering Telegram handlers...", "count", len(registered))

	for _, rh := range registered {
		if rh.Handler == nil {
			log.Warn("Skipping registration for nil handler", "pattern", rh.Pattern)
			continue
		}

		handler := applyMiddleware(rh.Handler, rh.Middleware)
		if rh.MatchFunc != nil {
			b.RegisterHandlerMatchFunc(rh.MatchFunc, handler)
		} else {
			b.RegisterHandler(rh.HandlerType, rh.Pattern, rh.MatchType, handler)
		}
		log.Debug("Registered handler", "pattern", rh.Pattern, "match_type", rh.MatchType, "middleware_count", len(rh.Middleware))
	}

	log.Info("Registered Telegram handlers successfully", "count", len(registered))
	return nil
}

// CommandMatch matches messages that start with /command or
// /command@<username>, the form Telegram sends in groups. username is read on
// every match because it is only known after getMe. Forwarded messages never
// match, so a forwarded command is inspected rather than executed.
func CommandMatch(command string, username func() string) bot.MatchFunc {
	return func(update *models.Update) bool {
		msg := update.Message
		if msg == nil || IsForward(msg) {
			return false
		}
		name, mention, ok := leadingCommand(msg)
		if !ok || name != command {
			return false
		}
		if mention == "" {
			return true
		}
		return username != nil && strings.EqualFold(mention, username())
	}
}

// leadingCommand splits the bot command entity at offset 0 into its name and
// optional @mention. Command entities are ASCII, so UTF-16 lengths equal
// byte lengths.
func leadingCommand(msg *models.Message) (name, mention string, ok bool) {
	for _, e := range msg.Entities {
		if e.Type != models.MessageEntityTypeBotCommand || e.Offset != 0 {
			continue
		}
		if e.Length < 2 || e.Length > len(msg.Text) {
			return "", "", false
		}
		name, mention, _ = strings.Cut(msg.Text[1:e.Length], "@")
		return name, mention, true
	}
	return "", "", false
}

// CommandPublisher is the subset of the bot API used to publish the command menu.
type CommandPublisher interface {
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

// PublishCommands replaces the bot's command menu.
func PublishCommands(ctx context.Context, api CommandPublisher, commands []models.BotCommand) error {
	if len(commands) == 0 {
		return nil
	}
	ok, err := api.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: commands})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	if !ok {
		return fmt.Errorf("telegram rejected bot commands")
	}
	return nil
}
