// Package bot implements the bot lifecycle: update delivery through long
// polling or a webhook, and the task scheduler.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"
	"golang.org/x/sync/errgroup"

	"github.com/edgard/forwardinfo/internal/config"
	"github.com/edgard/forwardinfo/internal/telegram"
	"github.com/edgard/forwardinfo/internal/webhook"
)

const shutdownTimeout = 10 * time.Second

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	tgBot     *tgbot.Bot
	scheduler *Scheduler
}

// NewBot creates a new instance of the bot with all required dependencies.
func NewBot(logger *slog.Logger, cfg *config.Config, tgBot *tgbot.Bot, scheduler *Scheduler) *Bot {
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		tgBot:     tgBot,
		scheduler: scheduler,
	}
}

// Run starts update delivery and the scheduler, and blocks until ctx is
// cancelled or a component fails.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...", "mode", b.cfg.Telegram.Mode)

	if err := telegram.PublishCommands(ctx, b.tgBot, b.cfg.BotCommands()); err != nil {
		b.logger.Warn("Failed to publish bot commands", "error", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	switch b.cfg.Telegram.Mode {
	case config.ModeWebhook:
		if err := b.startWebhook(gCtx, g); err != nil {
			return err
		}
	default:
		if err := b.startPolling(gCtx, g); err != nil {
			return err
		}
	}

	g.Go(func() error {
		b.logger.Info("Starting scheduler...")
		if err := b.scheduler.Start(); err != nil {
			b.logger.Error("Failed to start scheduler", "error", err)
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}

func (b *Bot) startPolling(ctx context.Context, g *errgroup.Group) error {
	if err := telegram.RemoveWebhook(ctx, b.tgBot, b.cfg.Telegram.DropPendingUpdates); err != nil {
		return err
	}

	g.Go(func() error {
		b.logger.Info("Starting Telegram long polling...")
		b.tgBot.Start(ctx)
		b.logger.Info("Telegram long polling stopped.")

		if ctx.Err() == nil {
			b.logger.Warn("Telegram polling stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})
	return nil
}

func (b *Bot) startWebhook(ctx context.Context, g *errgroup.Group) error {
	hook := b.cfg.Telegram.Webhook
	if err := telegram.RegisterWebhook(ctx, b.tgBot, hook, b.cfg.Telegram.DropPendingUpdates); err != nil {
		return err
	}
	b.logger.Info("Webhook registered", "url", hook.URL)

	server := webhook.NewServer(hook, b.tgBot.WebhookHandler(), b.logger)

	g.Go(func() error {
		b.tgBot.StartWebhook(ctx)
		b.logger.Info("Telegram webhook processing stopped.")
		return nil
	})
	g.Go(func() error {
		return server.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			b.logger.Error("Error stopping webhook server", "error", err)
		}
		return nil
	})
	return nil
}
