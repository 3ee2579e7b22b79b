// Package main contains the entrypoint for the forward inspector bot.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"github.com/edgard/forwardinfo/internal/bot"
	"github.com/edgard/forwardinfo/internal/bot/handlers"
	"github.com/edgard/forwardinfo/internal/bot/tasks"
	"github.com/edgard/forwardinfo/internal/config"
	"github.com/edgard/forwardinfo/internal/inspect"
	"github.com/edgard/forwardinfo/internal/logger"
	"github.com/edgard/forwardinfo/internal/telegram"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "forwardinfo",
		Short:         "Telegram bot that reports who is behind a forwarded message",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.yaml", "Path to configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Start the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop() // Ensure context cancellation is signaled before exit
			return run(ctx, configPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "estimate <user-id>",
		Short: "Print the approximate creation year of an account ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id < 0 {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			age := inspect.EstimateAge(id)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, age.Label)
			return err
		},
	})

	return root
}

// run initializes and starts all application components (config, logger, bot, scheduler)
// and blocks until ctx is cancelled or a component fails.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		return err
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	hDeps := handlers.HandlerDeps{
		Logger:    log,
		Config:    cfg,
		Inspector: inspect.NewInspector(inspect.NewScorer(), log),
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewForwardHandler(hDeps)),
	}
	if cfg.Telegram.Webhook.SecretToken != "" {
		botOpts = append(botOpts, tgbot.WithWebhookSecretToken(cfg.Telegram.Webhook.SecretToken))
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return err
	}

	// Retrieve bot info and store it in the config for runtime use
	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return err
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return err
	}

	tDeps := tasks.TaskDeps{
		Logger: log,
		Config: cfg,
		API:    tg,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return err
	}
	app := bot.NewBot(log, cfg, tg, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx) // Run blocks until context is cancelled or an error occurs
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		// Allow logs to flush before exiting on error
		time.Sleep(time.Second)
		return runErr
	}

	log.Info("Bot stopped gracefully.")
	return nil
}
