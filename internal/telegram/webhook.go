package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/forwardinfo/internal/config"
)

// WebhookAPI is the subset of the bot API used to manage the webhook.
type WebhookAPI interface {
	SetWebhook(ctx context.Context, params *bot.SetWebhookParams) (bool, error)
	DeleteWebhook(ctx context.Context, params *bot.DeleteWebhookParams) (bool, error)
	GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}

// RegisterWebhook points Telegram at the configured webhook URL.
func RegisterWebhook(ctx context.Context, api WebhookAPI, cfg config.WebhookConfig, dropPending bool) error {
	ok, err := api.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:                cfg.URL,
		SecretToken:        cfg.SecretToken,
		DropPendingUpdates: dropPending,
		AllowedUpdates:     []string{"message"},
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !ok {
		return fmt.Errorf("telegram rejected webhook %s", cfg.URL)
	}
	return nil
}

// RemoveWebhook deletes any webhook so long polling can be used.
func RemoveWebhook(ctx context.Context, api WebhookAPI, dropPending bool) error {
	if _, err := api.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: dropPending}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}
