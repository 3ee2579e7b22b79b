package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/forwardinfo/internal/config"
	"github.com/edgard/forwardinfo/internal/telegram"
)

// newWebhookHealthTask checks the registered webhook and re-registers it when
// Telegram reports a different URL. It does nothing in polling mode.
func newWebhookHealthTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", config.TaskWebhookHealth)

	return func(ctx context.Context) error {
		tg := deps.Config.Telegram
		if tg.Mode != config.ModeWebhook {
			log.DebugContext(ctx, "Skipping webhook check in polling mode")
			return nil
		}

		info, err := deps.API.GetWebhookInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to get webhook info: %w", err)
		}

		if info.LastErrorMessage != "" {
			log.WarnContext(ctx, "Telegram reported webhook delivery error",
				"last_error", info.LastErrorMessage,
				"last_error_at", time.Unix(int64(info.LastErrorDate), 0).UTC(),
				"pending_updates", info.PendingUpdateCount)
		}

		if info.URL == tg.Webhook.URL {
			log.DebugContext(ctx, "Webhook is registered", "pending_updates", info.PendingUpdateCount)
			return nil
		}

		log.WarnContext(ctx, "Webhook URL drifted, re-registering", "registered", info.URL, "expected", tg.Webhook.URL)
		if err := telegram.RegisterWebhook(ctx, deps.API, tg.Webhook, false); err != nil {
			return err
		}
		log.InfoContext(ctx, "Webhook re-registered", "url", tg.Webhook.URL)
		return nil
	}
}
