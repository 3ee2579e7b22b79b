package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const sendMessageTimeout = 10 * time.Second

// reply is a message to send back. Markdown replies use MarkdownV2.
type reply struct {
	text     string
	markdown bool
}

// sendReply answers the message replyTo in chatID. A failed MarkdownV2 send
// falls back to the general error text.
func sendReply(ctx context.Context, b *bot.Bot, deps HandlerDeps, log *slog.Logger, chatID int64, replyTo int, r reply) {
	if ctx.Err() != nil {
		log.ErrorContext(ctx, "Context cancelled before sending reply", "error", ctx.Err())
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()

	params := &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               r.text,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: bot.True()},
	}
	if replyTo > 0 {
		params.ReplyParameters = &models.ReplyParameters{MessageID: replyTo, AllowSendingWithoutReply: true}
	}
	if r.markdown {
		params.ParseMode = models.ParseModeMarkdown
	}

	sent, err := b.SendMessage(sendCtx, params)
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID, "markdown", r.markdown)
		if r.markdown {
			_, sendErr := b.SendMessage(sendCtx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   deps.Config.Messages.GeneralError,
			})
			if sendErr != nil {
				log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
			}
		}
		return
	}
	log.DebugContext(ctx, "Sent reply", "chat_id", chatID, "message_id", sent.ID)
}
