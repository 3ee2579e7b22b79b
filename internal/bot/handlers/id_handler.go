package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewIDHandler returns a handler for the /id command.
func NewIDHandler(deps HandlerDeps) bot.HandlerFunc {
	return idHandler{deps}.Handle
}

// idHandler tells the sender their user ID and, in groups, the chat ID.
type idHandler struct {
	deps HandlerDeps
}

func (h idHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "id")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "ID handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	msg := update.Message
	log.InfoContext(ctx, "Handling /id command", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	sendReply(ctx, b, h.deps, log, msg.Chat.ID, msg.ID, idReply(msg))
}

func idReply(msg *models.Message) reply {
	text := fmt.Sprintf("👤 *Your user ID:* `%d`", msg.From.ID)
	if msg.Chat.ID != msg.From.ID {
		text += fmt.Sprintf("\n💬 *This chat ID:* `%d`", msg.Chat.ID)
	}
	return reply{text: text, markdown: true}
}
