package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/forwardinfo/internal/inspect"
	"github.com/edgard/forwardinfo/internal/telegram"
)

// NewForwardHandler returns the default handler. It inspects forwarded
// messages and ignores everything else.
func NewForwardHandler(deps HandlerDeps) bot.HandlerFunc {
	return forwardHandler{deps}.Handle
}

type forwardHandler struct {
	deps HandlerDeps
}

func (h forwardHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "forward")

	if update.Message == nil {
		log.DebugContext(ctx, "Ignoring non-message update", "update_id", update.ID)
		return
	}

	msg := update.Message
	r, ok := h.inspect(ctx, telegram.NewEnricher(b), msg)
	if !ok {
		log.DebugContext(ctx, "Ignoring message without forward origin", "chat_id", msg.Chat.ID, "message_id", msg.ID)
		return
	}

	log.InfoContext(ctx, "Inspecting forwarded message", "chat_id", msg.Chat.ID, "message_id", msg.ID)
	sendReply(ctx, b, h.deps, log, msg.Chat.ID, msg.ID, r)
}

// inspect builds the report for msg. ok is false when msg is not a forward.
func (h forwardHandler) inspect(ctx context.Context, e inspect.Enricher, msg *models.Message) (reply, bool) {
	text, err := h.deps.Inspector.Inspect(ctx, e, telegram.ForwardMetadataFrom(msg))
	if errors.Is(err, inspect.ErrNoForwardEvidence) {
		return reply{}, false
	}
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to inspect forwarded message", "error", err)
		return reply{text: h.deps.Config.Messages.GeneralError}, true
	}
	return reply{text: text, markdown: true}, true
}
