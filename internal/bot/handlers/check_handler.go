package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/forwardinfo/internal/inspect"
	"github.com/edgard/forwardinfo/internal/telegram"
)

// NewCheckHandler returns a handler for the /check command, which inspects
// the forwarded message it replies to.
func NewCheckHandler(deps HandlerDeps) bot.HandlerFunc {
	return checkHandler{deps}.Handle
}

type checkHandler struct {
	deps HandlerDeps
}

func (h checkHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "check")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Check handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	msg := update.Message
	log.InfoContext(ctx, "Handling /check command", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	r, err := h.check(ctx, telegram.NewEnricher(b), msg)
	if err != nil {
		log.InfoContext(ctx, "Nothing to inspect", "reason", err, "chat_id", msg.Chat.ID)
	}
	sendReply(ctx, b, h.deps, log, msg.Chat.ID, msg.ID, r)
}

// check inspects the message msg replies to. The returned error explains why
// nothing was inspected; the reply is always sendable.
func (h checkHandler) check(ctx context.Context, e inspect.Enricher, msg *models.Message) (reply, error) {
	target := msg.ReplyToMessage
	if target == nil {
		return reply{text: h.deps.Config.Messages.ReplyRequired}, inspect.ErrMissingReplyTarget
	}

	text, err := h.deps.Inspector.Inspect(ctx, e, telegram.ForwardMetadataFrom(target))
	switch {
	case errors.Is(err, inspect.ErrNoForwardEvidence):
		return reply{text: h.deps.Config.Messages.NotForwarded}, err
	case err != nil:
		h.deps.Logger.ErrorContext(ctx, "Failed to inspect replied message", "error", err)
		return reply{text: h.deps.Config.Messages.GeneralError}, err
	}
	return reply{text: text, markdown: true}, nil
}
