package telegram

import (
	"github.com/go-telegram/bot/models"

	"github.com/edgard/forwardinfo/internal/inspect"
)

// ForwardMetadataFrom extracts forward information from a message.
// Channel posts and anonymous group admins are both reported as chat origins.
func ForwardMetadataFrom(msg *models.Message) inspect.ForwardMetadata {
	var meta inspect.ForwardMetadata
	if msg == nil || msg.ForwardOrigin == nil {
		return meta
	}
	origin := msg.ForwardOrigin

	switch {
	case origin.MessageOriginChannel != nil:
		meta.FromChat = chatProfile(origin.MessageOriginChannel.Chat)
	case origin.MessageOriginChat != nil:
		meta.FromChat = chatProfile(origin.MessageOriginChat.SenderChat)
	}
	if origin.MessageOriginUser != nil {
		u := origin.MessageOriginUser.SenderUser
		meta.FromUser = &inspect.UserProfile{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
	}
	if origin.MessageOriginHiddenUser != nil {
		meta.SenderName = origin.MessageOriginHiddenUser.SenderUserName
	}
	return meta
}

// IsForward reports whether msg carries any forward origin.
func IsForward(msg *models.Message) bool {
	return msg != nil && msg.ForwardOrigin != nil
}

func chatProfile(c models.Chat) *inspect.ChatProfile {
	return &inspect.ChatProfile{
		ID:       c.ID,
		Title:    c.Title,
		Username: c.Username,
	}
}
