package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/forwardinfo/internal/inspect"
)

// ProfileAPI is the subset of the bot API used for profile enrichment.
type ProfileAPI interface {
	GetChat(ctx context.Context, params *bot.GetChatParams) (*models.ChatFullInfo, error)
	GetUserProfilePhotos(ctx context.Context, params *bot.GetUserProfilePhotosParams) (*models.UserProfilePhotos, error)
}

// Enricher implements inspect.Enricher on top of the Bot API.
type Enricher struct {
	api ProfileAPI
}

// NewEnricher returns an Enricher backed by api, usually a *bot.Bot.
func NewEnricher(api ProfileAPI) *Enricher {
	return &Enricher{api: api}
}

// ResolveUser fetches the full chat info of a user. The bio is empty when the
// user has none or hides it from the bot.
func (e *Enricher) ResolveUser(ctx context.Context, id int64) (inspect.ResolvedUser, error) {
	info, err := e.api.GetChat(ctx, &bot.GetChatParams{ChatID: id})
	if err != nil {
		return inspect.ResolvedUser{}, fmt.Errorf("get chat %d: %w", id, err)
	}
	if info == nil {
		return inspect.ResolvedUser{}, fmt.Errorf("get chat %d: empty response", id)
	}
	return inspect.ResolvedUser{
		Bio:      info.Bio,
		FullName: strings.TrimSpace(info.FirstName + " " + info.LastName),
	}, nil
}

// CountProfilePhotos returns the total number of profile photos of a user.
func (e *Enricher) CountProfilePhotos(ctx context.Context, id int64) (int, error) {
	photos, err := e.api.GetUserProfilePhotos(ctx, &bot.GetUserProfilePhotosParams{UserID: id, Limit: 1})
	if err != nil {
		return 0, fmt.Errorf("get profile photos %d: %w", id, err)
	}
	if photos == nil {
		return 0, fmt.Errorf("get profile photos %d: empty response", id)
	}
	return photos.TotalCount, nil
}
