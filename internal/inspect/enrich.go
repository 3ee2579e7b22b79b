package inspect

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ResolvedUser is what the platform returns for a full user lookup.
type ResolvedUser struct {
	Bio      string
	FullName string
}

// Enricher looks up optional profile data. Both calls may fail for private
// profiles, rate limits or network errors.
type Enricher interface {
	ResolveUser(ctx context.Context, id int64) (ResolvedUser, error)
	CountProfilePhotos(ctx context.Context, id int64) (int, error)
}

// Gather issues both lookups concurrently, once each, and returns u with the
// optional signals filled in. Failed lookups are logged and left unknown.
func Gather(ctx context.Context, e Enricher, logger *slog.Logger, u UserProfile) UserProfile {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "enrichment", "user_id", u.ID)

	var (
		g        errgroup.Group
		resolved Signal[ResolvedUser]
		photos   Signal[int]
	)

	g.Go(func() error {
		r, err := e.ResolveUser(ctx, u.ID)
		if err != nil {
			log.WarnContext(ctx, "Could not resolve full user profile", "signal", "bio", "error", unavailable("resolve user", err))
			return nil
		}
		resolved = Some(r)
		return nil
	})
	g.Go(func() error {
		n, err := e.CountProfilePhotos(ctx, u.ID)
		if err != nil {
			log.WarnContext(ctx, "Could not fetch profile photos", "signal", "photo_count", "error", unavailable("count profile photos", err))
			return nil
		}
		photos = Some(n)
		return nil
	})
	_ = g.Wait()

	u.PhotoCount = photos
	if resolved.Known {
		u.Bio = Some(resolved.Value.Bio)
		u.ResolvedName = Some(resolved.Value.FullName)
	} else {
		u.Bio = Unknown[string]()
		u.ResolvedName = Unknown[string]()
	}
	return u
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrEnrichmentUnavailable, op, err)
}
