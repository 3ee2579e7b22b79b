package inspect_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/forwardinfo/internal/inspect"
)

type fakeEnricher struct {
	resolved   inspect.ResolvedUser
	resolveErr error
	photos     int
	photosErr  error

	resolveCalls atomic.Int32
	photoCalls   atomic.Int32
}

func (f *fakeEnricher) ResolveUser(_ context.Context, _ int64) (inspect.ResolvedUser, error) {
	f.resolveCalls.Add(1)
	return f.resolved, f.resolveErr
}

func (f *fakeEnricher) CountProfilePhotos(_ context.Context, _ int64) (int, error) {
	f.photoCalls.Add(1)
	return f.photos, f.photosErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGather(t *testing.T) {
	t.Parallel()

	errPrivate := errors.New("Bad Request: chat not found")

	tests := []struct {
		name       string
		enricher   *fakeEnricher
		wantBio    inspect.Signal[string]
		wantName   inspect.Signal[string]
		wantPhotos inspect.Signal[int]
	}{
		{
			name:       "all lookups succeed",
			enricher:   &fakeEnricher{resolved: inspect.ResolvedUser{Bio: "hi", FullName: "Alice Smith"}, photos: 2},
			wantBio:    inspect.Some("hi"),
			wantName:   inspect.Some("Alice Smith"),
			wantPhotos: inspect.Some(2),
		},
		{
			name:       "resolve fails",
			enricher:   &fakeEnricher{resolveErr: errPrivate, photos: 0},
			wantBio:    inspect.Unknown[string](),
			wantName:   inspect.Unknown[string](),
			wantPhotos: inspect.Some(0),
		},
		{
			name:       "photo count fails",
			enricher:   &fakeEnricher{resolved: inspect.ResolvedUser{FullName: "Alice"}, photosErr: errPrivate},
			wantBio:    inspect.Some(""),
			wantName:   inspect.Some("Alice"),
			wantPhotos: inspect.Unknown[int](),
		},
		{
			name:       "everything fails",
			enricher:   &fakeEnricher{resolveErr: errPrivate, photosErr: errPrivate},
			wantBio:    inspect.Unknown[string](),
			wantName:   inspect.Unknown[string](),
			wantPhotos: inspect.Unknown[int](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := inspect.UserProfile{ID: 99, FirstName: "Alice"}
			got := inspect.Gather(context.Background(), tc.enricher, discardLogger(), in)

			assert.Equal(t, tc.wantBio, got.Bio)
			assert.Equal(t, tc.wantName, got.ResolvedName)
			assert.Equal(t, tc.wantPhotos, got.PhotoCount)
			assert.Equal(t, in.ID, got.ID)
			assert.Equal(t, in.FirstName, got.FirstName)

			assert.Equal(t, int32(1), tc.enricher.resolveCalls.Load())
			assert.Equal(t, int32(1), tc.enricher.photoCalls.Load())
		})
	}
}

func TestGatherUnresolvedNameIsNotScored(t *testing.T) {
	t.Parallel()

	e := &fakeEnricher{resolveErr: errors.New("Forbidden: bot was blocked by the user"), photos: 1}
	in := inspect.UserProfile{ID: 77, Username: "x", FirstName: "Telegram", LastName: "Support"}

	got := inspect.Gather(context.Background(), e, discardLogger(), in)
	require.False(t, got.ResolvedName.Known)

	risk := inspect.NewScorer().Score(got)
	assert.Equal(t, 0, risk.Score)
	assert.Equal(t, inspect.TierClean, risk.Tier)
	assert.Empty(t, risk.Findings)
}
