// Package inspect classifies the origin of forwarded messages and builds the
// trust report sent back for them: an account-age estimate and a heuristic
// risk assessment for user origins.
//
// Everything in this package is computed per message. Nothing is cached or
// shared between calls.
package inspect

import (
	"strings"
)

// Signal is an optional enrichment value. Known is false when the lookup
// failed or the data is private; such signals are skipped by the scorer.
type Signal[T any] struct {
	Value T
	Known bool
}

// Some returns a known signal holding v.
func Some[T any](v T) Signal[T] {
	return Signal[T]{Value: v, Known: true}
}

// Unknown returns a signal with no value.
func Unknown[T any]() Signal[T] {
	return Signal[T]{}
}

// UserProfile describes a user that originated a forward.
// Username is empty when the account has none. Bio, PhotoCount and
// ResolvedName are filled by Gather.
type UserProfile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string

	Bio          Signal[string]
	PhotoCount   Signal[int]
	ResolvedName Signal[string]
}

// ChatProfile describes a channel or group that originated a forward.
type ChatProfile struct {
	ID       int64
	Title    string
	Username string
}

// ForwardMetadata is the raw forward information carried by one message.
// Any combination of fields may be set; Classify decides which one wins.
type ForwardMetadata struct {
	FromChat   *ChatProfile
	FromUser   *UserProfile
	SenderName string
}

// Evidence is the classified origin of a forward. It is one of ChatForward,
// UserForward, HiddenForward or NoForward.
type Evidence interface {
	evidence()
}

// ChatForward is a message forwarded from a channel or group.
type ChatForward struct {
	Chat ChatProfile
}

// UserForward is a message forwarded from a user who allows linking.
type UserForward struct {
	User UserProfile
}

// HiddenForward is a message forwarded from a user who hides their account.
type HiddenForward struct {
	SenderName string
}

// NoForward means the message carries no forward information.
type NoForward struct{}

func (ChatForward) evidence()   {}
func (UserForward) evidence()   {}
func (HiddenForward) evidence() {}
func (NoForward) evidence()     {}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
