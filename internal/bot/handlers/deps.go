package handlers

import (
	"log/slog"

	"github.com/edgard/forwardinfo/internal/config"
	"github.com/edgard/forwardinfo/internal/inspect"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Inspector *inspect.Inspector
}
