// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic.
package handlers

import (
	"github.com/edgard/forwardinfo/internal/telegram"
)

// RegisterAllCommands initializes and returns a map of all available bot commands.
// Commands also match when addressed as /command@<bot username>. Forwarded
// messages are served by the default handler, see NewForwardHandler.
func RegisterAllCommands(deps HandlerDeps) map[string]telegram.RegisteredHandler {
	handlers := make(map[string]telegram.RegisteredHandler)
	username := botUsername(deps)

	handlers["/start"] = telegram.RegisteredHandler{
		Pattern:   "start",
		Handler:   NewStartHandler(deps),
		MatchFunc: telegram.CommandMatch("start", username),
	}
	handlers["/help"] = telegram.RegisteredHandler{
		Pattern:   "help",
		Handler:   NewHelpHandler(deps),
		MatchFunc: telegram.CommandMatch("help", username),
	}
	handlers["/id"] = telegram.RegisteredHandler{
		Pattern:   "id",
		Handler:   NewIDHandler(deps),
		MatchFunc: telegram.CommandMatch("id", username),
	}
	handlers["/check"] = telegram.RegisteredHandler{
		Pattern:   "check",
		Handler:   NewCheckHandler(deps),
		MatchFunc: telegram.CommandMatch("check", username),
	}

	return handlers
}

// botUsername reads the username filled in from getMe at startup.
func botUsername(deps HandlerDeps) func() string {
	return func() string {
		if info := deps.Config.Telegram.BotInfo; info != nil {
			return info.Username
		}
		return ""
	}
}
