package config

import "github.com/spf13/viper"

// Default task names.
const (
	TaskWebhookHealth = "webhook_health"
	TaskCommandsSync  = "commands_sync"
)

var defaults = map[string]any{
	"logger.level": "info",
	"logger.json":  false,

	"telegram.mode":                 ModePolling,
	"telegram.drop_pending_updates": true,
	"telegram.webhook.url":          "",
	"telegram.webhook.listen":       ":8080",
	"telegram.webhook.path":         "/webhook",
	"telegram.webhook.secret_token": "",

	"messages.welcome": "👋 Hello, {name}!\n\n" +
		"I can tell you who is behind a message.\n\n" +
		"1. Forward me a message from a user, channel or group.\n" +
		"2. Send /id to get your own ID or the ID of this group.",
	"messages.help": "Forward me any message to see where it came from.\n\n" +
		"/id - show your user ID and the chat ID\n" +
		"/check - reply to a forwarded message to inspect it",
	"messages.reply_required": "ℹ️ Reply to a forwarded message with /check to inspect it.",
	"messages.not_forwarded":  "ℹ️ That message was not forwarded, there is nothing to inspect.",
	"messages.general_error":  "❌ An error occurred. Please try again later.",

	"messages.cmd_start": "Start the bot",
	"messages.cmd_help":  "How to use the bot",
	"messages.cmd_id":    "Show your user ID and the chat ID",
	"messages.cmd_check": "Inspect the forwarded message you reply to",

	"scheduler.tasks": map[string]any{
		TaskWebhookHealth: map[string]any{"enabled": true, "schedule": "0 */10 * * * *"},
		TaskCommandsSync:  map[string]any{"enabled": true, "schedule": "0 0 */6 * * *"},
	},
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}
