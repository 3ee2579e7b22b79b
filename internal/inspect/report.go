package inspect

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
)

// Reports are rendered for Telegram MarkdownV2. Every piece of user-supplied
// text goes through escape; static markup is written pre-escaped.

const (
	noneLabel = "none"
	separator = `\-\-\-`
)

// escape escapes s for MarkdownV2. Backslashes are doubled first because
// bot.EscapeMarkdown leaves them untouched.
func escape(s string) string {
	return bot.EscapeMarkdown(strings.ReplaceAll(s, `\`, `\\`))
}

func usernameLine(username string) string {
	if username == "" {
		return noneLabel
	}
	return escape("@" + username)
}

// FormatChat renders the report for a channel or group origin.
func FormatChat(c ChatProfile) string {
	var sb strings.Builder
	sb.WriteString("📢 *Channel/group info*\n\n")
	fmt.Fprintf(&sb, "*Title:* %s\n", escape(c.Title))
	fmt.Fprintf(&sb, "*Username:* %s\n", usernameLine(c.Username))
	fmt.Fprintf(&sb, "*Chat ID:* `%d`", c.ID)
	return sb.String()
}

// FormatUser renders the report for a user origin.
func FormatUser(u UserProfile, age AgeEstimate, risk RiskAssessment) string {
	var sb strings.Builder
	sb.WriteString("👤 *User info*\n\n")
	fmt.Fprintf(&sb, "*Name:* %s\n", escape(joinName(u.FirstName, u.LastName)))
	fmt.Fprintf(&sb, "*Username:* %s\n", usernameLine(u.Username))
	fmt.Fprintf(&sb, "*User ID:* `%d`\n\n", u.ID)
	sb.WriteString(formatAge(age))
	sb.WriteString("\n\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")
	sb.WriteString(formatRisk(risk))
	return sb.String()
}

// FormatHidden renders the notice for a sender who hides their account.
func FormatHidden(senderName string) string {
	return fmt.Sprintf("🚫 *Identity hidden*\n\nThe user %s has hidden their account from forwarded messages\\.",
		escape(senderName))
}

func formatAge(age AgeEstimate) string {
	if age.Earliest() {
		return fmt.Sprintf("📅 *Created:* approximately %s\\.", escape(age.Label))
	}
	return fmt.Sprintf("📅 *Created:* approximately in %s or later\\.", escape(age.Label))
}

func formatRisk(risk RiskAssessment) string {
	if risk.Clean() {
		return "✅ *Security analysis:*\nNothing suspicious found\\."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "⚠️ *Security analysis:* %s\n", tierHeadline(risk.Tier))
	for _, f := range risk.Findings {
		sb.WriteString("\n• ")
		sb.WriteString(escape(f))
	}
	return sb.String()
}

func tierHeadline(t Tier) string {
	switch t {
	case TierHigh:
		return "🔴 *High caution*"
	case TierMedium:
		return "🟡 *Medium caution*"
	default:
		return "🟢 *Low risk*"
	}
}
