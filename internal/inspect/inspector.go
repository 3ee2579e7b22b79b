package inspect

import (
	"context"
	"log/slog"
)

// Inspector turns forward metadata into a formatted report.
type Inspector struct {
	scorer *Scorer
	logger *slog.Logger
}

// NewInspector creates an Inspector. A nil scorer selects the default rules.
func NewInspector(scorer *Scorer, logger *slog.Logger) *Inspector {
	if scorer == nil {
		scorer = NewScorer()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{
		scorer: scorer,
		logger: logger.With("component", "inspector"),
	}
}

// Inspect classifies meta and renders the matching report. User origins are
// enriched through e before scoring. It returns ErrNoForwardEvidence when
// meta carries no forward information.
func (i *Inspector) Inspect(ctx context.Context, e Enricher, meta ForwardMetadata) (string, error) {
	switch ev := Classify(meta).(type) {
	case ChatForward:
		i.logger.DebugContext(ctx, "Classified chat forward", "chat_id", ev.Chat.ID)
		return FormatChat(ev.Chat), nil
	case UserForward:
		u := Gather(ctx, e, i.logger, ev.User)
		age := EstimateAge(u.ID)
		risk := i.scorer.Score(u)
		i.logger.InfoContext(ctx, "Assessed forwarded user",
			"user_id", u.ID,
			"age_bucket", age.Label,
			"score", risk.Score,
			"tier", risk.Tier.String(),
			"findings", len(risk.Findings))
		return FormatUser(u, age, risk), nil
	case HiddenForward:
		i.logger.DebugContext(ctx, "Classified hidden forward")
		return FormatHidden(ev.SenderName), nil
	default:
		return "", ErrNoForwardEvidence
	}
}
