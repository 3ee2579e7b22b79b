package tasks

import (
	"context"

	"github.com/edgard/forwardinfo/internal/config"
	"github.com/edgard/forwardinfo/internal/telegram"
)

// newCommandsSyncTask re-publishes the command menu, restoring it when it was
// changed outside the bot, e.g. through BotFather.
func newCommandsSyncTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", config.TaskCommandsSync)

	return func(ctx context.Context) error {
		cmds := deps.Config.BotCommands()
		if err := telegram.PublishCommands(ctx, deps.API, cmds); err != nil {
			return err
		}
		log.DebugContext(ctx, "Published bot commands", "count", len(cmds))
		return nil
	}
}
