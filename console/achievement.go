package console

import (
	"context"
	"strconv"

	"github.com/buildkite/shellwords"
	"github.com/zond/consoleutil/host"
)

const (
	achievementsDisabled  = "Achievements are disabled on this save!"
	clearAchievementUsage = "\"ClearAchievement\" <id>\n\t<id> ::= <integer>"
)

var clearAchievementCommand = command{
	legacy: "ClearAchievement",
	name:   "ClearAchievement",
	help:   clearAchievementUsage,
	params: []host.Param{
		{Name: "Integer", Type: host.ParamInt},
	},
	execute: (*Console).clearAchievement,
}

func (c *Console) clearAchievement(_ context.Context, line string) error {
	parts, err := shellwords.SplitPosix(line)
	if err != nil || len(parts) != 2 {
		c.print(clearAchievementUsage)
		return nil
	}
	id, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		c.print("<id> must be an integer")
		return nil
	}
	if c.host.ModsLoaded() {
		c.print(achievementsDisabled)
		return nil
	}
	c.host.ClearAward(int32(id))
	return nil
}
