package console

import "context"

var clearCommand = command{
	legacy:  "DumpNiUpdates",
	name:    "Clear",
	help:    `"Clear"`,
	execute: (*Console).clear,
}

func (c *Console) clear(_ context.Context, _ string) error {
	c.host.AddUITask(c.host.ClearHistory)
	return nil
}
