package console

import "context"

var crashToDesktopCommand = command{
	legacy:    "CollisionMesh",
	name:      "CrashToDesktop",
	shortName: "CTD",
	help:      `"CrashToDesktop" | "CTD"`,
	execute:   (*Console).crashToDesktop,
}

// crashToDesktop nulls the player handle on the main thread, which the
// host treats as fatal on its next frame.
func (c *Console) crashToDesktop(_ context.Context, _ string) error {
	c.host.AddTask(c.host.InvalidatePlayer)
	return nil
}
