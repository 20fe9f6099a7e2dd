// Package console replaces entries of the host's console command table
// with new commands: Clear, CrashToDesktop, ClearAchievement and an
// extended Help.
package console

import (
	"context"
	"log"
	"strings"

	"github.com/zond/consoleutil"
	"github.com/zond/consoleutil/editorid"
	"github.com/zond/consoleutil/formtype"
	"github.com/zond/consoleutil/host"
	"github.com/zond/consoleutil/lang"
)

// Host is what the commands need from the host process.
type Host interface {
	ConsoleFunctions() []*host.ScriptFunction
	ScriptFunctions() []*host.ScriptFunction
	Print(s string)

	AddTask(f func())
	AddUITask(f func())
	ClearHistory()
	InvalidatePlayer()

	ModsLoaded() bool
	ClearAward(id int32)

	Forms() []*host.Form
	Globals() []*host.Global
	Settings() []*host.Setting
}

// Console holds the state the commands share.
type Console struct {
	host  Host
	cache *editorid.Cache
	forms *formtype.NameTable
}

func New(h Host, cache *editorid.Cache) *Console {
	return &Console{
		host:  h,
		cache: cache,
		forms: formtype.Table(),
	}
}

// command describes a replacement for a legacy console function.
type command struct {
	// legacy is the name of the host entry being repurposed.
	legacy    string
	name      string
	shortName string
	help      string
	// params replaces the legacy parameter list when non nil.
	params  []host.Param
	execute func(c *Console, ctx context.Context, line string) error
}

func (c *Console) commands() []command {
	return []command{
		clearCommand,
		crashToDesktopCommand,
		clearAchievementCommand,
		helpCommand,
	}
}

// Install patches every command into the host's console table. A legacy
// entry missing from the table means the host build is incompatible,
// which is fatal.
func (c *Console) Install() {
	cmds := c.commands()
	for _, cmd := range cmds {
		c.install(cmd)
	}
	log.Printf("installed %s", lang.Card(len(cmds), "console command"))
}

func (c *Console) install(cmd command) {
	fn := findFunction(c.host.ConsoleFunctions(), cmd.legacy)
	if fn == nil {
		consoleutil.Fail("failed to find console function %q to install %s", cmd.legacy, cmd.name)
	}
	fn.Name = cmd.name
	fn.ShortName = cmd.shortName
	fn.HelpString = cmd.help
	if cmd.params != nil {
		fn.Params = cmd.params
	}
	fn.Execute = func(ctx context.Context, line string) error {
		return cmd.execute(c, ctx, line)
	}
	log.Printf("installed %s", cmd.name)
}

func findFunction(functions []*host.ScriptFunction, name string) *host.ScriptFunction {
	for _, fn := range functions {
		if strings.EqualFold(fn.Name, name) {
			return fn
		}
	}
	return nil
}

func (c *Console) print(s string) {
	c.host.Print(s)
}

// Install creates a Console for h and installs its commands.
func Install(h Host, cache *editorid.Cache) *Console {
	c := New(h, cache)
	c.Install()
	return c
}
