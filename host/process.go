// Package host models the game process the console extension attaches to:
// its form classes and their dispatch tables, the loaded forms, the command
// tables, settings, achievements, task queues and the console transcript.
package host

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/zond/consoleutil"
	"github.com/zond/consoleutil/formtype"
)

const (
	consoleOpcodeBase = 0x100
	scriptOpcodeBase  = 0x1000
)

// Process is an in-memory host.
type Process struct {
	Transcript *Transcript

	classes          map[string]*Class
	consoleFunctions []*ScriptFunction
	scriptFunctions  []*ScriptFunction

	mu          sync.RWMutex
	forms       map[FormID]*Form
	byType      map[formtype.FormType][]*Form
	globals     []*Global
	settings    []*SettingCollection
	modsLoaded  bool
	awards      map[int32]bool
	player      *Form
	nextCreated uint32

	taskMu  sync.Mutex
	tasks   []func()
	uiTasks []func()
}

// NewProcess creates a host with every class of the Catalog, the stock
// command tables and a player character.
func NewProcess() *Process {
	p := &Process{
		Transcript: NewTranscript(),
		classes:    map[string]*Class{},
		forms:      map[FormID]*Form{},
		byType:     map[formtype.FormType][]*Form{},
		awards:     map[int32]bool{},
	}
	for _, info := range Catalog {
		p.classes[info.Name] = newClass(info)
	}
	for idx, seed := range consoleFunctionSeeds {
		p.consoleFunctions = append(p.consoleFunctions, seed.build(p, uint16(consoleOpcodeBase+idx)))
	}
	for idx, seed := range scriptFunctionSeeds {
		p.scriptFunctions = append(p.scriptFunctions, seed.build(p, uint16(scriptOpcodeBase+idx)))
	}
	p.player = NewForm(p.classes["PlayerCharacter"], 0x14, "Player")
	p.forms[p.player.ID()] = p.player
	p.byType[p.player.Type()] = append(p.byType[p.player.Type()], p.player)
	return p
}

// Class returns the class with the given name.
func (p *Process) Class(name string) (*Class, bool) {
	c, found := p.classes[name]
	return c, found
}

// ConsoleFunctions returns the console command table. Entries may be
// patched in place.
func (p *Process) ConsoleFunctions() []*ScriptFunction {
	return p.consoleFunctions
}

// ScriptFunctions returns the script function table.
func (p *Process) ScriptFunctions() []*ScriptFunction {
	return p.scriptFunctions
}

// Print appends s to the console transcript.
func (p *Process) Print(s string) {
	p.Transcript.Print(s)
}

// Load registers a form loaded from a plugin file and assigns its editor
// ID through the class dispatch table, the way the host's loader does.
func (p *Process) Load(className string, id FormID, fullName string, editorID string) (*Form, error) {
	c, found := p.classes[className]
	if !found {
		return nil, consoleutil.WithStack(fmt.Errorf("unknown form class %q", className))
	}
	form := NewForm(c, id, fullName)
	if err := p.register(form); err != nil {
		return nil, err
	}
	form.SetEditorID(editorID)
	return form, nil
}

// LoadGlobal registers a global variable.
func (p *Process) LoadGlobal(id FormID, editorID string, value float32) (*Global, error) {
	global := &Global{
		Form:  NewForm(p.classes["TESGlobal"], id, ""),
		Value: value,
	}
	if err := p.register(global.Form); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.globals = append(p.globals, global)
	p.mu.Unlock()
	global.SetEditorID(editorID)
	return global, nil
}

// Create makes a runtime form. Its identity is in the created range, and
// its editor ID is assigned while it's being constructed.
func (p *Process) Create(className string, fullName string, editorID string) (*Form, error) {
	c, found := p.classes[className]
	if !found {
		return nil, consoleutil.WithStack(fmt.Errorf("unknown form class %q", className))
	}
	p.mu.Lock()
	p.nextCreated++
	id := FormID(createdFormIDPrefix<<24 | p.nextCreated)
	p.mu.Unlock()
	form := NewForm(c, id, fullName)
	if err := p.register(form); err != nil {
		return nil, err
	}
	form.SetEditorID(editorID)
	return form, nil
}

func (p *Process) register(form *Form) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, found := p.forms[form.ID()]; found {
		return consoleutil.WithStack(fmt.Errorf("form %v already loaded", form.ID()))
	}
	p.forms[form.ID()] = form
	p.byType[form.Type()] = append(p.byType[form.Type()], form)
	return nil
}

// LookupForm returns the form with the given identity.
func (p *Process) LookupForm(id FormID) (*Form, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	form, found := p.forms[id]
	return form, found
}

// FormArray returns the loaded forms of type ft in load order.
func (p *Process) FormArray(ft formtype.FormType) []*Form {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*Form(nil), p.byType[ft]...)
}

// Forms returns every loaded form, ordered by identity.
func (p *Process) Forms() []*Form {
	p.mu.RLock()
	result := make([]*Form, 0, len(p.forms))
	for _, form := range p.forms {
		result = append(result, form)
	}
	p.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result
}

// Globals returns the global variables in load order.
func (p *Process) Globals() []*Global {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*Global(nil), p.globals...)
}

// AddSettings registers a settings collection.
func (p *Process) AddSettings(collection *SettingCollection) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = append(p.settings, collection)
}

// Settings returns every setting of every collection.
func (p *Process) Settings() []*Setting {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := []*Setting{}
	for _, collection := range p.settings {
		result = append(result, collection.Settings...)
	}
	return result
}

// SetModsLoaded marks the session as modded. Achievements are disabled in
// modded sessions.
func (p *Process) SetModsLoaded(loaded bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modsLoaded = loaded
}

// ModsLoaded returns true if achievements are disabled for the session.
func (p *Process) ModsLoaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modsLoaded
}

// UnlockAward marks an achievement as earned.
func (p *Process) UnlockAward(id int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.awards[id] = true
}

// ClearAward resets an achievement.
func (p *Process) ClearAward(id int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.awards, id)
}

// AwardUnlocked returns true if the achievement is earned.
func (p *Process) AwardUnlocked(id int32) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.awards[id]
}

// Player returns the player character, or nil once the handle has been
// invalidated.
func (p *Process) Player() *Form {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.player
}

// InvalidatePlayer nulls the player handle.
func (p *Process) InvalidatePlayer() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.player = nil
}

// ClearHistory empties the console menu.
func (p *Process) ClearHistory() {
	p.Transcript.Clear()
}

// AddTask queues f to run on the main thread during the next frame.
func (p *Process) AddTask(f func()) {
	p.taskMu.Lock()
	defer p.taskMu.Unlock()
	p.tasks = append(p.tasks, f)
}

// AddUITask queues f to run on the UI thread during the next frame.
func (p *Process) AddUITask(f func()) {
	p.taskMu.Lock()
	defer p.taskMu.Unlock()
	p.uiTasks = append(p.uiTasks, f)
}

// Tick runs one frame: the queued main thread tasks, the player update
// and the queued UI tasks. A null player handle is fatal, as it is in the
// real host.
func (p *Process) Tick() {
	p.taskMu.Lock()
	tasks, uiTasks := p.tasks, p.uiTasks
	p.tasks, p.uiTasks = nil, nil
	p.taskMu.Unlock()
	for _, task := range tasks {
		task()
	}
	if p.Player() == nil {
		log.Panicf("host: player character handle is null")
	}
	for _, task := range uiTasks {
		task()
	}
}

// Run executes a console command line. Console commands are searched
// before script functions.
func (p *Process) Run(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	for _, table := range [][]*ScriptFunction{p.consoleFunctions, p.scriptFunctions} {
		for _, fn := range table {
			if fn.Matches(name) {
				if fn.Execute == nil {
					return nil
				}
				return consoleutil.WithStack(fn.Execute(ctx, line))
			}
		}
	}
	p.Print(fmt.Sprintf("Script command %q not found.", name))
	return nil
}
