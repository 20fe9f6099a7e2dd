package host

import (
	"context"
	"strings"
)

// ParamType is the type of a script function parameter.
type ParamType int

const (
	ParamString ParamType = iota
	ParamInt
	ParamFloat
	ParamObjectRef
	ParamActorValue
	ParamInventoryObject
)

// Param describes one parameter of a script function.
type Param struct {
	Name     string
	Type     ParamType
	Optional bool
}

// ExecuteFunc runs a command. line is the full command line as typed,
// including the command name.
type ExecuteFunc func(ctx context.Context, line string) error

// ScriptFunction is an entry of the host's command tables.
type ScriptFunction struct {
	Name       string
	ShortName  string
	HelpString string
	Output     uint16
	Params     []Param
	Execute    ExecuteFunc
}

// Matches returns true if name is the function's long or short name,
// ignoring case.
func (s *ScriptFunction) Matches(name string) bool {
	if strings.EqualFold(s.Name, name) {
		return true
	}
	return s.ShortName != "" && strings.EqualFold(s.ShortName, name)
}

type functionSeed struct {
	name      string
	shortName string
	help      string
	params    []Param
}

// consoleFunctionSeeds are the console commands the host ships with.
var consoleFunctionSeeds = []functionSeed{
	{name: "Show", help: "Show global variable", params: []Param{{Name: "Global", Type: ParamString}}},
	{name: "ShowVars", shortName: "SV", help: "Show variables on object"},
	{name: "ToggleGodMode", shortName: "TGM", help: "Toggle god mode"},
	{name: "ToggleCollision", shortName: "TCL", help: "Toggle collision"},
	{name: "ToggleAI", shortName: "TAI", help: "Toggle AI"},
	{name: "CenterOnCell", shortName: "COC", help: "Move to a cell", params: []Param{{Name: "Cell", Type: ParamString}}},
	{name: "CompleteAllObjectives", shortName: "CAO", help: "Complete all objectives for a quest", params: []Param{{Name: "Quest", Type: ParamString}}},
	{name: "ShowQuestTargets", shortName: "SQT", help: "Show quest targets"},
	{name: "DumpNiUpdates", help: "Dump NiUpdate statistics"},
	{name: "CollisionMesh", help: "Toggle collision mesh display", params: []Param{{Name: "Integer", Type: ParamInt, Optional: true}}},
	{name: "ClearAchievement", help: "Clear an achievement"},
	{name: "Help", help: "Show help", params: []Param{
		{Name: "String", Type: ParamString, Optional: true},
		{Name: "Integer", Type: ParamInt, Optional: true},
		{Name: "String", Type: ParamString, Optional: true},
	}},
	{name: "QuitGame", shortName: "QQQ", help: "Quit the game"},
}

// scriptFunctionSeeds are the script functions the host ships with.
var scriptFunctionSeeds = []functionSeed{
	{name: "GetActorValue", shortName: "GetAV", params: []Param{{Name: "Actor Value", Type: ParamActorValue}}},
	{name: "SetActorValue", shortName: "SetAV", params: []Param{{Name: "Actor Value", Type: ParamActorValue}, {Name: "Float", Type: ParamFloat}}},
	{name: "ModActorValue", shortName: "ModAV", params: []Param{{Name: "Actor Value", Type: ParamActorValue}, {Name: "Float", Type: ParamFloat}}},
	{name: "AddItem", params: []Param{{Name: "Item", Type: ParamInventoryObject}, {Name: "Count", Type: ParamInt}}},
	{name: "RemoveItem", params: []Param{{Name: "Item", Type: ParamInventoryObject}, {Name: "Count", Type: ParamInt}}},
	{name: "GetGlobalValue", params: []Param{{Name: "Global", Type: ParamString}}},
	{name: "Disable"},
	{name: "Enable"},
	{name: "MoveTo", params: []Param{{Name: "Reference", Type: ParamObjectRef}}},
	{name: "PlaceAtMe", params: []Param{{Name: "Object", Type: ParamInventoryObject}}},
	{name: "GetItemCount", params: []Param{{Name: "Item", Type: ParamInventoryObject}}},
}

func (seed functionSeed) build(p *Process, opcode uint16) *ScriptFunction {
	name := seed.name
	return &ScriptFunction{
		Name:       seed.name,
		ShortName:  seed.shortName,
		HelpString: seed.help,
		Output:     opcode,
		Params:     append([]Param(nil), seed.params...),
		Execute: func(ctx context.Context, line string) error {
			p.Transcript.Print(name + " >> not available in this build")
			return nil
		},
	}
}
