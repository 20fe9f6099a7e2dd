package console

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/zond/consoleutil/editorid"
	"github.com/zond/consoleutil/host"
)

func setup(t *testing.T) (*host.Process, *editorid.Cache) {
	t.Helper()
	p := host.NewProcess()
	r := editorid.NewRegistry(editorid.NewCache())
	r.Install(p)
	New(p, r.Cache()).Install()
	return p, r.Cache()
}

func run(t *testing.T, p *host.Process, line string) []string {
	t.Helper()
	p.Transcript.Clear()
	if err := p.Run(context.Background(), line); err != nil {
		t.Fatalf("Run(%q): %v", line, err)
	}
	return p.Transcript.Lines()
}

func load(t *testing.T, p *host.Process, class string, id host.FormID, fullName, editorID string) {
	t.Helper()
	if _, err := p.Load(class, id, fullName, editorID); err != nil {
		t.Fatal(err)
	}
}

func TestInstallRenamesLegacyEntries(t *testing.T) {
	p, _ := setup(t)
	for _, tt := range []struct {
		name   string
		short  string
		legacy string
	}{
		{"Clear", "", "DumpNiUpdates"},
		{"CrashToDesktop", "CTD", "CollisionMesh"},
		{"ClearAchievement", "", ""},
		{"Help", "", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			fn := findFunction(p.ConsoleFunctions(), tt.name)
			if fn == nil {
				t.Fatalf("%s not installed", tt.name)
			}
			if fn.ShortName != tt.short {
				t.Errorf("short name %q, want %q", fn.ShortName, tt.short)
			}
			if tt.legacy != "" && findFunction(p.ConsoleFunctions(), tt.legacy) != nil {
				t.Errorf("%s still present", tt.legacy)
			}
		})
	}
	if diff := cmp.Diff([]host.Param{{Name: "Integer", Type: host.ParamInt}}, findFunction(p.ConsoleFunctions(), "ClearAchievement").Params); diff != "" {
		t.Errorf("unexpected ClearAchievement params (-want +got):\n%s", diff)
	}
}

func TestInstallFailsWithoutLegacyEntry(t *testing.T) {
	p := host.NewProcess()
	findFunction(p.ConsoleFunctions(), "CollisionMesh").Name = "Renamed"
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a fatal report")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "CollisionMesh") {
			t.Errorf("got %q", msg)
		}
	}()
	New(p, editorid.NewCache()).Install()
}

func TestClear(t *testing.T) {
	p, _ := setup(t)
	p.Print("old line")
	if err := p.Run(context.Background(), "clear"); err != nil {
		t.Fatal(err)
	}
	if len(p.Transcript.Lines()) == 0 {
		t.Fatal("transcript cleared before the UI task ran")
	}
	p.Tick()
	if lines := p.Transcript.Lines(); len(lines) != 0 {
		t.Errorf("transcript still holds %q", lines)
	}
}

func TestCrashToDesktop(t *testing.T) {
	p, _ := setup(t)
	run(t, p, "CTD")
	if p.Player() == nil {
		t.Fatal("player invalidated before the main task ran")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected the next frame to crash")
		}
	}()
	p.Tick()
}

func TestClearAchievement(t *testing.T) {
	for _, tt := range []struct {
		name       string
		line       string
		modsLoaded bool
		output     []string
		unlocked   bool
	}{
		{"clears", "ClearAchievement 12", false, nil, false},
		{"disabled", "ClearAchievement 12", true, []string{achievementsDisabled}, true},
		{"not a number", "ClearAchievement twelve", false, []string{"<id> must be an integer"}, true},
		{"missing", "ClearAchievement", false, []string{`"ClearAchievement" <id>`, "\t<id> ::= <integer>"}, true},
		{"unbalanced quote", `ClearAchievement "12`, false, []string{`"ClearAchievement" <id>`, "\t<id> ::= <integer>"}, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := setup(t)
			p.UnlockAward(12)
			p.SetModsLoaded(tt.modsLoaded)
			got := run(t, p, tt.line)
			if diff := cmp.Diff(tt.output, got); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
			if p.AwardUnlocked(12) != tt.unlocked {
				t.Errorf("AwardUnlocked(12) = %v, want %v", p.AwardUnlocked(12), tt.unlocked)
			}
		})
	}
}

func TestHelpWithoutArguments(t *testing.T) {
	p, _ := setup(t)
	got := run(t, p, "help")
	if diff := cmp.Diff(strings.Split(helpUsage, "\n"), got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestHelpValidation(t *testing.T) {
	for _, tt := range []struct {
		line string
		want string
	}{
		{"Help foo 5", "<filter> must be one of 0, 1, 2, 3, or 4"},
		{"Help foo -1", "<filter> must be one of 0, 1, 2, 3, or 4"},
		{"Help foo x", "<filter> must be one of 0, 1, 2, 3, or 4"},
		{"Help foo 4 WEA", "<form-type> must be 4 characters long"},
		{"Help foo 4 WEAPS", "<form-type> must be 4 characters long"},
		{"Help foo 4 XXXX", "<form-type> must be a valid form type"},
	} {
		t.Run(tt.line, func(t *testing.T) {
			p, _ := setup(t)
			load(t, p, "TESObjectWEAP", 0x100, "Foo", "Foo")
			if diff := cmp.Diff([]string{tt.want}, run(t, p, tt.line)); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHelpListsAllFunctions(t *testing.T) {
	p, _ := setup(t)
	got := run(t, p, `Help "" 1`)
	if len(got) == 0 || got[0] != "----CONSOLE COMMANDS--------------------" {
		t.Fatalf("unexpected first line in %q", got)
	}
	want := []string{
		`CrashToDesktop (CTD) -> "CrashToDesktop" | "CTD"`,
		`Clear -> "Clear"`,
		"ToggleGodMode (TGM) -> Toggle god mode",
		"----SCRIPT FUNCTIONS--------------------",
		"GetActorValue (GetAV)",
		"Disable",
	}
	for _, line := range want {
		if !contains(got, line) {
			t.Errorf("missing %q", line)
		}
	}
	for _, line := range got {
		if strings.HasPrefix(line, "----SETTINGS") || strings.HasPrefix(line, "----FORMS") {
			t.Errorf("unexpected section %q", line)
		}
	}
}

func contains(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}

func TestHelpMatchesFunctions(t *testing.T) {
	p, _ := setup(t)
	got := run(t, p, "Help toggle 1")
	want := []string{
		"----CONSOLE COMMANDS--------------------",
		"ToggleGodMode (TGM) -> Toggle god mode",
		"ToggleCollision (TCL) -> Toggle collision",
		"ToggleAI (TAI) -> Toggle AI",
		"----SCRIPT FUNCTIONS--------------------",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestHelpSettings(t *testing.T) {
	p, _ := setup(t)
	p.AddSettings(&host.SettingCollection{
		Name: "test",
		Settings: []*host.Setting{
			{Name: "fZoomSpeed", Value: float32(1.5)},
			{Name: "bZoomEnabled", Value: true},
			{Name: "iZoomSteps", Value: int32(-3)},
			{Name: "uZoomLimit", Value: uint32(7)},
			{Name: "cZoomKey", Value: int8(0x1F)},
			{Name: "hZoomMask", Value: uint8(0xAB)},
			{Name: "sZoomLabel", Value: "wide"},
			{Name: "rZoomTint", Value: [3]uint8{1, 2, 3}},
			{Name: "aZoomTint", Value: [4]uint8{1, 2, 3, 4}},
			{Name: "xZoomOdd", Value: 1},
			{Name: "fUnrelated", Value: float32(2)},
		},
	})
	got := run(t, p, "Help zoom 2")
	want := []string{
		"----SETTINGS----------------------------",
		"aZoomTint = (1, 2, 3, 4)",
		"bZoomEnabled = true",
		"cZoomKey = 0x1F",
		"fZoomSpeed = 1.50",
		"hZoomMask = 0xAB",
		"iZoomSteps = -3",
		"rZoomTint = (1, 2, 3)",
		"sZoomLabel = wide",
		"uZoomLimit = 7",
		"xZoomOdd = <UNKNOWN>",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestHelpGlobals(t *testing.T) {
	p, _ := setup(t)
	for _, g := range []struct {
		id       host.FormID
		editorID string
		value    float32
	}{
		{0x39, "GameHour", 9.5},
		{0x35, "GameYear", 2287},
		{0x3A, "TimeScale", 20},
		{0x50, "", 3},
	} {
		if _, err := p.LoadGlobal(g.id, g.editorID, g.value); err != nil {
			t.Fatal(err)
		}
	}
	got := run(t, p, "Help game 3")
	want := []string{
		"----GLOBAL VARIABLES--------------------",
		"GameYear = 2287.00",
		"GameHour = 9.50",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	got = run(t, p, `Help "" 3`)
	want = []string{
		"----GLOBAL VARIABLES--------------------",
		"GameYear = 2287.00",
		"GameHour = 9.50",
		"TimeScale = 20.00",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output for all globals (-want +got):\n%s", diff)
	}
}

// cacheCheckingWriter records whether the cache was locked while a line
// was written.
type cacheCheckingWriter struct {
	cache  *editorid.Cache
	lines  int
	locked int
}

func (w *cacheCheckingWriter) Write(b []byte) (int, error) {
	w.lines++
	done := make(chan struct{})
	go func() {
		w.cache.Access().Release()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		w.locked++
		<-done
	}
	return len(b), nil
}

func TestHelpPrintsWithoutHoldingCache(t *testing.T) {
	p, cache := setup(t)
	load(t, p, "TESObjectWEAP", 0x4D00C, "10mm Pistol", "10mm")
	if _, err := p.LoadGlobal(0x38, "GameHour", 9.5); err != nil {
		t.Fatal(err)
	}
	w := &cacheCheckingWriter{cache: cache}
	p.Transcript.Attach(w)
	defer p.Transcript.Detach(w)
	for _, line := range []string{"Help gamehour 3", "Help pistol 4"} {
		w.lines, w.locked = 0, 0
		run(t, p, line)
		if w.lines != 2 {
			t.Errorf("%s: wrote %d lines, want 2", line, w.lines)
		}
		if w.locked != 0 {
			t.Errorf("%s: cache locked during %d writes", line, w.locked)
		}
	}
}

func TestHelpFormsSortByTypeThenID(t *testing.T) {
	p, _ := setup(t)
	load(t, p, "TESObjectARMO", 5, "", "SortA5")
	load(t, p, "TESObjectARMO", 3, "Sorted Armor", "SortA3")
	load(t, p, "TESObjectARMO", 9, "", "SortA9")
	load(t, p, "TESObjectWEAP", 1, "", "SortB1")
	load(t, p, "TESObjectWEAP", 2, "Unrelated", "Other")

	got := run(t, p, "Help sort 4")
	want := []string{
		"----FORMS-------------------------------",
		`ARMO 00000003 SortA3 "Sorted Armor"`,
		"ARMO 00000005 SortA5",
		"ARMO 00000009 SortA9",
		"WEAP 00000001 SortB1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	got = run(t, p, "Help sort 4 weap")
	want = []string{
		"----FORMS-------------------------------",
		"WEAP 00000001 SortB1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected restricted output (-want +got):\n%s", diff)
	}
}

func TestHelpFormsMatchFullName(t *testing.T) {
	p, _ := setup(t)
	load(t, p, "TESObjectWEAP", 0x4D00C, "10mm Pistol", "")
	got := run(t, p, "Help pistol 4")
	want := []string{
		"----FORMS-------------------------------",
		`WEAP 0004D00C "10mm Pistol"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestSplitArgs(t *testing.T) {
	for _, tt := range []struct {
		line string
		want []string
	}{
		{`Help "" 1`, []string{"Help", "", "1"}},
		{`Help 'laser musket' 4`, []string{"Help", "laser musket", "4"}},
		{`Help laser\ musket`, []string{"Help", "laser musket"}},
		{"  Help\t x  ", []string{"Help", "x"}},
		{"", nil},
	} {
		t.Run(tt.line, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, splitArgs(tt.line)); diff != "" {
				t.Errorf("unexpected words (-want +got):\n%s", diff)
			}
		})
	}
}
