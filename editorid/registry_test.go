package editorid

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zond/consoleutil/host"
)

func installed(t *testing.T) (*host.Process, *Registry) {
	t.Helper()
	p := host.NewProcess()
	r := NewRegistry(NewCache())
	r.Install(p)
	return p, r
}

func lookup(t *testing.T, c *Cache, id host.FormID) (string, bool) {
	t.Helper()
	a := c.Access()
	defer a.Release()
	return a.Find(id)
}

func TestInstallHooksEveryClass(t *testing.T) {
	p, r := installed(t)
	if got := len(r.Installed()); got != len(Classes) {
		t.Errorf("hooked %d classes, want %d", got, len(Classes))
	}
	for idx, name := range Classes {
		id := host.FormID(0x1000 + idx)
		if _, err := p.Load(name, id, "", "Edid"+name); err != nil {
			t.Fatal(err)
		}
		if got, found := lookup(t, r.Cache(), id); !found || got != "Edid"+name {
			t.Errorf("%s: Find(%v) = %q, %v", name, id, got, found)
		}
	}
}

type call struct {
	Form     host.FormID
	EditorID string
}

// recordingOriginal binds an original routine to class that records its
// calls and returns result.
func recordingOriginal(t *testing.T, p *host.Process, class string, result bool) *[]call {
	t.Helper()
	c, found := p.Class(class)
	if !found {
		t.Fatalf("no class %q", class)
	}
	calls := &[]call{}
	c.VTable.Write(host.SlotSetFormEditorID, host.SetEditorIDFunc(func(f *host.Form, editorID string) bool {
		id := host.FormID(0)
		if f != nil {
			id = f.ID()
		}
		*calls = append(*calls, call{Form: id, EditorID: editorID})
		return result
	}))
	return calls
}

func TestHookForwardsToOriginal(t *testing.T) {
	p := host.NewProcess()
	calls := recordingOriginal(t, p, "TESObjectWEAP", false)
	r := NewRegistry(NewCache())
	r.Install(p)

	c, _ := p.Class("TESObjectWEAP")
	form := host.NewForm(c, 0x4D00C, "10mm Pistol")
	if form.SetEditorID("10mm") {
		t.Error("hook should return the original's result")
	}
	if diff := cmp.Diff([]call{{Form: 0x4D00C, EditorID: "10mm"}}, *calls); diff != "" {
		t.Errorf("unexpected original calls (-want +got):\n%s", diff)
	}
	if got, found := lookup(t, r.Cache(), 0x4D00C); !found || got != "10mm" {
		t.Errorf("Find = %q, %v", got, found)
	}
	if _, found := r.Original("TESObjectWEAP"); !found {
		t.Error("original not remembered")
	}
}

func TestCreatedFormsAreNotCached(t *testing.T) {
	p := host.NewProcess()
	calls := recordingOriginal(t, p, "TESObjectMISC", true)
	r := NewRegistry(NewCache())
	r.Install(p)

	form, err := p.Create("TESObjectMISC", "Scrap", "WorkshopScrap")
	if err != nil {
		t.Fatal(err)
	}
	if _, found := lookup(t, r.Cache(), form.ID()); found {
		t.Error("editor ID of a form under construction was cached")
	}
	if diff := cmp.Diff([]call{{Form: form.ID(), EditorID: "WorkshopScrap"}}, *calls); diff != "" {
		t.Errorf("unexpected original calls (-want +got):\n%s", diff)
	}
}

func TestAbsentArgumentsAreNotCached(t *testing.T) {
	p := host.NewProcess()
	calls := recordingOriginal(t, p, "TESQuest", true)
	r := NewRegistry(NewCache())
	r.Install(p)

	c, _ := p.Class("TESQuest")
	hooked := c.VTable.Func(host.SlotSetFormEditorID).(host.SetEditorIDFunc)
	if !hooked(nil, "Orphan") {
		t.Error("nil form should still forward")
	}
	if !hooked(host.NewForm(c, 0x1BBC2, ""), "") {
		t.Error("empty editor ID should still forward")
	}
	if diff := cmp.Diff([]call{{EditorID: "Orphan"}, {Form: 0x1BBC2}}, *calls); diff != "" {
		t.Errorf("unexpected original calls (-want +got):\n%s", diff)
	}
	r.Cache().With(func(a *Accessor) {
		if a.Len() != 0 {
			t.Errorf("got %d cache entries, want 0", a.Len())
		}
	})
}

func TestInstallTwiceIsIgnored(t *testing.T) {
	p := host.NewProcess()
	calls := recordingOriginal(t, p, "TESNPC", true)
	r := NewRegistry(NewCache())
	r.Install(p)
	r.Install(p)
	if _, err := p.Load("TESNPC", 0x1D3B4, "Dogmeat", "Dogmeat"); err != nil {
		t.Fatal(err)
	}
	if len(*calls) != 1 {
		t.Errorf("original called %d times, want 1", len(*calls))
	}
}

type hidingLookup struct {
	*host.Process
	hidden string
}

func (h hidingLookup) Class(name string) (*host.Class, bool) {
	if name == h.hidden {
		return nil, false
	}
	return h.Process.Class(name)
}

func expectFail(t *testing.T, substr string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a fatal report")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("got %q, want it to mention %q", msg, substr)
		}
	}()
	f()
}

func TestInstallFailsOnMissingClass(t *testing.T) {
	r := NewRegistry(NewCache())
	expectFail(t, "TESObjectWEAP", func() {
		r.Install(hidingLookup{Process: host.NewProcess(), hidden: "TESObjectWEAP"})
	})
}

func TestInstallFailsOnUnboundSlot(t *testing.T) {
	p := host.NewProcess()
	c, _ := p.Class("BGSGodRays")
	c.VTable.Write(host.SlotSetFormEditorID, nil)
	r := NewRegistry(NewCache())
	expectFail(t, "BGSGodRays", func() {
		r.Install(p)
	})
}
