package editorid

import (
	"log"
	"sort"
	"sync"

	"github.com/zond/consoleutil"
	"github.com/zond/consoleutil/host"
	"github.com/zond/consoleutil/lang"
)

// ClassLookup finds host form classes by name.
type ClassLookup interface {
	Class(name string) (*host.Class, bool)
}

// Registry installs the editor ID hooks and remembers the routines they
// replaced.
type Registry struct {
	cache *Cache

	mu        sync.Mutex
	originals map[string]host.SetEditorIDFunc
}

func NewRegistry(cache *Cache) *Registry {
	return &Registry{
		cache: cache,
	}
}

// Cache returns the cache the hooks record into.
func (r *Registry) Cache() *Cache {
	return r.cache
}

// Install hooks the editor ID routine of every class in Classes.
//
// It must run once, during host startup, before the host can assign editor
// IDs from other goroutines. Later calls are ignored. A class missing from
// the host, or a slot not bound to an editor ID routine, is fatal.
func (r *Registry) Install(classes ClassLookup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.originals != nil {
		log.Printf("editor ID hooks already installed, ignoring")
		return
	}
	originals := make(map[string]host.SetEditorIDFunc, len(Classes))
	for _, name := range Classes {
		class, found := classes.Class(name)
		if !found {
			consoleutil.Fail("form class %q not found in host", name)
		}
		original, ok := class.VTable.Func(host.SlotSetFormEditorID).(host.SetEditorIDFunc)
		if !ok {
			consoleutil.Fail("form class %q has no editor ID routine at slot %#x", name, host.SlotSetFormEditorID)
		}
		class.VTable.Write(host.SlotSetFormEditorID, r.hook(original))
		originals[name] = original
	}
	r.originals = originals
	log.Printf("installed editor ID hooks on %s", lang.Card(len(originals), "class"))
}

// hook returns the routine bound in place of original. Identifiers
// assigned to forms still being created are not recorded.
func (r *Registry) hook(original host.SetEditorIDFunc) host.SetEditorIDFunc {
	return func(form *host.Form, editorID string) bool {
		if form != nil && !form.IsCreated() && editorID != "" {
			a := r.cache.Access()
			a.Insert(form.ID(), editorID)
			a.Release()
		}
		return original(form, editorID)
	}
}

// Installed returns the hooked class names, sorted.
func (r *Registry) Installed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]string, 0, len(r.originals))
	for name := range r.originals {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Original returns the routine the hook on class replaced.
func (r *Registry) Original(class string) (host.SetEditorIDFunc, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, found := r.originals[class]
	return fn, found
}
