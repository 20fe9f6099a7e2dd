package host

import (
	"fmt"

	"github.com/zond/consoleutil/formtype"
)

const (
	// VTableSize is the number of virtual slots every form class exposes.
	VTableSize = 0x48
	// SlotSetFormEditorID is the slot bound to the editor ID assignment
	// routine. It is the same in every form class.
	SlotSetFormEditorID = 0x3B
)

// createdFormIDPrefix marks forms created at runtime rather than loaded
// from plugin files.
const createdFormIDPrefix = 0xFF

// FormID is the host's numeric identity of a form.
type FormID uint32

func (f FormID) String() string {
	return fmt.Sprintf("%08X", uint32(f))
}

// SetEditorIDFunc is the signature of the editor ID assignment routine.
// An empty editorID means the caller passed no identifier.
type SetEditorIDFunc func(form *Form, editorID string) bool

// VTable is a class's virtual dispatch table. Slots are bound during host
// startup, before any form is loaded, and are not synchronized.
type VTable struct {
	funcs [VTableSize]any
}

// Func returns the function bound to slot.
func (v *VTable) Func(slot int) any {
	return v.funcs[slot]
}

// Write binds fn to slot and returns the previous binding.
func (v *VTable) Write(slot int, fn any) any {
	previous := v.funcs[slot]
	v.funcs[slot] = fn
	return previous
}

// Class is a polymorphic form category.
type Class struct {
	Name   string
	Type   formtype.FormType
	VTable *VTable
}

func newClass(info ClassInfo) *Class {
	c := &Class{
		Name:   info.Name,
		Type:   info.Type,
		VTable: &VTable{},
	}
	c.VTable.Write(SlotSetFormEditorID, SetEditorIDFunc(discardEditorID))
	return c
}

// discardEditorID is the host's own assignment routine. Shipping builds
// drop editor IDs after load; the routine only reports whether there was
// a form to assign to.
func discardEditorID(form *Form, _ string) bool {
	return form != nil
}

// Form is a host object.
type Form struct {
	id       FormID
	class    *Class
	fullName string
}

// NewForm creates a form of class c. It is not registered with any process.
func NewForm(c *Class, id FormID, fullName string) *Form {
	return &Form{
		id:       id,
		class:    c,
		fullName: fullName,
	}
}

func (f *Form) ID() FormID {
	return f.id
}

func (f *Form) Class() *Class {
	return f.class
}

func (f *Form) Type() formtype.FormType {
	return f.class.Type
}

// FullName returns the display name, or "" if the form has none.
func (f *Form) FullName() string {
	return f.fullName
}

// IsCreated returns true for forms created at runtime. Their editor IDs
// are assigned while the form is still being set up.
func (f *Form) IsCreated() bool {
	return f.id>>24 == createdFormIDPrefix
}

// SetEditorID dispatches to the assignment routine bound in the form's
// class.
func (f *Form) SetEditorID(editorID string) bool {
	fn, ok := f.class.VTable.Func(SlotSetFormEditorID).(SetEditorIDFunc)
	if !ok {
		panic(fmt.Sprintf("host: %s has no editor ID routine", f.class.Name))
	}
	return fn(f, editorID)
}

// Global is a GLOB form holding a single number.
type Global struct {
	*Form
	Value float32
}
