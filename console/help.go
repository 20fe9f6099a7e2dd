package console

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zond/consoleutil/editorid"
	"github.com/zond/consoleutil/formtype"
	"github.com/zond/consoleutil/fuzzy"
	"github.com/zond/consoleutil/host"
	"github.com/zond/consoleutil/lang"
)

const (
	headerWidth = 40
)

type filter int

const (
	filterAll filter = iota
	filterFunctions
	filterSettings
	filterGlobals
	filterForms
	filterCount
)

var (
	filterMessage = fmt.Sprintf("<filter> must be one of %s", filterChoices())

	formTypeLengthMessage = "<form-type> must be 4 characters long"
	formTypeValidMessage  = "<form-type> must be a valid form type"
)

func filterChoices() string {
	choices := make([]string, filterCount)
	for i := range choices {
		choices[i] = strconv.Itoa(i)
	}
	return lang.Enumerator{Operator: "or"}.Do(choices...)
}

const helpUsage = `"Help" [<matchstring>] [<filter>] [<form-type>]
	<matchstring> ::= <string> ; the string to filter results with
	<filter> ::= <integer>
		; 0 - all
		; 1 - functions
		; 2 - settings
		; 3 - globals
		; 4 - forms
	<form-type> ::= <string> ; the form type to filter form results with`

var helpCommand = command{
	legacy:  "Help",
	name:    "Help",
	help:    helpUsage,
	execute: (*Console).help,
}

func (c *Console) help(ctx context.Context, line string) error {
	args := splitArgs(line)
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) == 0 {
		c.print(helpUsage)
		return nil
	}

	match := fuzzy.Fold(args[0])

	which := filterAll
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 || n >= int(filterCount) {
			c.print(filterMessage)
			return nil
		}
		which = filter(n)
	}

	var restrict *formtype.FormType
	if len(args) > 2 {
		code := strings.ToUpper(args[2])
		if len(code) != 4 {
			c.print(formTypeLengthMessage)
			return nil
		}
		ft, found := c.forms.Find(code)
		if !found {
			c.print(formTypeValidMessage)
			return nil
		}
		restrict = &ft
	}

	if which == filterAll || which == filterFunctions {
		if err := c.enumerateFunctions(ctx, match); err != nil {
			return err
		}
	}
	if which == filterAll || which == filterSettings {
		if err := c.enumerateSettings(ctx, match); err != nil {
			return err
		}
	}
	if which == filterAll || which == filterGlobals {
		if err := c.enumerateGlobals(ctx, match); err != nil {
			return err
		}
	}
	if which == filterAll || which == filterForms {
		if err := c.enumerateForms(ctx, match, restrict); err != nil {
			return err
		}
	}
	return nil
}

func header(title string) string {
	s := "----" + title
	if pad := headerWidth - len(s); pad > 0 {
		s += strings.Repeat("-", pad)
	}
	return s
}

func functionHaystacks(fn *host.ScriptFunction) []string {
	return []string{fn.Name, fn.ShortName}
}

func formatFunction(fn *host.ScriptFunction) string {
	buf := &strings.Builder{}
	buf.WriteString(fn.Name)
	if fn.ShortName != "" {
		fmt.Fprintf(buf, " (%s)", fn.ShortName)
	}
	if fn.HelpString != "" {
		fmt.Fprintf(buf, " -> %s", fn.HelpString)
	}
	return buf.String()
}

func (c *Console) enumerateFunctions(ctx context.Context, match string) error {
	for _, table := range []struct {
		title     string
		functions []*host.ScriptFunction
	}{
		{"CONSOLE COMMANDS", c.host.ConsoleFunctions()},
		{"SCRIPT FUNCTIONS", c.host.ScriptFunctions()},
	} {
		matches, err := fuzzy.Enumerate(ctx, match, table.functions, functionHaystacks)
		if err != nil {
			return err
		}
		c.print(header(table.title))
		for _, fn := range matches {
			c.print(formatFunction(fn))
		}
	}
	return nil
}

func formatSetting(s *host.Setting) string {
	value := "<UNKNOWN>"
	switch v := s.Value.(type) {
	case bool:
		if s.Kind() == host.SettingBinary {
			value = strconv.FormatBool(v)
		}
	case int8:
		if s.Kind() == host.SettingChar {
			value = fmt.Sprintf("0x%02X", uint8(v))
		}
	case uint8:
		if s.Kind() == host.SettingUChar {
			value = fmt.Sprintf("0x%02X", v)
		}
	case int32:
		if s.Kind() == host.SettingInt {
			value = strconv.FormatInt(int64(v), 10)
		}
	case uint32:
		if s.Kind() == host.SettingUInt {
			value = strconv.FormatUint(uint64(v), 10)
		}
	case float32:
		if s.Kind() == host.SettingFloat {
			value = fmt.Sprintf("%.2f", v)
		}
	case string:
		if s.Kind() == host.SettingString {
			value = v
		}
	case [3]uint8:
		if s.Kind() == host.SettingRGB {
			value = fmt.Sprintf("(%d, %d, %d)", v[0], v[1], v[2])
		}
	case [4]uint8:
		if s.Kind() == host.SettingRGBA {
			value = fmt.Sprintf("(%d, %d, %d, %d)", v[0], v[1], v[2], v[3])
		}
	}
	return fmt.Sprintf("%s = %s", s.Name, value)
}

func (c *Console) enumerateSettings(ctx context.Context, match string) error {
	matches, err := fuzzy.Enumerate(ctx, match, c.host.Settings(), func(s *host.Setting) []string {
		return []string{s.Name}
	})
	if err != nil {
		return err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
	})
	c.print(header("SETTINGS"))
	for _, s := range matches {
		c.print(formatSetting(s))
	}
	return nil
}

// named pairs a record with the editor ID cached for it when the snapshot
// was taken.
type named[T any] struct {
	value    T
	editorID string
}

func (c *Console) enumerateGlobals(ctx context.Context, match string) error {
	globals := c.host.Globals()
	candidates := make([]named[*host.Global], 0, len(globals))
	c.cache.With(func(a *editorid.Accessor) {
		for _, g := range globals {
			if editorID, found := a.Find(g.ID()); found {
				candidates = append(candidates, named[*host.Global]{value: g, editorID: editorID})
			}
		}
	})
	matches, err := fuzzy.Enumerate(ctx, match, candidates, func(n named[*host.Global]) []string {
		return []string{n.editorID}
	})
	if err != nil {
		return err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].value.ID() < matches[j].value.ID()
	})
	c.print(header("GLOBAL VARIABLES"))
	for _, n := range matches {
		c.print(fmt.Sprintf("%s = %.2f", n.editorID, n.value.Value))
	}
	return nil
}

func (c *Console) formatForm(n named[*host.Form]) string {
	buf := &strings.Builder{}
	code, _ := c.forms.Code(n.value.Type())
	fmt.Fprintf(buf, "%s %s", code, n.value.ID())
	if n.editorID != "" {
		fmt.Fprintf(buf, " %s", n.editorID)
	}
	if name := n.value.FullName(); name != "" {
		fmt.Fprintf(buf, " %q", name)
	}
	return buf.String()
}

func (c *Console) enumerateForms(ctx context.Context, match string, restrict *formtype.FormType) error {
	forms := c.host.Forms()
	candidates := make([]named[*host.Form], 0, len(forms))
	c.cache.With(func(a *editorid.Accessor) {
		for _, f := range forms {
			if restrict != nil && f.Type() != *restrict {
				continue
			}
			editorID, _ := a.Find(f.ID())
			candidates = append(candidates, named[*host.Form]{value: f, editorID: editorID})
		}
	})
	matches, err := fuzzy.Enumerate(ctx, match, candidates, func(n named[*host.Form]) []string {
		return []string{n.editorID, n.value.FullName()}
	})
	if err != nil {
		return err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].value.Type() != matches[j].value.Type() {
			return matches[i].value.Type() < matches[j].value.Type()
		}
		return matches[i].value.ID() < matches[j].value.ID()
	})
	c.print(header("FORMS"))
	for _, n := range matches {
		c.print(c.formatForm(n))
	}
	return nil
}
