package host

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"

	"github.com/zond/consoleutil"

	goccy "github.com/goccy/go-json"
)

//go:embed world.json
var defaultWorld []byte

// World is the serialized content a host loads at startup.
type World struct {
	ModsLoaded bool            `json:"modsLoaded"`
	Awards     []int32         `json:"awards"`
	Forms      []WorldForm     `json:"forms"`
	Globals    []WorldGlobal   `json:"globals"`
	Settings   []WorldSettings `json:"settings"`
}

// WorldForm is a form record. IDs are hexadecimal strings.
type WorldForm struct {
	ID       string `json:"id"`
	Class    string `json:"class"`
	Name     string `json:"name"`
	EditorID string `json:"editorID"`
	// Created forms are made at runtime instead of being loaded; ID is
	// ignored for them.
	Created bool `json:"created"`
}

type WorldGlobal struct {
	ID       string  `json:"id"`
	EditorID string  `json:"editorID"`
	Value    float32 `json:"value"`
}

type WorldSettings struct {
	Collection string         `json:"collection"`
	Values     map[string]any `json:"values"`
}

func parseFormID(s string) (FormID, error) {
	id, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, consoleutil.WithStack(fmt.Errorf("invalid form ID %q: %w", s, err))
	}
	return FormID(id), nil
}

// SeedDefault loads the built-in world.
func (p *Process) SeedDefault() error {
	w := &World{}
	if err := goccy.Unmarshal(defaultWorld, w); err != nil {
		return consoleutil.WithStack(err)
	}
	return p.SeedWorld(w)
}

// Seed decodes a world from r and loads it.
func (p *Process) Seed(r io.Reader) error {
	w := &World{}
	if err := goccy.NewDecoder(r).Decode(w); err != nil {
		return consoleutil.WithStack(err)
	}
	return p.SeedWorld(w)
}

// SeedWorld loads w. Editor IDs are assigned through the class dispatch
// tables, so hooks installed beforehand observe them.
func (p *Process) SeedWorld(w *World) error {
	p.SetModsLoaded(w.ModsLoaded)
	for _, award := range w.Awards {
		p.UnlockAward(award)
	}
	for _, wf := range w.Forms {
		if wf.Created {
			if _, err := p.Create(wf.Class, wf.Name, wf.EditorID); err != nil {
				return err
			}
			continue
		}
		id, err := parseFormID(wf.ID)
		if err != nil {
			return err
		}
		if _, err := p.Load(wf.Class, id, wf.Name, wf.EditorID); err != nil {
			return err
		}
	}
	for _, wg := range w.Globals {
		id, err := parseFormID(wg.ID)
		if err != nil {
			return err
		}
		if _, err := p.LoadGlobal(id, wg.EditorID, wg.Value); err != nil {
			return err
		}
	}
	for _, ws := range w.Settings {
		collection := &SettingCollection{Name: ws.Collection}
		for name, raw := range ws.Values {
			setting := &Setting{Name: name}
			value, err := settingValue(setting.Kind(), raw)
			if err != nil {
				return consoleutil.WithStack(fmt.Errorf("setting %q: %w", name, err))
			}
			setting.Value = value
			collection.Settings = append(collection.Settings, setting)
		}
		p.AddSettings(collection)
	}
	return nil
}

// settingValue converts a decoded JSON value to the Go type of kind.
func settingValue(kind SettingKind, raw any) (any, error) {
	number := func() (float64, error) {
		f, ok := raw.(float64)
		if !ok {
			return 0, fmt.Errorf("%v is not a number", raw)
		}
		return f, nil
	}
	color := func(n int) ([]uint8, error) {
		parts, ok := raw.([]any)
		if !ok || len(parts) != n {
			return nil, fmt.Errorf("%v is not a list of %d numbers", raw, n)
		}
		result := make([]uint8, n)
		for i, part := range parts {
			f, ok := part.(float64)
			if !ok {
				return nil, fmt.Errorf("%v is not a number", part)
			}
			result[i] = uint8(f)
		}
		return result, nil
	}
	switch kind {
	case SettingBinary:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%v is not a boolean", raw)
		}
		return b, nil
	case SettingChar:
		f, err := number()
		return int8(f), err
	case SettingUChar:
		f, err := number()
		return uint8(f), err
	case SettingInt:
		f, err := number()
		return int32(f), err
	case SettingUInt:
		f, err := number()
		return uint32(f), err
	case SettingFloat:
		f, err := number()
		return float32(f), err
	case SettingString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%v is not a string", raw)
		}
		return s, nil
	case SettingRGB:
		c, err := color(3)
		if err != nil {
			return nil, err
		}
		return [3]uint8{c[0], c[1], c[2]}, nil
	case SettingRGBA:
		c, err := color(4)
		if err != nil {
			return nil, err
		}
		return [4]uint8{c[0], c[1], c[2], c[3]}, nil
	default:
		return raw, nil
	}
}
