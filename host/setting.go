package host

// SettingKind is the primitive type of a setting, declared by the first
// letter of its name.
type SettingKind int

const (
	SettingBinary SettingKind = iota
	SettingChar
	SettingUChar
	SettingInt
	SettingUInt
	SettingFloat
	SettingString
	SettingRGB
	SettingRGBA
	SettingUnknown
)

// Setting is one entry of a settings collection. Value holds a bool, int8,
// uint8, int32, uint32, float32, string, [3]uint8 or [4]uint8 depending on
// Kind.
type Setting struct {
	Name  string
	Value any
}

func (s *Setting) Kind() SettingKind {
	if s.Name == "" {
		return SettingUnknown
	}
	switch s.Name[0] {
	case 'b':
		return SettingBinary
	case 'c':
		return SettingChar
	case 'h':
		return SettingUChar
	case 'i':
		return SettingInt
	case 'u':
		return SettingUInt
	case 'f':
		return SettingFloat
	case 's', 'S':
		return SettingString
	case 'r':
		return SettingRGB
	case 'a':
		return SettingRGBA
	default:
		return SettingUnknown
	}
}

// SettingCollection is a named group of settings, e.g. game settings or
// INI settings.
type SettingCollection struct {
	Name     string
	Settings []*Setting
}
