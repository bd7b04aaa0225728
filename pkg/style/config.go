package style

import (
	"fmt"
	"strings"

	"github.com/matzehuels/fuzzyface/pkg/errors"
)

// ColorStyleID selects one of the built-in color schemes.
type ColorStyleID int

// Color schemes.
const (
	Red ColorStyleID = iota
	Green
	Blue
	White
)

var colorStyleNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
	White: "white",
}

// ColorStyles lists every scheme in display order.
func ColorStyles() []ColorStyleID {
	return []ColorStyleID{Red, Green, Blue, White}
}

// String returns the lower-case scheme name.
func (id ColorStyleID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ColorStyleID(%d)", int(id))
	}
	return colorStyleNames[id]
}

// Valid reports whether id names a known scheme.
func (id ColorStyleID) Valid() bool {
	return id >= Red && int(id) < len(colorStyleNames)
}

// Next returns the scheme after id, cycling back to the first.
func (id ColorStyleID) Next() ColorStyleID {
	return ColorStyleID((int(id) + 1) % len(colorStyleNames))
}

// ParseColorStyle parses a scheme name (case-insensitive).
func ParseColorStyle(s string) (ColorStyleID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorStyleNames {
		if n == name {
			return ColorStyleID(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle,
		"unknown color style %q (must be one of %s)", s, strings.Join(colorStyleNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (id ColorStyleID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid color style %d", int(id))
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ColorStyleID) UnmarshalText(b []byte) error {
	v, err := ParseColorStyle(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// Default configuration values.
const (
	DefaultColorStyle   = Red
	DefaultHandLength   = 0.38
	DefaultDrawHourPips = true
)

// Config is the user-selected appearance of the face. It is a plain value:
// two configs are equal exactly when all fields are equal.
type Config struct {
	ColorStyle   ColorStyleID `toml:"color_style" json:"color_style"`
	HandLength   float64      `toml:"hand_length" json:"hand_length"`
	DrawHourPips bool         `toml:"draw_hour_pips" json:"draw_hour_pips"`
}

// Default returns the configuration used before any style event.
func Default() Config {
	return Config{
		ColorStyle:   DefaultColorStyle,
		HandLength:   DefaultHandLength,
		DrawHourPips: DefaultDrawHourPips,
	}
}

// Event returns an event that sets every field to the values in c.
func (c Config) Event() Event {
	return Event{
		SettingColorStyle:   ColorChoice{ID: c.ColorStyle},
		SettingHandLength:   DoubleRange{Value: c.HandLength},
		SettingDrawHourPips: BooleanFlag{Value: c.DrawHourPips},
	}
}

// String renders c for logs.
func (c Config) String() string {
	return fmt.Sprintf("color=%s hand=%.2f pips=%t", c.ColorStyle, c.HandLength, c.DrawHourPips)
}
