package style

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/fuzzyface/pkg/errors"
)

// SettingID names a user style setting.
type SettingID string

// Recognized settings. Any other id in an event is ignored.
const (
	SettingColorStyle   SettingID = "color_style_setting"
	SettingDrawHourPips SettingID = "draw_hour_pips_style_setting"
	SettingHandLength   SettingID = "watch_hand_length_style_setting"
)

// Settings lists the recognized settings.
func Settings() []SettingID {
	return []SettingID{SettingColorStyle, SettingDrawHourPips, SettingHandLength}
}

// Option is a typed style value. The set of implementations is closed:
// [ColorChoice], [BooleanFlag] and [DoubleRange].
type Option interface {
	isOption()
	String() string
}

// ColorChoice selects a color scheme.
type ColorChoice struct{ ID ColorStyleID }

// BooleanFlag toggles a feature.
type BooleanFlag struct{ Value bool }

// DoubleRange is a fraction in [0, 1].
type DoubleRange struct{ Value float64 }

func (ColorChoice) isOption() {}
func (BooleanFlag) isOption() {}
func (DoubleRange) isOption() {}

func (o ColorChoice) String() string { return o.ID.String() }
func (o BooleanFlag) String() string { return strconv.FormatBool(o.Value) }
func (o DoubleRange) String() string { return strconv.FormatFloat(o.Value, 'f', -1, 64) }

// Event is one style-change notification. Only the settings present are
// changed; absent settings keep their current value.
type Event map[SettingID]Option

// Has reports whether the event carries a value for id.
func (e Event) Has(id SettingID) bool {
	_, ok := e[id]
	return ok
}

// Keys returns the event's setting ids in sorted order.
func (e Event) Keys() []SettingID {
	keys := make([]SettingID, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// settingAliases maps short user-facing names to setting ids.
var settingAliases = map[string]SettingID{
	"color":       SettingColorStyle,
	"pips":        SettingDrawHourPips,
	"hand-length": SettingHandLength,
	"hand_length": SettingHandLength,
}

// ParseSetting converts a user-supplied key and value into a typed option.
// key may be a full setting id or one of the aliases color, pips and
// hand-length.
func ParseSetting(key, value string) (SettingID, Option, error) {
	id := SettingID(strings.TrimSpace(key))
	if alias, ok := settingAliases[string(id)]; ok {
		id = alias
	}
	value = strings.TrimSpace(value)

	switch id {
	case SettingColorStyle:
		c, err := ParseColorStyle(value)
		if err != nil {
			return "", nil, err
		}
		return id, ColorChoice{ID: c}, nil
	case SettingDrawHourPips:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", nil, errors.Wrap(errors.ErrCodeInvalidSetting, err, "%s expects true or false", key)
		}
		return id, BooleanFlag{Value: b}, nil
	case SettingHandLength:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", nil, errors.Wrap(errors.ErrCodeInvalidSetting, err, "%s expects a number", key)
		}
		if math.IsNaN(f) || f < 0 || f > 1 {
			return "", nil, errors.New(errors.ErrCodeInvalidSetting, "%s must be within [0, 1], got %g", key, f)
		}
		return id, DoubleRange{Value: f}, nil
	default:
		return "", nil, errors.New(errors.ErrCodeInvalidSetting, "unknown setting %q", key)
	}
}

// ParseAssignments parses "key=value" pairs into an event.
func ParseAssignments(pairs []string) (Event, error) {
	ev := make(Event, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidSetting, "expected key=value, got %q", p)
		}
		id, opt, err := ParseSetting(k, v)
		if err != nil {
			return nil, err
		}
		ev[id] = opt
	}
	return ev, nil
}
