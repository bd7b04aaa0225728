package style

// Apply folds ev into current and reports whether the result differs.
//
// Settings are matched by id and then by option variant. An unrecognized
// id, or a recognized id carrying the wrong variant, is skipped without
// error. Hand lengths are clamped into [0, 1].
func Apply(current Config, ev Event) (Config, bool) {
	next := current
	for id, opt := range ev {
		switch o := opt.(type) {
		case ColorChoice:
			if id == SettingColorStyle && o.ID.Valid() {
				next.ColorStyle = o.ID
			}
		case BooleanFlag:
			if id == SettingDrawHourPips {
				next.DrawHourPips = o.Value
			}
		case DoubleRange:
			if id == SettingHandLength {
				next.HandLength = clamp01(o.Value)
			}
		}
	}
	return next, next != current
}

func clamp01(v float64) float64 {
	// NaN is never equal to itself.
	if v != v {
		return 0
	}
	return max(0, min(1, v))
}
