package style

// Proportions of the dial used by [ComputeGeometry].
const (
	hourHandRatio = 0.6  // hour hand length relative to the minute hand
	pipRadiusFrac = 0.02 // hour pip radius relative to the dial radius
	pipInsetFrac  = 0.08 // distance of pips from the edge relative to the radius
	handWidthFrac = 0.015
)

// Geometry is the hand and pip layout for one surface size.
type Geometry struct {
	Width, Height    float64
	CenterX, CenterY float64
	Radius           float64
	MinuteHand       float64
	HourHand         float64
	HandWidth        float64
	PipRadius        float64
	PipInset         float64
}

// ComputeGeometry lays out the dial for a surface of the given size and a
// minute-hand length expressed as a fraction of the dial radius.
func ComputeGeometry(width, height, handLength float64) Geometry {
	r := min(width, height) / 2
	minute := r * clamp01(handLength)
	return Geometry{
		Width:      width,
		Height:     height,
		CenterX:    width / 2,
		CenterY:    height / 2,
		Radius:     r,
		MinuteHand: minute,
		HourHand:   minute * hourHandRatio,
		HandWidth:  max(1, r*handWidthFrac),
		PipRadius:  max(1, r*pipRadiusFrac),
		PipInset:   r * pipInsetFrac,
	}
}

// geometryCache keeps the last computed geometry. It is recalculated when
// the surface size changes or when invalidate was called since the last
// lookup.
type geometryCache struct {
	geom  Geometry
	valid bool
	dirty bool
	count int // recalculations, for tests
}

func (c *geometryCache) invalidate() { c.dirty = true }

func (c *geometryCache) get(width, height, handLength float64) Geometry {
	if c.valid && !c.dirty && c.geom.Width == width && c.geom.Height == height {
		return c.geom
	}
	c.geom = ComputeGeometry(width, height, handLength)
	c.valid = true
	c.dirty = false
	c.count++
	return c.geom
}
