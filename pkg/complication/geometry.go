package complication

import (
	"math"

	"github.com/matzehuels/fuzzyface/pkg/render/surface"
)

func pointOnCircle(cx, cy, r float64, i, n int) (float64, float64) {
	a := 2 * math.Pi * float64(i) / float64(n)
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}

// DefaultLayout returns the usual left and right slots for a face of the
// given size, both enabled and placed below the center line.
func DefaultLayout(width, height float64) []*Slot {
	size := min(width, height) * 0.18
	y := height*0.78 - size/2
	return []*Slot{
		NewSlot(0, surface.Rect{X: width*0.32 - size/2, Y: y, W: size, H: size}, true),
		NewSlot(1, surface.Rect{X: width*0.68 - size/2, Y: y, W: size, H: size}, true),
	}
}
