package focus

import "math"

// Rect is an axis-aligned rectangle in viewport pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point (px, py) is within the rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// finite reports whether the rect has usable coordinates and non-negative
// dimensions.
func (r Rect) finite() bool {
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.W >= 0 && r.H >= 0
}

// directionTolerance widens the acceptance cone past 45 degrees (to roughly
// ±63°) so loosely aligned layouts still resolve, while candidates that are
// more sideways than forward stay rejected.
const directionTolerance = 0.5

// InDirection reports whether to lies in the given direction from from,
// within the acceptance cone around the navigation axis. The test uses the
// center points of both rectangles.
func InDirection(from, to Rect, dir Direction) bool {
	dx := to.CenterX() - from.CenterX()
	dy := to.CenterY() - from.CenterY()
	adx, ady := math.Abs(dx), math.Abs(dy)

	switch dir {
	case DirUp:
		return dy < 0 && ady >= adx*directionTolerance
	case DirDown:
		return dy > 0 && ady >= adx*directionTolerance
	case DirLeft:
		return dx < 0 && adx >= ady*directionTolerance
	case DirRight:
		return dx > 0 && adx >= ady*directionTolerance
	}
	return false
}

// NavigationScore returns a comparable cost for moving from from to to in
// dir. Lower is better. Distance along the requested axis dominates by
// roughly 10x so the nearest candidate in that direction always beats one
// that is merely well aligned; candidates overlapping on the perpendicular
// axis get their secondary term discounted further.
func NavigationScore(from, to Rect, dir Direction) float64 {
	dx := to.CenterX() - from.CenterX()
	dy := to.CenterY() - from.CenterY()

	var primary, secondary float64
	var aligned bool
	if dir.Horizontal() {
		primary = math.Abs(dx)
		secondary = math.Abs(dy)
		aligned = rangesOverlap(from.Y, from.Y+from.H, to.Y, to.Y+to.H)
	} else {
		primary = math.Abs(dy)
		secondary = math.Abs(dx)
		aligned = rangesOverlap(from.X, from.X+from.W, to.X, to.X+to.W)
	}
	if aligned {
		secondary *= 0.3
	}
	return primary*3 + secondary*0.3
}

func rangesOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}
