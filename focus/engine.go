package focus

import "sort"

// rowTolerance treats tops within this many pixels as the same row when
// building the sequential reading order.
const rowTolerance = 5

// FindClosest selects the next element to focus in dir from the candidate
// snapshot. A nil from means no current focus: the highest-priority enabled
// record wins, first seen breaking ties. Returns nil when no candidate
// qualifies, which is the expected edge-of-space condition, not an error.
func FindClosest(from *Focusable, dir Direction, candidates []Focusable) *Focusable {
	if from == nil {
		var best *Focusable
		for i := range candidates {
			c := &candidates[i]
			if c.Disabled {
				continue
			}
			if best == nil || c.Priority > best.Priority {
				best = c
			}
		}
		return clone(best)
	}

	var best *Focusable
	var bestScore float64
	for i := range candidates {
		c := &candidates[i]
		if c.Disabled || c.ID == from.ID {
			continue
		}
		if !InDirection(from.Pos, c.Pos, dir) {
			continue
		}
		s := NavigationScore(from.Pos, c.Pos, dir)
		if best == nil || s < bestScore {
			best = c
			bestScore = s
		}
	}
	return clone(best)
}

// NextSequential returns the element after from in reading order, wrapping
// past the last back to the first. A nil or unknown from yields the first
// element in order.
func NextSequential(from *Focusable, candidates []Focusable) *Focusable {
	ord := sequentialOrder(candidates)
	if len(ord) == 0 {
		return nil
	}
	if from != nil {
		for i := range ord {
			if ord[i].ID == from.ID {
				return clone(&ord[(i+1)%len(ord)])
			}
		}
	}
	return clone(&ord[0])
}

// PrevSequential mirrors NextSequential in the other direction.
func PrevSequential(from *Focusable, candidates []Focusable) *Focusable {
	ord := sequentialOrder(candidates)
	if len(ord) == 0 {
		return nil
	}
	if from != nil {
		for i := range ord {
			if ord[i].ID == from.ID {
				return clone(&ord[(i-1+len(ord))%len(ord)])
			}
		}
	}
	return clone(&ord[0])
}

// sequentialOrder builds the total reading order over enabled records:
// priority descending, then top ascending with a small row tolerance, then
// left ascending within a row.
func sequentialOrder(candidates []Focusable) []Focusable {
	out := make([]Focusable, 0, len(candidates))
	for _, c := range candidates {
		if !c.Disabled {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		dy := a.Pos.Y - b.Pos.Y
		if dy < -rowTolerance {
			return true
		}
		if dy > rowTolerance {
			return false
		}
		return a.Pos.X < b.Pos.X
	})
	return out
}

func clone(f *Focusable) *Focusable {
	if f == nil {
		return nil
	}
	rec := *f
	return &rec
}
