package study

import "math"

const (
	// DefaultDistanceRatio is the share of the card width a drag must cover.
	DefaultDistanceRatio = 0.5
	// DefaultMinSpeed is the release velocity, in px/s, that advances regardless of distance.
	DefaultMinSpeed = 50.0
)

// Gesture is a drag released by the learner. Distance is the horizontal
// offset in pixels and Velocity the speed at release; the sign is ignored.
type Gesture struct {
	Distance float64 `json:"distance"`
	Velocity float64 `json:"velocity"`
}

// Threshold decides which releases count as "next card".
type Threshold struct {
	MinDistance float64
	MinSpeed    float64
}

// DefaultThreshold returns the threshold for a stack of the given width.
func DefaultThreshold(width float64) Threshold {
	return NewThreshold(width, DefaultDistanceRatio, DefaultMinSpeed)
}

// NewThreshold scales the distance threshold to the stack width.
func NewThreshold(width, ratio, minSpeed float64) Threshold {
	return Threshold{MinDistance: width * ratio, MinSpeed: minSpeed}
}

// Qualifies reports whether g crosses either the distance or the speed threshold.
func (t Threshold) Qualifies(g Gesture) bool {
	return math.Abs(g.Distance) > t.MinDistance || math.Abs(g.Velocity) > t.MinSpeed
}
