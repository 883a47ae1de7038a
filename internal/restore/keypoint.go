package restore

import (
	"github.com/golang/geo/r2"
)

// Keypoint is a single 2D joint or landmark observation.
// The all-zero triple (0, 0, 0) is the sentinel for a missing point;
// any other combination of values is valid data, including points at
// x=0 or y=0 with nonzero confidence.
type Keypoint struct {
	X          float64
	Y          float64
	Confidence float64
}

// IsMissing reports whether a keypoint triple is the missing-point
// sentinel. The comparison is exact, matching the upstream detector's
// convention; no epsilon is applied.
func IsMissing(x, y, confidence float64) bool {
	return x == 0.0 && y == 0.0 && confidence == 0.0
}

// Missing reports whether the keypoint is the missing-point sentinel.
func (k Keypoint) Missing() bool {
	return IsMissing(k.X, k.Y, k.Confidence)
}

// Point returns the keypoint position as a 2D vector.
func (k Keypoint) Point() r2.Point {
	return r2.Point{X: k.X, Y: k.Y}
}

// KeypointSet is an ordered, fixed-length sequence of keypoints. The
// index is semantically meaningful (index = anatomical joint) and the
// sequence must never be reordered.
type KeypointSet []Keypoint

// Clone returns an independent copy of the set.
func (s KeypointSet) Clone() KeypointSet {
	out := make(KeypointSet, len(s))
	copy(out, s)
	return out
}

// PresentCount returns the number of non-missing keypoints in the set.
func (s KeypointSet) PresentCount() int {
	count := 0
	for _, k := range s {
		if !k.Missing() {
			count++
		}
	}
	return count
}

// FromTriplets builds a keypoint set of the given size from a flat
// [x, y, c, x, y, c, ...] slice, the layout used by OpenPose-style
// JSON. Short input leaves the remaining keypoints at the missing
// sentinel; excess values are ignored.
func FromTriplets(values []float64, size int) KeypointSet {
	set := make(KeypointSet, size)
	for i := 0; i < size; i++ {
		base := i * 3
		if base+2 >= len(values) {
			break
		}
		set[i] = Keypoint{
			X:          values[base],
			Y:          values[base+1],
			Confidence: values[base+2],
		}
	}
	return set
}

// Triplets flattens the set back to the [x, y, c, ...] layout.
func (s KeypointSet) Triplets() []float64 {
	out := make([]float64, 0, len(s)*3)
	for _, k := range s {
		out = append(out, k.X, k.Y, k.Confidence)
	}
	return out
}
