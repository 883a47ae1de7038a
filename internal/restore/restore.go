// Package restore reconstructs missing keypoints in 2D skeletal pose
// data. Given a current keypoint set with gaps left by an upstream
// detector and a complete reference of the same topology, it estimates
// the affine relation between the two skeletons and fills each missing
// point from an already-resolved parent (body, hand) or nearest
// resolved anchor (face) using the transformed reference offset, so
// limb proportions survive translation, scale and rotation of the
// subject.
//
// The package is permissive by design: insufficient data degrades to
// an identity transform or leaves points missing, it never errors.
package restore

// Mode selects the restoration strategy.
type Mode string

const (
	// ModeRelative restores missing points geometrically from resolved
	// parents using transformed reference offsets.
	ModeRelative Mode = "relative"
	// ModeStatic copies reference triples verbatim into missing slots,
	// with no geometric transfer.
	ModeStatic Mode = "static"
)

// RestoreStatic replaces every missing keypoint with the corresponding
// reference keypoint unchanged. The simplest repair: positions are not
// adapted to the current skeleton's geometry.
func RestoreStatic(current, reference KeypointSet) KeypointSet {
	out := current.Clone()
	n := len(out)
	if len(reference) < n {
		n = len(reference)
	}

	for i := 0; i < n; i++ {
		if out[i].Missing() {
			out[i] = reference[i]
		}
	}

	return out
}
