package restore

import (
	"github.com/posekit/pose-restore-go/internal/geometry"
)

// RestoreAnchored fills missing keypoints in a topology without a
// fixed parent table (the face). For each missing point the nearest
// currently-resolved keypoint, measured in reference space, acts as an
// ad hoc parent; the offset-transform and confidence rules are the
// same as in the hierarchical restorer.
//
// Because anchors must already be resolved, there is no tree to order
// by. The scan runs in passes: a point restored in one pass becomes an
// eligible anchor in the next, and the pass count is bounded by the
// set size (the longest possible anchor chain) so termination is
// guaranteed. Points that never find an anchor stay missing.
func RestoreAnchored(current, reference KeypointSet, cfg Config) KeypointSet {
	out := current.Clone()
	if len(reference) < len(out) {
		return out
	}

	transform := EstimateAffine(current, reference)

	for pass := 0; pass < len(out); pass++ {
		restored := false

		for c := range out {
			if !out[c].Missing() || reference[c].Missing() {
				continue
			}

			anchor := nearestAnchor(out, reference, c)
			if anchor < 0 {
				continue
			}

			refOffset := reference[c].Point().Sub(reference[anchor].Point())
			curOffset := transform.TransformOffset(refOffset)
			pos := out[anchor].Point().Add(curOffset)

			out[c] = Keypoint{
				X:          pos.X,
				Y:          pos.Y,
				Confidence: cfg.restoredConfidence(out[anchor].Confidence, reference[c].Confidence),
			}
			restored = true
		}

		if !restored {
			break
		}
	}

	return out
}

// nearestAnchor finds the resolved keypoint closest to index c in
// reference space. An anchor must be present in both sets and
// confident in the reference. Returns -1 when no anchor qualifies.
// The designated center landmark wins distance ties.
func nearestAnchor(current, reference KeypointSet, c int) int {
	best := -1
	bestDist := 0.0
	target := reference[c].Point()

	for a := range current {
		if a == c || current[a].Missing() || reference[a].Missing() {
			continue
		}
		if reference[a].Confidence <= CorrespondenceThreshold {
			continue
		}

		d := geometry.Distance(target, reference[a].Point())
		if best < 0 || d < bestDist || (d == bestDist && a == FaceCenterIndex) {
			best = a
			bestDist = d
		}
	}

	return best
}
