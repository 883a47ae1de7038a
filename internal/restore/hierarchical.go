package restore

import (
	"math"
)

// Config controls the confidence assigned to restored keypoints. It
// never affects geometry.
type Config struct {
	ReduceConfidence          bool
	ConfidenceReductionFactor float64 // in [0, 1]
}

// restoredConfidence derives the confidence for a restored child from
// the resolved parent (or anchor) and the reference child.
func (c Config) restoredConfidence(parentConf, refChildConf float64) float64 {
	conf := math.Min(parentConf, refChildConf)
	if c.ReduceConfidence {
		conf *= c.ConfidenceReductionFactor
	}
	return conf
}

// RestoreHierarchical fills missing keypoints in current by walking the
// topology's parent table in its fixed parent-before-child order. Each
// missing child whose parent is resolved gets the reference
// parent-to-child offset, mapped through the estimated affine
// transform, applied from the resolved parent's position.
//
// Resolution mutates the working copy as it goes, so multi-hop chains
// cascade in a single traversal: a child restored at one edge is a
// valid parent at a later edge. Points that stay unrestorable (missing
// parent, missing reference data) are left at the missing sentinel.
// The inputs are never mutated.
func RestoreHierarchical(current, reference KeypointSet, topo Topology, cfg Config) KeypointSet {
	out := current.Clone()
	if len(reference) < topo.Size || len(out) < topo.Size {
		return out
	}

	transform := EstimateAffine(current, reference)

	for _, e := range topo.Edges {
		child, parent := e.Child, e.Parent
		if !out[child].Missing() {
			// Never overwrite detected data.
			continue
		}
		if out[parent].Missing() || reference[parent].Missing() || reference[child].Missing() {
			continue
		}

		refOffset := reference[child].Point().Sub(reference[parent].Point())
		curOffset := transform.TransformOffset(refOffset)
		pos := out[parent].Point().Add(curOffset)

		out[child] = Keypoint{
			X:          pos.X,
			Y:          pos.Y,
			Confidence: cfg.restoredConfidence(out[parent].Confidence, reference[child].Confidence),
		}
	}

	return out
}
