package restore

// MaskOutOfCanvas returns a copy of the set in which every point lying
// outside the canvas (x < 0, x >= width, y < 0 or y >= height) is
// replaced with the missing sentinel. The input is never mutated: the
// unmasked coordinates must stay available for further restoration
// calls, so masking is applied exactly once, immediately before
// export.
func MaskOutOfCanvas(set KeypointSet, width, height int) KeypointSet {
	out := set.Clone()
	w, h := float64(width), float64(height)

	for i, k := range out {
		if k.Missing() {
			continue
		}
		if k.X < 0 || k.X >= w || k.Y < 0 || k.Y >= h {
			out[i] = Keypoint{}
		}
	}

	return out
}
