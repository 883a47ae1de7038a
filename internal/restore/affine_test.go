package restore

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

const tol = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

// set builds a keypoint set of the given size with the listed indices
// populated.
func set(size int, points map[int]Keypoint) KeypointSet {
	s := make(KeypointSet, size)
	for i, k := range points {
		s[i] = k
	}
	return s
}

func TestEstimateAffineIdentity(t *testing.T) {
	reference := KeypointSet{
		{X: 100, Y: 100, Confidence: 0.9},
		{X: 200, Y: 100, Confidence: 0.9},
		{X: 100, Y: 200, Confidence: 0.9},
		{X: 250, Y: 250, Confidence: 0.9},
	}
	current := reference.Clone()

	tr := EstimateAffine(current, reference)
	if tr == nil {
		t.Fatal("expected a transform, got nil")
	}

	got := tr.Apply(r2.Point{X: 150, Y: 150})
	if !approx(got.X, 150) || !approx(got.Y, 150) {
		t.Errorf("identity transform moved point to (%v, %v)", got.X, got.Y)
	}
}

func TestEstimateAffineTranslation(t *testing.T) {
	reference := KeypointSet{
		{X: 100, Y: 100, Confidence: 0.9},
		{X: 200, Y: 100, Confidence: 0.9},
		{X: 100, Y: 200, Confidence: 0.9},
	}
	current := KeypointSet{
		{X: 150, Y: 130, Confidence: 0.9},
		{X: 250, Y: 130, Confidence: 0.9},
		{X: 150, Y: 230, Confidence: 0.9},
	}

	tr := EstimateAffine(current, reference)
	if tr == nil {
		t.Fatal("expected a transform, got nil")
	}

	got := tr.Apply(r2.Point{X: 300, Y: 300})
	if !approx(got.X, 350) || !approx(got.Y, 330) {
		t.Errorf("Apply(300, 300) = (%v, %v), want (350, 330)", got.X, got.Y)
	}

	// The linear part is identity, so offsets pass through unchanged.
	off := tr.TransformOffset(r2.Point{X: 50, Y: -50})
	if !approx(off.X, 50) || !approx(off.Y, -50) {
		t.Errorf("TransformOffset = (%v, %v), want (50, -50)", off.X, off.Y)
	}
}

func TestEstimateAffineUniformScale(t *testing.T) {
	reference := KeypointSet{
		{X: 100, Y: 100, Confidence: 0.9},
		{X: 200, Y: 100, Confidence: 0.9},
		{X: 100, Y: 200, Confidence: 0.9},
		{X: 200, Y: 200, Confidence: 0.9},
	}
	current := make(KeypointSet, len(reference))
	for i, k := range reference {
		current[i] = Keypoint{X: k.X * 2, Y: k.Y * 2, Confidence: 0.9}
	}

	tr := EstimateAffine(current, reference)
	if tr == nil {
		t.Fatal("expected a transform, got nil")
	}

	off := tr.TransformOffset(r2.Point{X: 50, Y: -50})
	if !approx(off.X, 100) || !approx(off.Y, -100) {
		t.Errorf("TransformOffset = (%v, %v), want (100, -100)", off.X, off.Y)
	}
}

func TestEstimateAffineRotationScalePreservesMagnitudeRatio(t *testing.T) {
	angle := math.Pi / 4
	scale := 1.2
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	rotate := func(k Keypoint) Keypoint {
		return Keypoint{
			X:          (cosA*k.X - sinA*k.Y) * scale,
			Y:          (sinA*k.X + cosA*k.Y) * scale,
			Confidence: k.Confidence,
		}
	}

	reference := KeypointSet{
		{X: 100, Y: 100, Confidence: 0.9},
		{X: 200, Y: 100, Confidence: 0.9},
		{X: 100, Y: 200, Confidence: 0.9},
		{X: 220, Y: 240, Confidence: 0.9},
	}
	current := make(KeypointSet, len(reference))
	for i, k := range reference {
		current[i] = rotate(k)
	}

	tr := EstimateAffine(current, reference)
	if tr == nil {
		t.Fatal("expected a transform, got nil")
	}

	off := tr.TransformOffset(r2.Point{X: 50, Y: -50})
	wantNorm := math.Hypot(50, -50) * scale
	if !approx(off.Norm(), wantNorm) {
		t.Errorf("transformed offset magnitude = %v, want %v", off.Norm(), wantNorm)
	}
}

func TestEstimateAffineInsufficientPairs(t *testing.T) {
	tests := []struct {
		name      string
		current   KeypointSet
		reference KeypointSet
	}{
		{
			"two confident pairs",
			KeypointSet{{X: 1, Y: 1, Confidence: 0.9}, {X: 2, Y: 2, Confidence: 0.9}, {}},
			KeypointSet{{X: 1, Y: 1, Confidence: 0.9}, {X: 2, Y: 2, Confidence: 0.9}, {X: 3, Y: 3, Confidence: 0.9}},
		},
		{
			"all confidences at threshold",
			KeypointSet{{X: 1, Y: 1, Confidence: 0.3}, {X: 2, Y: 2, Confidence: 0.3}, {X: 3, Y: 4, Confidence: 0.3}},
			KeypointSet{{X: 1, Y: 1, Confidence: 0.3}, {X: 2, Y: 2, Confidence: 0.3}, {X: 3, Y: 4, Confidence: 0.3}},
		},
		{
			"confident in one set only",
			KeypointSet{{X: 1, Y: 1, Confidence: 0.9}, {X: 2, Y: 2, Confidence: 0.9}, {X: 3, Y: 4, Confidence: 0.9}},
			KeypointSet{{X: 1, Y: 1, Confidence: 0.2}, {X: 2, Y: 2, Confidence: 0.2}, {X: 3, Y: 4, Confidence: 0.2}},
		},
		{
			"empty sets",
			KeypointSet{},
			KeypointSet{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tr := EstimateAffine(tt.current, tt.reference); tr != nil {
				t.Errorf("expected nil transform, got %+v", tr)
			}
		})
	}
}

func TestTransformOffsetNilIsIdentity(t *testing.T) {
	var tr *Affine
	off := tr.TransformOffset(r2.Point{X: 50, Y: -50})
	if off.X != 50 || off.Y != -50 {
		t.Errorf("nil transform changed offset: (%v, %v)", off.X, off.Y)
	}
}

// Translating the reference must not change transformed offsets: the
// translation is absorbed by the transform's translation column, which
// TransformOffset subtracts.
func TestTransformOffsetTranslationInvariance(t *testing.T) {
	reference := KeypointSet{
		{X: 100, Y: 100, Confidence: 0.9},
		{X: 200, Y: 100, Confidence: 0.9},
		{X: 100, Y: 200, Confidence: 0.9},
		{X: 230, Y: 260, Confidence: 0.9},
	}
	current := KeypointSet{
		{X: 130, Y: 90, Confidence: 0.9},
		{X: 250, Y: 95, Confidence: 0.9},
		{X: 140, Y: 210, Confidence: 0.9},
		{X: 280, Y: 270, Confidence: 0.9},
	}

	shifted := make(KeypointSet, len(reference))
	for i, k := range reference {
		shifted[i] = Keypoint{X: k.X + 123, Y: k.Y - 77, Confidence: k.Confidence}
	}

	base := EstimateAffine(current, reference)
	moved := EstimateAffine(current, shifted)
	if base == nil || moved == nil {
		t.Fatal("expected transforms for both references")
	}

	offset := r2.Point{X: 50, Y: -50}
	a := base.TransformOffset(offset)
	b := moved.TransformOffset(offset)
	if !approx(a.X, b.X) || !approx(a.Y, b.Y) {
		t.Errorf("offset changed under reference translation: (%v, %v) vs (%v, %v)", a.X, a.Y, b.X, b.Y)
	}
}
