package service

import (
	"math"
	"testing"

	"github.com/posekit/pose-restore-go/internal/models"
	"github.com/posekit/pose-restore-go/internal/restore"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

// testBody returns current and reference body triplet arrays: the
// right elbow and wrist are missing and four identical correspondence
// points pin the transform to the identity.
func testBody() (current, reference []float64) {
	ref := make(restore.KeypointSet, restore.BodyKeypoints)
	ref[0] = restore.Keypoint{X: 310, Y: 100, Confidence: 0.9}
	ref[1] = restore.Keypoint{X: 300, Y: 150, Confidence: 0.9}
	ref[2] = restore.Keypoint{X: 300, Y: 200, Confidence: 0.95}
	ref[3] = restore.Keypoint{X: 350, Y: 150, Confidence: 0.9}
	ref[4] = restore.Keypoint{X: 400, Y: 100, Confidence: 0.85}
	ref[8] = restore.Keypoint{X: 280, Y: 320, Confidence: 0.9}

	cur := make(restore.KeypointSet, restore.BodyKeypoints)
	cur[0] = restore.Keypoint{X: 310, Y: 100, Confidence: 0.9}
	cur[1] = restore.Keypoint{X: 300, Y: 150, Confidence: 0.9}
	cur[2] = restore.Keypoint{X: 300, Y: 200, Confidence: 0.9}
	cur[8] = restore.Keypoint{X: 280, Y: 320, Confidence: 0.9}

	return cur.Triplets(), ref.Triplets()
}

func testRequest() *models.RestoreRequest {
	current, reference := testBody()
	return &models.RestoreRequest{
		Pose: &models.PoseFrame{
			People:       []models.Person{{PoseKeypoints2D: current}},
			CanvasWidth:  512,
			CanvasHeight: 512,
		},
		Reference: &models.PoseFrame{
			People: []models.Person{{PoseKeypoints2D: reference}},
		},
	}
}

func TestRestoreServiceRelative(t *testing.T) {
	svc := NewRestoreService(nil, 0.7)

	req := testRequest()
	resp, err := svc.Restore(req)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	body := resp.Pose.People[0].PoseKeypoints2D
	if len(body) != restore.BodyKeypoints*3 {
		t.Fatalf("unexpected body length %d", len(body))
	}

	// Elbow (3) and wrist (4) restored geometrically.
	if !approx(body[3*3], 350) || !approx(body[3*3+1], 150) {
		t.Errorf("restored elbow = (%v, %v), want (350, 150)", body[3*3], body[3*3+1])
	}
	if !approx(body[4*3], 400) || !approx(body[4*3+1], 100) {
		t.Errorf("restored wrist = (%v, %v), want (400, 100)", body[4*3], body[4*3+1])
	}

	summary := resp.Summaries["body"]
	if summary.Restored != 2 {
		t.Errorf("summary.Restored = %d, want 2", summary.Restored)
	}
	if summary.Present != 6 {
		t.Errorf("summary.Present = %d, want 6", summary.Present)
	}
	if summary.Total != restore.BodyKeypoints {
		t.Errorf("summary.Total = %d, want %d", summary.Total, restore.BodyKeypoints)
	}
}

func TestRestoreServiceDefaultReductionFactor(t *testing.T) {
	svc := NewRestoreService(nil, 0.7)

	req := testRequest()
	req.Options.ReduceConfidence = true // factor unset, default applies

	resp, err := svc.Restore(req)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	body := resp.Pose.People[0].PoseKeypoints2D
	if !approx(body[3*3+2], 0.63) {
		t.Errorf("restored elbow confidence = %v, want 0.63", body[3*3+2])
	}
}

func TestRestoreServiceStaticMode(t *testing.T) {
	svc := NewRestoreService(nil, 0.7)

	req := testRequest()
	req.Options.Mode = "static"

	resp, err := svc.Restore(req)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	body := resp.Pose.People[0].PoseKeypoints2D
	// Static mode copies the reference triple, confidence included.
	if body[3*3+2] != 0.9 {
		t.Errorf("static elbow confidence = %v, want reference 0.9", body[3*3+2])
	}
}

func TestRestoreServiceMasksForExportOnly(t *testing.T) {
	svc := NewRestoreService(nil, 0.7)

	req := testRequest()
	// Push the reference wrist off the canvas so the restored wrist
	// lands outside.
	req.Reference.People[0].PoseKeypoints2D[4*3] = 700

	resp, err := svc.Restore(req)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	wrist := resp.Pose.People[0].PoseKeypoints2D[4*3 : 4*3+3]
	if !approx(wrist[0], 700) {
		t.Errorf("unmasked output clamped the wrist: %v", wrist)
	}

	req = testRequest()
	req.Reference.People[0].PoseKeypoints2D[4*3] = 700
	req.Options.MaskOutOfCanvas = true

	resp, err = svc.Restore(req)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	wrist = resp.Pose.People[0].PoseKeypoints2D[4*3 : 4*3+3]
	if wrist[0] != 0 || wrist[1] != 0 || wrist[2] != 0 {
		t.Errorf("masked output kept out-of-canvas wrist: %v", wrist)
	}
}

func TestRestoreServiceInputUntouched(t *testing.T) {
	svc := NewRestoreService(nil, 0.7)

	req := testRequest()
	original := append([]float64(nil), req.Pose.People[0].PoseKeypoints2D...)

	if _, err := svc.Restore(req); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	for i, v := range req.Pose.People[0].PoseKeypoints2D {
		if v != original[i] {
			t.Fatalf("input frame mutated at value %d", i)
		}
	}
}

func TestRestoreServiceValidation(t *testing.T) {
	svc := NewRestoreService(nil, 0.7)

	tests := []struct {
		name string
		req  *models.RestoreRequest
	}{
		{"nil pose", &models.RestoreRequest{Reference: &models.PoseFrame{People: []models.Person{{}}}}},
		{"no people", &models.RestoreRequest{
			Pose:      &models.PoseFrame{},
			Reference: &models.PoseFrame{People: []models.Person{{}}},
		}},
		{"no reference", &models.RestoreRequest{
			Pose: &models.PoseFrame{People: []models.Person{{}}},
		}},
		{"unknown mode", func() *models.RestoreRequest {
			r := testRequest()
			r.Options.Mode = "cubic"
			return r
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Restore(tt.req); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
