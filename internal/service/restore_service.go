package service

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/posekit/pose-restore-go/internal/geometry"
	"github.com/posekit/pose-restore-go/internal/models"
	"github.com/posekit/pose-restore-go/internal/repository"
	"github.com/posekit/pose-restore-go/internal/restore"
)

// RestoreService handles business logic for pose restoration
type RestoreService struct {
	refRepo         *repository.ReferenceRepository
	reductionFactor float64
}

// NewRestoreService creates a new restore service
func NewRestoreService(refRepo *repository.ReferenceRepository, reductionFactor float64) *RestoreService {
	return &RestoreService{
		refRepo:         refRepo,
		reductionFactor: reductionFactor,
	}
}

// keypoint group of one person, with its restoration strategy
type group struct {
	name     string
	size     int
	topology *restore.Topology // nil selects the anchor-based restorer
	current  []float64
	ref      []float64
}

// Restore fills missing keypoints of the first person in the request
// frame from the supplied or stored reference. The input frame is not
// modified; the response carries a new frame.
func (s *RestoreService) Restore(req *models.RestoreRequest) (*models.RestoreResponse, error) {
	if req.Pose == nil || len(req.Pose.People) == 0 {
		return nil, fmt.Errorf("pose frame with at least one person is required")
	}

	refFrame, err := s.resolveReference(req)
	if err != nil {
		return nil, err
	}
	if len(refFrame.People) == 0 {
		return nil, fmt.Errorf("reference frame has no people")
	}

	mode, err := parseMode(req.Options.Mode)
	if err != nil {
		return nil, err
	}

	cfg := restore.Config{
		ReduceConfidence:          req.Options.ReduceConfidence,
		ConfidenceReductionFactor: req.Options.ConfidenceReductionFactor,
	}
	if cfg.ReduceConfidence && cfg.ConfidenceReductionFactor == 0 {
		cfg.ConfidenceReductionFactor = s.reductionFactor
	}

	// The node restores person 0, matching the upstream convention.
	person := req.Pose.People[0]
	refPerson := refFrame.People[0]

	groups := []group{
		{name: "body", size: restore.BodyKeypoints, topology: &restore.Body,
			current: person.PoseKeypoints2D, ref: refPerson.PoseKeypoints2D},
		{name: "face", size: restore.FaceKeypoints, topology: nil,
			current: person.FaceKeypoints2D, ref: refPerson.FaceKeypoints2D},
		{name: "hand_left", size: restore.HandKeypoints, topology: &restore.Hand,
			current: person.HandLeftKeypoints2D, ref: refPerson.HandLeftKeypoints2D},
		{name: "hand_right", size: restore.HandKeypoints, topology: &restore.Hand,
			current: person.HandRightKeypoints2D, ref: refPerson.HandRightKeypoints2D},
	}

	summaries := make(map[string]models.GroupSummary, len(groups))
	results := make(map[string][]float64, len(groups))
	for _, g := range groups {
		values, summary := s.restoreGroup(g, mode, cfg, req.Pose, req.Options.MaskOutOfCanvas)
		results[g.name] = values
		summaries[g.name] = summary
	}

	out := *req.Pose
	out.People = append([]models.Person(nil), req.Pose.People...)
	out.People[0] = models.Person{
		PersonID:             person.PersonID,
		PoseKeypoints2D:      results["body"],
		FaceKeypoints2D:      results["face"],
		HandLeftKeypoints2D:  results["hand_left"],
		HandRightKeypoints2D: results["hand_right"],
	}

	return &models.RestoreResponse{Pose: &out, Summaries: summaries}, nil
}

// resolveReference returns the inline reference frame or loads the
// named stored one
func (s *RestoreService) resolveReference(req *models.RestoreRequest) (*models.PoseFrame, error) {
	if req.Reference != nil {
		return req.Reference, nil
	}
	if req.ReferenceName == "" {
		return nil, fmt.Errorf("either reference or reference_name is required")
	}

	ref, err := s.refRepo.Get(req.ReferenceName)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference: %w", err)
	}
	if ref == nil {
		return nil, fmt.Errorf("reference %q not found", req.ReferenceName)
	}

	return ref.Frame, nil
}

func parseMode(mode string) (restore.Mode, error) {
	switch mode {
	case "", string(restore.ModeRelative):
		return restore.ModeRelative, nil
	case string(restore.ModeStatic):
		return restore.ModeStatic, nil
	default:
		return "", fmt.Errorf("unknown restoration mode %q", mode)
	}
}

// restoreGroup runs one keypoint group through the selected restorer
// and builds its summary. A group absent from the current person is
// copied from the reference in static mode (as the verbatim repair
// does) and left absent in relative mode, where no anchor could ever
// resolve anyway.
func (s *RestoreService) restoreGroup(g group, mode restore.Mode, cfg restore.Config, frame *models.PoseFrame, mask bool) ([]float64, models.GroupSummary) {
	if g.ref == nil {
		return g.current, summarize(restore.FromTriplets(g.current, g.size), 0)
	}
	if g.current == nil && mode == restore.ModeRelative {
		return nil, models.GroupSummary{Total: g.size, Missing: g.size}
	}

	current := restore.FromTriplets(g.current, g.size)
	reference := restore.FromTriplets(g.ref, g.size)
	before := current.PresentCount()

	var result restore.KeypointSet
	switch {
	case mode == restore.ModeStatic:
		result = restore.RestoreStatic(current, reference)
	case g.topology != nil:
		result = restore.RestoreHierarchical(current, reference, *g.topology, cfg)
	default:
		result = restore.RestoreAnchored(current, reference, cfg)
	}

	restored := result.PresentCount() - before

	if mask && frame.CanvasWidth > 0 && frame.CanvasHeight > 0 {
		result = restore.MaskOutOfCanvas(result, frame.CanvasWidth, frame.CanvasHeight)
	}

	return result.Triplets(), summarize(result, restored)
}

// summarize builds the per-group output summary over resolved points
func summarize(set restore.KeypointSet, restored int) models.GroupSummary {
	summary := models.GroupSummary{
		Total:    len(set),
		Restored: restored,
	}

	var points []r2.Point
	for _, k := range set {
		if k.Missing() {
			summary.Missing++
			continue
		}
		summary.Present++
		points = append(points, k.Point())
	}

	if len(points) > 0 {
		box := geometry.BoundingBox(points)
		center := geometry.Centroid(points)
		summary.MinX, summary.MinY = box.X.Lo, box.Y.Lo
		summary.MaxX, summary.MaxY = box.X.Hi, box.Y.Hi
		summary.CenterX, summary.CenterY = center.X, center.Y
	}

	return summary
}
