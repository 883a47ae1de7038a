package models

// Person holds one person's keypoint groups in the OpenPose JSON
// layout: flat [x, y, confidence, ...] triplet arrays. Absent groups
// are nil.
type Person struct {
	PersonID             []int     `json:"person_id,omitempty"`
	PoseKeypoints2D      []float64 `json:"pose_keypoints_2d,omitempty"`
	FaceKeypoints2D      []float64 `json:"face_keypoints_2d,omitempty"`
	HandLeftKeypoints2D  []float64 `json:"hand_left_keypoints_2d,omitempty"`
	HandRightKeypoints2D []float64 `json:"hand_right_keypoints_2d,omitempty"`
}

// PoseFrame is one OpenPose-style frame: the detected people plus the
// canvas the coordinates refer to.
type PoseFrame struct {
	People       []Person `json:"people"`
	CanvasWidth  int      `json:"canvas_width,omitempty"`
	CanvasHeight int      `json:"canvas_height,omitempty"`
}

// RestoreOptions controls a restoration call. Geometry is unaffected;
// the options cover only strategy, confidence scaling and export
// masking.
type RestoreOptions struct {
	Mode                      string  `json:"mode"`
	ReduceConfidence          bool    `json:"reduce_confidence"`
	ConfidenceReductionFactor float64 `json:"confidence_reduction_factor"`
	MaskOutOfCanvas           bool    `json:"mask_out_of_canvas"`
}

// RestoreRequest is the body of POST /api/v1/poses/restore. The
// reference is supplied inline or by the name of a stored reference.
type RestoreRequest struct {
	Pose          *PoseFrame     `json:"pose"`
	Reference     *PoseFrame     `json:"reference,omitempty"`
	ReferenceName string         `json:"reference_name,omitempty"`
	Options       RestoreOptions `json:"options"`
}

// GroupSummary describes one keypoint group of the restored output.
type GroupSummary struct {
	Total    int     `json:"total"`
	Present  int     `json:"present"`
	Restored int     `json:"restored"`
	Missing  int     `json:"missing"`
	MinX     float64 `json:"min_x"`
	MinY     float64 `json:"min_y"`
	MaxX     float64 `json:"max_x"`
	MaxY     float64 `json:"max_y"`
	CenterX  float64 `json:"center_x"`
	CenterY  float64 `json:"center_y"`
}

// RestoreResponse is the restored frame plus per-group summaries
// (keyed "body", "face", "hand_left", "hand_right").
type RestoreResponse struct {
	Pose      *PoseFrame              `json:"pose"`
	Summaries map[string]GroupSummary `json:"summaries"`
}
