package restore

// CorrespondenceThreshold is the minimum confidence a keypoint needs,
// in both the current and the reference set, to contribute a
// correspondence pair to affine estimation. Fixed design constant.
const CorrespondenceThreshold = 0.3

// Keypoint counts per group, OpenPose layout.
const (
	BodyKeypoints = 18
	HandKeypoints = 21
	FaceKeypoints = 70
)

// FaceCenterIndex is the nose-tip landmark in the 70-point face layout,
// used as the preferred anchor when several resolved anchors tie for
// nearest.
const FaceCenterIndex = 30

// Edge is one child-parent relation in a skeleton hierarchy.
type Edge struct {
	Child  int
	Parent int
}

// Topology is an immutable parent table for one skeleton group. Edges
// are listed in a fixed parent-before-child order so that a single
// in-order traversal lets restored parents serve as parents for their
// own children (cascading restoration). Topologies are process-wide
// constants, shared read-only by all restoration calls.
type Topology struct {
	Name  string
	Size  int
	Edges []Edge
}

// Body is the 18-point OpenPose body topology, rooted at the neck (1).
//
//	0 nose, 1 neck, 2/5 shoulders, 3/6 elbows, 4/7 wrists,
//	8/11 hips, 9/12 knees, 10/13 ankles, 14/15 eyes, 16/17 ears
//
// The neck has no parent and is never restored hierarchically.
var Body = Topology{
	Name: "body",
	Size: BodyKeypoints,
	Edges: []Edge{
		{Child: 0, Parent: 1},   // nose <- neck
		{Child: 2, Parent: 1},   // right shoulder <- neck
		{Child: 5, Parent: 1},   // left shoulder <- neck
		{Child: 8, Parent: 1},   // right hip <- neck
		{Child: 11, Parent: 1},  // left hip <- neck
		{Child: 3, Parent: 2},   // right elbow <- right shoulder
		{Child: 4, Parent: 3},   // right wrist <- right elbow
		{Child: 6, Parent: 5},   // left elbow <- left shoulder
		{Child: 7, Parent: 6},   // left wrist <- left elbow
		{Child: 9, Parent: 8},   // right knee <- right hip
		{Child: 10, Parent: 9},  // right ankle <- right knee
		{Child: 12, Parent: 11}, // left knee <- left hip
		{Child: 13, Parent: 12}, // left ankle <- left knee
		{Child: 14, Parent: 0},  // right eye <- nose
		{Child: 15, Parent: 0},  // left eye <- nose
		{Child: 16, Parent: 14}, // right ear <- right eye
		{Child: 17, Parent: 15}, // left ear <- left eye
	},
}

// Hand is the 21-point hand topology: wrist (0) root, five finger
// chains of four joints each. Used for both left and right hands.
var Hand = Topology{
	Name: "hand",
	Size: HandKeypoints,
	Edges: []Edge{
		{Child: 1, Parent: 0}, {Child: 2, Parent: 1}, {Child: 3, Parent: 2}, {Child: 4, Parent: 3}, // thumb
		{Child: 5, Parent: 0}, {Child: 6, Parent: 5}, {Child: 7, Parent: 6}, {Child: 8, Parent: 7}, // index
		{Child: 9, Parent: 0}, {Child: 10, Parent: 9}, {Child: 11, Parent: 10}, {Child: 12, Parent: 11}, // middle
		{Child: 13, Parent: 0}, {Child: 14, Parent: 13}, {Child: 15, Parent: 14}, {Child: 16, Parent: 15}, // ring
		{Child: 17, Parent: 0}, {Child: 18, Parent: 17}, {Child: 19, Parent: 18}, {Child: 20, Parent: 19}, // little
	},
}
