package models

// ReferencePose is a stored, named reference frame used as the
// geometric template for restoration.
type ReferencePose struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Frame     *PoseFrame `json:"frame"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// ReferenceInfo is the listing view of a stored reference (no frame
// payload).
type ReferenceInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	People    int    `json:"people"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
