package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/posekit/pose-restore-go/internal/models"
)

// ReferenceRepository handles database operations for stored reference
// poses
type ReferenceRepository struct {
	db *sql.DB
}

// NewReferenceRepository creates a new reference repository
func NewReferenceRepository(db *sql.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// List retrieves all stored references, newest first
func (r *ReferenceRepository) List() ([]models.ReferenceInfo, error) {
	query := `SELECT id, name, people, created_at, updated_at
		FROM reference_poses ORDER BY updated_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query references: %w", err)
	}
	defer rows.Close()

	var refs []models.ReferenceInfo
	for rows.Next() {
		var ref models.ReferenceInfo
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.People, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reference: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// Get retrieves a stored reference by name. Returns (nil, nil) when no
// reference with that name exists.
func (r *ReferenceRepository) Get(name string) (*models.ReferencePose, error) {
	query := `SELECT id, name, frame_json, created_at, updated_at
		FROM reference_poses WHERE name = ?`

	var ref models.ReferencePose
	var frameJSON string
	err := r.db.QueryRow(query, name).Scan(&ref.ID, &ref.Name, &frameJSON, &ref.CreatedAt, &ref.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reference %q: %w", name, err)
	}

	var frame models.PoseFrame
	if err := json.Unmarshal([]byte(frameJSON), &frame); err != nil {
		return nil, fmt.Errorf("failed to decode reference %q: %w", name, err)
	}
	ref.Frame = &frame

	return &ref, nil
}

// Save stores a reference frame under the given name, replacing any
// existing frame with that name
func (r *ReferenceRepository) Save(name string, frame *models.PoseFrame) error {
	frameJSON, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to encode reference %q: %w", name, err)
	}

	query := `
		INSERT INTO reference_poses (name, frame_json, people)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			frame_json = excluded.frame_json,
			people = excluded.people,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.Exec(query, name, string(frameJSON), len(frame.People)); err != nil {
		return fmt.Errorf("failed to save reference %q: %w", name, err)
	}

	return nil
}

// Delete removes a stored reference by name. Returns whether a row was
// deleted.
func (r *ReferenceRepository) Delete(name string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM reference_poses WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete reference %q: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
