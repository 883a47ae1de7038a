package service

import (
	"fmt"

	"github.com/posekit/pose-restore-go/internal/models"
	"github.com/posekit/pose-restore-go/internal/repository"
)

// ReferenceService handles business logic for stored reference poses
type ReferenceService struct {
	refRepo *repository.ReferenceRepository
}

// NewReferenceService creates a new reference service
func NewReferenceService(refRepo *repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{refRepo: refRepo}
}

// List returns all stored references
func (s *ReferenceService) List() ([]models.ReferenceInfo, error) {
	refs, err := s.refRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	return refs, nil
}

// Get returns a stored reference by name. Returns (nil, nil) when the
// name is unknown.
func (s *ReferenceService) Get(name string) (*models.ReferencePose, error) {
	if name == "" {
		return nil, fmt.Errorf("reference name is required")
	}
	return s.refRepo.Get(name)
}

// Save validates and stores a named reference frame
func (s *ReferenceService) Save(name string, frame *models.PoseFrame) error {
	if name == "" {
		return fmt.Errorf("reference name is required")
	}
	if frame == nil || len(frame.People) == 0 {
		return fmt.Errorf("reference frame with at least one person is required")
	}

	if err := s.refRepo.Save(name, frame); err != nil {
		return fmt.Errorf("failed to save reference: %w", err)
	}
	return nil
}

// Delete removes a stored reference. Returns whether it existed.
func (s *ReferenceService) Delete(name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("reference name is required")
	}
	return s.refRepo.Delete(name)
}
