package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/posekit/pose-restore-go/internal/models"
	"github.com/posekit/pose-restore-go/internal/service"
	"github.com/posekit/pose-restore-go/pkg/response"
)

// ReferenceHandler handles HTTP requests for stored reference poses
type ReferenceHandler struct {
	refService *service.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(refService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		refService: refService,
	}
}

// List handles GET /api/v1/references
func (h *ReferenceHandler) List(c *gin.Context) {
	refs, err := h.refService.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, refs)
}

// Get handles GET /api/v1/references/:name
func (h *ReferenceHandler) Get(c *gin.Context) {
	name := c.Param("name")

	ref, err := h.refService.Get(name)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if ref == nil {
		response.NotFound(c, "Reference not found: "+name)
		return
	}

	response.Success(c, ref)
}

// saveReferenceRequest is the body of POST /api/v1/references
type saveReferenceRequest struct {
	Name  string            `json:"name" binding:"required"`
	Frame *models.PoseFrame `json:"frame" binding:"required"`
}

// Save handles POST /api/v1/references
func (h *ReferenceHandler) Save(c *gin.Context) {
	var req saveReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.refService.Save(req.Name, req.Frame); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"name": req.Name})
}

// Delete handles DELETE /api/v1/references/:name
func (h *ReferenceHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	deleted, err := h.refService.Delete(name)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if !deleted {
		response.NotFound(c, "Reference not found: "+name)
		return
	}

	response.Success(c, gin.H{"name": name})
}
