package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/posekit/pose-restore-go/internal/models"
	"github.com/posekit/pose-restore-go/internal/service"
	"github.com/posekit/pose-restore-go/pkg/response"
)

// RestoreHandler handles HTTP requests for pose restoration
type RestoreHandler struct {
	restoreService *service.RestoreService
}

// NewRestoreHandler creates a new restore handler
func NewRestoreHandler(restoreService *service.RestoreService) *RestoreHandler {
	return &RestoreHandler{
		restoreService: restoreService,
	}
}

// Restore handles POST /api/v1/poses/restore
func (h *RestoreHandler) Restore(c *gin.Context) {
	var req models.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.restoreService.Restore(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}
