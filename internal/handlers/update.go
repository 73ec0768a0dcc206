package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/services"
)

type UpdateHandler struct {
	updateService services.UpdateService
}

func NewUpdateHandler(updateService services.UpdateService) *UpdateHandler {
	return &UpdateHandler{updateService: updateService}
}

// POST /api/updates
func (uh *UpdateHandler) Create(c *gin.Context) {
	var req struct {
		DeviceID    int    `json:"device_id"`
		Version     string `json:"version"`
		Description string `json:"description"`
		Date        string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	update := domain.Update{
		DeviceID:    req.DeviceID,
		Version:     req.Version,
		Description: req.Description,
		Date:        req.Date,
	}
	created, err := uh.updateService.Create(c.Request.Context(), &update)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/updates
// Optional device_id query filter.
func (uh *UpdateHandler) List(c *gin.Context) {
	if raw := c.Query("device_id"); raw != "" {
		deviceID, err := strconv.Atoi(raw)
		if err != nil {
			RespondBadRequest(c, "invalid device id")
			return
		}
		updates, err := uh.updateService.GetByDeviceID(c.Request.Context(), deviceID)
		if err != nil {
			RespondError(c, err)
			return
		}
		RespondOK(c, updates)
		return
	}
	updates, err := uh.updateService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, updates)
}

// GET /api/updates/:id
func (uh *UpdateHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid update id")
		return
	}
	update, err := uh.updateService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, update)
}

// DELETE /api/updates/:id
func (uh *UpdateHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid update id")
		return
	}
	if err := uh.updateService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}
