package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/services"
)

type KnowledgeHandler struct {
	knowledgeService services.KnowledgeService
}

func NewKnowledgeHandler(knowledgeService services.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

// POST /api/knowledge
func (kh *KnowledgeHandler) Create(c *gin.Context) {
	var req struct {
		TechnicianID int `json:"technician_id"`
		DeviceID     int `json:"device_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	knowledge := domain.Knowledge{
		TechnicianID: req.TechnicianID,
		DeviceID:     req.DeviceID,
	}
	created, err := kh.knowledgeService.Create(c.Request.Context(), &knowledge)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, created)
}

// POST /api/knowledge/bulk
// Onboards one technician onto several devices at once.
func (kh *KnowledgeHandler) CreateBulk(c *gin.Context) {
	var req struct {
		TechnicianID int   `json:"technician_id"`
		DeviceIDs    []int `json:"device_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	created, err := kh.knowledgeService.CreateForDevices(c.Request.Context(), req.TechnicianID, req.DeviceIDs)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/knowledge
// Optional technician_id / device_id query filters.
func (kh *KnowledgeHandler) List(c *gin.Context) {
	if raw := c.Query("technician_id"); raw != "" {
		technicianID, err := strconv.Atoi(raw)
		if err != nil {
			RespondBadRequest(c, "invalid technician id")
			return
		}
		rows, err := kh.knowledgeService.GetByTechnicianID(c.Request.Context(), technicianID)
		if err != nil {
			RespondError(c, err)
			return
		}
		RespondOK(c, rows)
		return
	}
	if raw := c.Query("device_id"); raw != "" {
		deviceID, err := strconv.Atoi(raw)
		if err != nil {
			RespondBadRequest(c, "invalid device id")
			return
		}
		rows, err := kh.knowledgeService.GetByDeviceID(c.Request.Context(), deviceID)
		if err != nil {
			RespondError(c, err)
			return
		}
		RespondOK(c, rows)
		return
	}
	rows, err := kh.knowledgeService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, rows)
}

// DELETE /api/knowledge/:id
func (kh *KnowledgeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid knowledge id")
		return
	}
	if err := kh.knowledgeService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}
