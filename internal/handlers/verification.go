package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cesarforall/TechManager/internal/services"
)

type VerificationHandler struct {
	verificationService services.VerificationService
}

func NewVerificationHandler(verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

// GET /api/verifications
// Optional update_id query filter; the filtered form also reports the
// remaining pending count for that update.
func (vh *VerificationHandler) List(c *gin.Context) {
	if raw := c.Query("update_id"); raw != "" {
		updateID, err := strconv.Atoi(raw)
		if err != nil {
			RespondBadRequest(c, "invalid update id")
			return
		}
		rows, err := vh.verificationService.GetByUpdateID(c.Request.Context(), updateID)
		if err != nil {
			RespondError(c, err)
			return
		}
		pending, err := vh.verificationService.PendingCount(c.Request.Context(), updateID)
		if err != nil {
			RespondError(c, err)
			return
		}
		RespondOK(c, gin.H{"verifications": rows, "pending": pending})
		return
	}
	rows, err := vh.verificationService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, rows)
}

// POST /api/verifications/confirm
func (vh *VerificationHandler) Confirm(c *gin.Context) {
	var req struct {
		UpdateID     int `json:"update_id"`
		TechnicianID int `json:"technician_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if err := vh.verificationService.Confirm(c.Request.Context(), req.UpdateID, req.TechnicianID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}
