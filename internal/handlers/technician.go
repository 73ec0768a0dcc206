package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/services"
)

type TechnicianHandler struct {
	technicianService services.TechnicianService
	knowledgeService  services.KnowledgeService
}

func NewTechnicianHandler(technicianService services.TechnicianService, knowledgeService services.KnowledgeService) *TechnicianHandler {
	return &TechnicianHandler{
		technicianService: technicianService,
		knowledgeService:  knowledgeService,
	}
}

type technicianRequest struct {
	Name            string  `json:"name"`
	Surname         string  `json:"surname"`
	Drawer          *int    `json:"drawer"`
	Workstation     *string `json:"workstation"`
	WorkstationUser *string `json:"workstation_user"`
}

// POST /api/technicians
func (th *TechnicianHandler) Create(c *gin.Context) {
	var req technicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	technician := domain.Technician{
		Name:            req.Name,
		Surname:         req.Surname,
		Drawer:          req.Drawer,
		Workstation:     req.Workstation,
		WorkstationUser: req.WorkstationUser,
	}
	created, err := th.technicianService.Create(c.Request.Context(), &technician)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/technicians
func (th *TechnicianHandler) List(c *gin.Context) {
	technicians, err := th.technicianService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, technicians)
}

// GET /api/technicians/:id
func (th *TechnicianHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid technician id")
		return
	}
	technician, err := th.technicianService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, technician)
}

// PUT /api/technicians/:id
func (th *TechnicianHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid technician id")
		return
	}
	var req technicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	technician := domain.Technician{
		ID:              id,
		Name:            req.Name,
		Surname:         req.Surname,
		Drawer:          req.Drawer,
		Workstation:     req.Workstation,
		WorkstationUser: req.WorkstationUser,
	}
	if err := th.technicianService.Update(c.Request.Context(), &technician); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}

// DELETE /api/technicians/:id
func (th *TechnicianHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid technician id")
		return
	}
	if err := th.technicianService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}

// GET /api/technicians/drawer/:drawer
func (th *TechnicianHandler) GetByDrawer(c *gin.Context) {
	drawer, err := strconv.Atoi(c.Param("drawer"))
	if err != nil {
		RespondBadRequest(c, "invalid drawer number")
		return
	}
	technician, err := th.technicianService.GetByDrawer(c.Request.Context(), drawer)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, technician)
}

// GET /api/technicians/:id/available-devices
func (th *TechnicianHandler) AvailableDevices(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid technician id")
		return
	}
	devices, err := th.knowledgeService.AvailableDevices(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, devices)
}
