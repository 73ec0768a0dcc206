package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/services"
)

type DeviceHandler struct {
	deviceService services.DeviceService
}

func NewDeviceHandler(deviceService services.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// POST /api/devices
func (dh *DeviceHandler) Create(c *gin.Context) {
	var req struct {
		Manufacturer string `json:"manufacturer"`
		Model        string `json:"model"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	device := domain.Device{
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
	}
	created, err := dh.deviceService.Create(c.Request.Context(), &device)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/devices
func (dh *DeviceHandler) List(c *gin.Context) {
	devices, err := dh.deviceService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, devices)
}

// GET /api/devices/:id
func (dh *DeviceHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid device id")
		return
	}
	device, err := dh.deviceService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, device)
}

// PUT /api/devices/:id
func (dh *DeviceHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid device id")
		return
	}
	var req struct {
		Manufacturer string `json:"manufacturer"`
		Model        string `json:"model"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	device := domain.Device{
		ID:           id,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
	}
	if err := dh.deviceService.Update(c.Request.Context(), &device); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}

// DELETE /api/devices/:id
func (dh *DeviceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid device id")
		return
	}
	if err := dh.deviceService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": "true"})
}
