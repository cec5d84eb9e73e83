package handlers

import (
	"net/http"
	"strconv"

	"bookit/services/profile"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes the per-user profile draft.
type ProfileHandler struct {
	Service profile.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfile returns the current draft; the live preview is the same data.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Get(c.GetString("userID")))
}

// UpdateProfile merges submitted text fields into the draft.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Service.Apply(c.GetString("userID"), fields))
}

type toggleScheduleRequest struct {
	Day  string `json:"day" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

// ToggleSchedule flips one slot of the weekly schedule grid.
func (h *ProfileHandler) ToggleSchedule(c *gin.Context) {
	var req toggleScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.Service.ToggleSchedule(c.GetString("userID"), req.Day, req.Slot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AddService appends an empty service row.
func (h *ProfileHandler) AddService(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.AddService(c.GetString("userID")))
}

// RemoveService deletes the service row at the index path parameter.
func (h *ProfileHandler) RemoveService(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service index"})
		return
	}

	draft, err := h.Service.RemoveService(c.GetString("userID"), index)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

type updateServiceRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateService sets the name or price of one service row.
func (h *ProfileHandler) UpdateService(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service index"})
		return
	}

	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.Service.UpdateService(c.GetString("userID"), index, req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

type addPicturesRequest struct {
	Filenames []string `json:"filenames" binding:"required"`
}

// AddPictures appends ephemeral local references for the given uploads.
func (h *ProfileHandler) AddPictures(c *gin.Context) {
	var req addPicturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Service.AddPictures(c.GetString("userID"), req.Filenames))
}
