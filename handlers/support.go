package handlers

import (
	"errors"
	"net/http"

	"bookit/models"
	"bookit/services/support"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SupportHandler exposes the per-user support ticket registry.
type SupportHandler struct {
	Service support.SupportService
}

// NewSupportHandler creates a new SupportHandler.
func NewSupportHandler(svc support.SupportService) *SupportHandler {
	return &SupportHandler{Service: svc}
}

// ListTickets returns the user's submitted tickets, newest first.
func (h *SupportHandler) ListTickets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickets": h.Service.List(c.GetString("userID"))})
}

// SubmitTicket validates and records a support ticket. Validation failures
// are returned as a single user-visible message; a success clears the form
// on the client side.
func (h *SupportHandler) SubmitTicket(c *gin.Context) {
	var form models.TicketForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.Service.Submit(c.GetString("userID"), form)
	if err != nil {
		var vErr support.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		getLogger(c).Error("Ticket submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit ticket"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket submitted successfully!",
		"ticket":  ticket,
		"form":    models.TicketForm{},
	})
}
