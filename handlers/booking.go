package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bookit/models"
	"bookit/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the per-user booking registry.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

type bookingView struct {
	models.Booking
	Actions booking.Actions `json:"actions"`
}

func bookingViews(bookings []models.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{Booking: b, Actions: booking.ActionsFor(b.Status)})
	}
	return views
}

// ListBookings returns the user's bookings split into upcoming and past.
// The split is recomputed against the current clock on every request.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetString("userID")
	upcoming, past := h.Service.Partition(userID, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"upcoming": bookingViews(upcoming),
		"past":     bookingViews(past),
	})
}

// ConfirmBooking sets a booking's status to Confirmed.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.setStatus(c, h.Service.Confirm)
}

// CancelBooking sets a booking's status to Cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.setStatus(c, h.Service.Cancel)
}

func (h *BookingHandler) setStatus(c *gin.Context, apply func(userID string, id int)) {
	userID := c.GetString("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	apply(userID, id)
	c.JSON(http.StatusOK, gin.H{"bookings": bookingViews(h.Service.List(userID))})
}

// PrintBookings renders the printable booking report document.
func (h *BookingHandler) PrintBookings(c *gin.Context) {
	userID := c.GetString("userID")
	doc, err := h.Service.RenderPrintableReport(userID, time.Now())
	if err != nil {
		h.Logger.Error("Failed to render booking report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render booking report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
