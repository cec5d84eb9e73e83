package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookit/services/booking"
)

func newBookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(booking.NewInMemoryBookingRegistry(), zap.NewNop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
	})
	router.GET("/bookings", h.ListBookings)
	router.POST("/bookings/:id/confirm", h.ConfirmBooking)
	router.POST("/bookings/:id/cancel", h.CancelBooking)
	router.GET("/bookings/print", h.PrintBookings)
	return router
}

type bookingListResponse struct {
	Upcoming []struct {
		ID      int    `json:"id"`
		Status  string `json:"status"`
		Actions struct {
			CanConfirm bool `json:"canConfirm"`
			CanCancel  bool `json:"canCancel"`
		} `json:"actions"`
	} `json:"upcoming"`
	Past []struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	} `json:"past"`
}

func TestListBookings(t *testing.T) {
	router := newBookingRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp bookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The seed data is all dated 2025, so by now everything is past.
	assert.Empty(t, resp.Upcoming)
	require.Len(t, resp.Past, 3)
	assert.Equal(t, "Pending", resp.Past[0].Status)
}

func TestConfirmBooking(t *testing.T) {
	router := newBookingRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/1/confirm", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []struct {
			ID      int    `json:"id"`
			Status  string `json:"status"`
			Actions struct {
				CanConfirm bool `json:"canConfirm"`
				CanCancel  bool `json:"canCancel"`
			} `json:"actions"`
		} `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, "Confirmed", resp.Bookings[0].Status)
	assert.False(t, resp.Bookings[0].Actions.CanConfirm)
	assert.True(t, resp.Bookings[0].Actions.CanCancel)
}

func TestCancelBooking_BadID(t *testing.T) {
	router := newBookingRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/xyz/cancel", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrintBookings(t *testing.T) {
	router := newBookingRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/print", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Alice Johnson")
}
