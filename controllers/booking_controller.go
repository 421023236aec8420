package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
	"hotel-admin-backend/validator"
)

type BookingController struct {
	Store *services.MockStore
}

func NewBookingController(store *services.MockStore) *BookingController {
	return &BookingController{Store: store}
}

// GET /api/bookings?limit=
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	bookings, err := ctrl.Store.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := ctrl.Store.Booking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validator.ValidateNewBooking(&booking); err != nil {
		respondError(c, err)
		return
	}

	created, err := ctrl.Store.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONNotice(c, http.StatusCreated, created, "Booking created", utils.SeveritySuccess)
}
