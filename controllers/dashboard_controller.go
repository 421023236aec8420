package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
)

// DashboardController aggregates the landing page data: stats cards,
// recent bookings, the room status grid and the activity feed.
type DashboardController struct {
	Store      *services.MockStore
	Activities *services.ActivityLog
}

func NewDashboardController(store *services.MockStore, activities *services.ActivityLog) *DashboardController {
	return &DashboardController{Store: store, Activities: activities}
}

// GET /api/dashboard/stats
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	stats, err := ctrl.Store.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GET /api/dashboard/recent-bookings?limit=
func (ctrl *DashboardController) GetRecentBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	bookings, err := ctrl.Store.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/dashboard/room-status
func (ctrl *DashboardController) GetRoomStatus(c *gin.Context) {
	status, err := ctrl.Store.RoomStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, status)
}

// GET /api/dashboard/activities
func (ctrl *DashboardController) GetActivities(c *gin.Context) {
	entries, err := ctrl.Activities.Entries()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}
