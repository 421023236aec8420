package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
	"hotel-admin-backend/validator"
)

type StaffController struct {
	Store *services.MockStore
}

func NewStaffController(store *services.MockStore) *StaffController {
	return &StaffController{Store: store}
}

// GET /api/staff?department=&status=&search=
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	filter := services.StaffFilter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}

	staff, err := ctrl.Store.Staff(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

// GET /api/staff/stats
func (ctrl *StaffController) GetStats(c *gin.Context) {
	stats, err := ctrl.Store.StaffStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GET /api/staff/schedule
func (ctrl *StaffController) GetSchedule(c *gin.Context) {
	schedule, err := ctrl.Store.ShiftSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}

// GET /api/staff/export
func (ctrl *StaffController) ExportStaff(c *gin.Context) {
	staff, err := ctrl.Store.Staff(c.Request.Context(), services.StaffFilter{})
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := services.BuildStaffWorkbook(staff)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("staff-roster-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("⚠️ staff export write failed: %v", err)
	}
}

// GET /api/staff/:id
func (ctrl *StaffController) GetStaffMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid staff id")
		return
	}

	member, err := ctrl.Store.StaffByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}

// POST /api/staff
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validator.ValidateNewStaff(&member); err != nil {
		respondError(c, err)
		return
	}

	created, err := ctrl.Store.AddStaff(c.Request.Context(), member)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONNotice(c, http.StatusCreated, created, "Staff member added", utils.SeveritySuccess)
}

// PUT /api/staff/:id
func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid staff id")
		return
	}

	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	updated, err := ctrl.Store.UpdateStaff(c.Request.Context(), id, member)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DELETE /api/staff/:id
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid staff id")
		return
	}

	member, err := ctrl.Store.DeleteStaff(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONNotice(c, http.StatusOK, member, "Staff member removed", utils.SeverityInfo)
}
