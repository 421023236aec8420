package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GET /api/reports/kpis
func (ctrl *ReportController) GetKPIs(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.KPIs())
}

// GET /api/reports/financial
func (ctrl *ReportController) GetFinancial(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.Financial())
}

// GET /api/reports/occupancy
func (ctrl *ReportController) GetOccupancy(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.Occupancy())
}

// GET /api/reports/guests
func (ctrl *ReportController) GetGuests(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.Guests())
}

// GET /api/reports/staff-performance
func (ctrl *ReportController) GetStaffPerformance(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.StaffPerformance())
}

// GET /api/reports/export
func (ctrl *ReportController) ExportReport(c *gin.Context) {
	f, err := ctrl.Reports.Workbook()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("hotel-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("⚠️ report export write failed: %v", err)
	}
}
