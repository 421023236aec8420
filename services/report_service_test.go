package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin-backend/models"
)

func TestReportFinancialDerivedColumns(t *testing.T) {
	rows := NewReportService().Financial()
	require.NotEmpty(t, rows)

	for _, row := range rows {
		assert.Equal(t, row.RoomRevenue+row.FoodRevenue+row.OtherRevenue, row.TotalRevenue, row.Date)
		assert.Equal(t, row.TotalRevenue-row.Expenses, row.NetProfit, row.Date)
	}

	assert.Equal(t, float64(12200), rows[0].TotalRevenue)
	assert.Equal(t, float64(7700), rows[0].NetProfit)
}

func TestReportOccupancyDerivedColumns(t *testing.T) {
	rows := NewReportService().Occupancy()
	require.NotEmpty(t, rows)

	for _, row := range rows {
		assert.Equal(t, row.Total-row.Occupied, row.Vacant, row.Type)
		assert.InDelta(t, float64(row.Occupied)/float64(row.Total)*100, row.OccupancyRate, 0.001, row.Type)
	}

	assert.Equal(t, 5, rows[0].Vacant)
	assert.InDelta(t, 75.0, rows[0].OccupancyRate, 0.001)
}

func TestReportKPIs(t *testing.T) {
	kpis := NewReportService().KPIs()

	assert.Equal(t, float64(124850), kpis.TotalRevenue)
	assert.Equal(t, 78.5, kpis.OccupancyRate)
	assert.Equal(t, float64(185), kpis.AverageRate)
	assert.Equal(t, 4.7, kpis.Satisfaction)
}

func TestReportWorkbookSheets(t *testing.T) {
	f, err := NewReportService().Workbook()
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Financial", "Occupancy", "Guests", "Staff Performance"}, sheets)

	header, err := f.GetCellValue("Financial", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	total, err := f.GetCellValue("Financial", "E2")
	require.NoError(t, err)
	assert.Equal(t, "12200", total)
}

func TestBuildStaffWorkbook(t *testing.T) {
	staff := []models.Staff{
		{ID: 1, Name: "John Smith", Position: "Front Desk Manager", Department: "front-desk", Email: "john.smith@hotel.com", Shift: "morning", Status: models.StaffStatusActive, Salary: 4500, JoinDate: "2022-03-15"},
	}

	f, err := BuildStaffWorkbook(staff)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Staff"}, f.GetSheetList())

	name, err := f.GetCellValue("Staff", "B2")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", name)

	// Department and shift export as display labels, not codes.
	dept, err := f.GetCellValue("Staff", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Front Desk", dept)

	shift, err := f.GetCellValue("Staff", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Morning", shift)

	salary, err := f.GetCellValue("Staff", "I2")
	require.NoError(t, err)
	assert.Equal(t, "$4,500.00", salary)

	joined, err := f.GetCellValue("Staff", "J2")
	require.NoError(t, err)
	assert.Equal(t, "Mar 15, 2022", joined)
}
