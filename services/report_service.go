package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hotel-admin-backend/models"
	"hotel-admin-backend/utils"
)

// ReportKPIs are the headline numbers on the reports page.
type ReportKPIs struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	OccupancyRate float64 `json:"occupancyRate"`
	AverageRate   float64 `json:"averageRate"`
	Satisfaction  float64 `json:"satisfaction"`
}

// FinancialRow is one day of the financial breakdown. TotalRevenue and
// NetProfit are derived from the base figures.
type FinancialRow struct {
	Date         string  `json:"date"`
	RoomRevenue  float64 `json:"roomRevenue"`
	FoodRevenue  float64 `json:"foodRevenue"`
	OtherRevenue float64 `json:"otherRevenue"`
	TotalRevenue float64 `json:"totalRevenue"`
	Expenses     float64 `json:"expenses"`
	NetProfit    float64 `json:"netProfit"`
}

// OccupancyRow summarises one room category.
type OccupancyRow struct {
	Type          string  `json:"type"`
	Total         int     `json:"total"`
	Occupied      int     `json:"occupied"`
	Vacant        int     `json:"vacant"`
	OccupancyRate float64 `json:"occupancyRate"`
	AvgRate       float64 `json:"avgRate"`
	Revenue       float64 `json:"revenue"`
}

// GuestRow summarises one guest segment.
type GuestRow struct {
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	AvgStay      float64 `json:"avgStay"`
	AvgSpend     float64 `json:"avgSpend"`
	RepeatRate   int     `json:"repeatRate"`
	Satisfaction float64 `json:"satisfaction"`
}

// StaffPerformanceRow is one row of the staff performance table.
type StaffPerformanceRow struct {
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Shifts      int     `json:"shifts"`
	Rating      float64 `json:"rating"`
	Efficiency  int     `json:"efficiency"`
	Performance string  `json:"performance"`
}

// ReportService serves the report page datasets. Like the rest of the
// sample data these are fixed figures, with the derived columns computed
// here rather than hardcoded.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

func (s *ReportService) KPIs() ReportKPIs {
	return ReportKPIs{
		TotalRevenue:  124850,
		OccupancyRate: 78.5,
		AverageRate:   185,
		Satisfaction:  4.7,
	}
}

func (s *ReportService) Financial() []FinancialRow {
	rows := []FinancialRow{
		{Date: "2024-01-01", RoomRevenue: 8500, FoodRevenue: 2500, OtherRevenue: 1200, Expenses: 4500},
		{Date: "2024-01-02", RoomRevenue: 9200, FoodRevenue: 2800, OtherRevenue: 1500, Expenses: 4800},
		{Date: "2024-01-03", RoomRevenue: 8900, FoodRevenue: 2600, OtherRevenue: 1300, Expenses: 4700},
		{Date: "2024-01-04", RoomRevenue: 9500, FoodRevenue: 3000, OtherRevenue: 1800, Expenses: 5200},
		{Date: "2024-01-05", RoomRevenue: 11000, FoodRevenue: 3500, OtherRevenue: 2200, Expenses: 6200},
	}
	for i := range rows {
		rows[i].TotalRevenue = rows[i].RoomRevenue + rows[i].FoodRevenue + rows[i].OtherRevenue
		rows[i].NetProfit = rows[i].TotalRevenue - rows[i].Expenses
	}
	return rows
}

func (s *ReportService) Occupancy() []OccupancyRow {
	rows := []OccupancyRow{
		{Type: "Single", Total: 20, Occupied: 15, AvgRate: 120, Revenue: 18000},
		{Type: "Double", Total: 30, Occupied: 25, AvgRate: 180, Revenue: 45000},
		{Type: "Suite", Total: 15, Occupied: 12, AvgRate: 320, Revenue: 38400},
		{Type: "Deluxe", Total: 10, Occupied: 8, AvgRate: 280, Revenue: 22400},
	}
	for i := range rows {
		rows[i].Vacant = rows[i].Total - rows[i].Occupied
		rows[i].OccupancyRate = float64(rows[i].Occupied) / float64(rows[i].Total) * 100
	}
	return rows
}

func (s *ReportService) Guests() []GuestRow {
	return []GuestRow{
		{Type: "Business", Count: 85, AvgStay: 2.5, AvgSpend: 450, RepeatRate: 65, Satisfaction: 4.8},
		{Type: "Leisure", Count: 120, AvgStay: 4.2, AvgSpend: 320, RepeatRate: 45, Satisfaction: 4.5},
		{Type: "Family", Count: 65, AvgStay: 5.1, AvgSpend: 550, RepeatRate: 55, Satisfaction: 4.7},
		{Type: "International", Count: 45, AvgStay: 3.8, AvgSpend: 420, RepeatRate: 35, Satisfaction: 4.6},
	}
}

func (s *ReportService) StaffPerformance() []StaffPerformanceRow {
	return []StaffPerformanceRow{
		{Name: "John Smith", Department: "Front Desk", Shifts: 22, Rating: 4.9, Efficiency: 95, Performance: "Excellent"},
		{Name: "Emma Johnson", Department: "Housekeeping", Shifts: 20, Rating: 4.7, Efficiency: 92, Performance: "Excellent"},
		{Name: "Robert Chen", Department: "Kitchen", Shifts: 18, Rating: 4.8, Efficiency: 90, Performance: "Good"},
		{Name: "Sarah Wilson", Department: "Management", Shifts: 19, Rating: 4.6, Efficiency: 88, Performance: "Good"},
		{Name: "Michael Brown", Department: "Security", Shifts: 21, Rating: 4.5, Efficiency: 85, Performance: "Average"},
	}
}

// Workbook builds the full report as an Excel file, one sheet per section.
func (s *ReportService) Workbook() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Financial"); err != nil {
		return nil, err
	}
	if err := setRow(f, "Financial", 1, "Date", "Room Revenue", "F&B Revenue", "Other Revenue", "Total Revenue", "Expenses", "Net Profit"); err != nil {
		return nil, err
	}
	for i, row := range s.Financial() {
		if err := setRow(f, "Financial", i+2, row.Date, row.RoomRevenue, row.FoodRevenue, row.OtherRevenue, row.TotalRevenue, row.Expenses, row.NetProfit); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Occupancy"); err != nil {
		return nil, err
	}
	if err := setRow(f, "Occupancy", 1, "Room Type", "Total", "Occupied", "Vacant", "Occupancy %", "Avg Rate", "Revenue"); err != nil {
		return nil, err
	}
	for i, row := range s.Occupancy() {
		if err := setRow(f, "Occupancy", i+2, row.Type, row.Total, row.Occupied, row.Vacant, row.OccupancyRate, row.AvgRate, row.Revenue); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Guests"); err != nil {
		return nil, err
	}
	if err := setRow(f, "Guests", 1, "Guest Type", "Count", "Avg Stay (days)", "Avg Spend", "Repeat %", "Satisfaction"); err != nil {
		return nil, err
	}
	for i, row := range s.Guests() {
		if err := setRow(f, "Guests", i+2, row.Type, row.Count, row.AvgStay, row.AvgSpend, row.RepeatRate, row.Satisfaction); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Staff Performance"); err != nil {
		return nil, err
	}
	if err := setRow(f, "Staff Performance", 1, "Name", "Department", "Shifts", "Rating", "Efficiency %", "Performance"); err != nil {
		return nil, err
	}
	for i, row := range s.StaffPerformance() {
		if err := setRow(f, "Staff Performance", i+2, row.Name, row.Department, row.Shifts, row.Rating, row.Efficiency, row.Performance); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildStaffWorkbook exports the staff roster as a single-sheet Excel file.
func BuildStaffWorkbook(staff []models.Staff) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Staff"); err != nil {
		return nil, err
	}
	if err := setRow(f, "Staff", 1, "ID", "Name", "Position", "Department", "Email", "Phone", "Shift", "Status", "Salary", "Join Date"); err != nil {
		return nil, err
	}
	for i, member := range staff {
		if err := setRow(f, "Staff", i+2,
			member.ID, member.Name, member.Position, member.Department.Label(),
			member.Email, member.Phone, member.Shift.Label(), member.Status,
			utils.FormatCurrency(float64(member.Salary)), utils.FormatDate(member.JoinDate)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	return f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
}
