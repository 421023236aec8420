package models

// SampleRoom is a room row of the in-memory sample dataset backing the
// listing, dashboard and report pages. Independent of the durable Room
// records the wizard writes.
type SampleRoom struct {
	ID        int      `json:"id"`
	Number    string   `json:"number"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	Status    string   `json:"status"`
	Image     string   `json:"image"`
}

// RoomStatusItem is the compact (number, status) projection the dashboard
// status grid renders.
type RoomStatusItem struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

type Booking struct {
	ID         int     `json:"id"`
	GuestName  string  `json:"guestName"`
	RoomNumber string  `json:"roomNumber"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type Customer struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Bookings   int     `json:"bookings"`
	TotalSpent float64 `json:"totalSpent"`
}

type Staff struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Position   string     `json:"position"`
	Department Department `json:"department"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Shift      Shift      `json:"shift"`
	Status     string     `json:"status"`
	Salary     int        `json:"salary"`
	JoinDate   string     `json:"joinDate"`
	Address    string     `json:"address"`
}

// DashboardStats summarises the sample dataset for the dashboard cards.
type DashboardStats struct {
	AvailableRooms int     `json:"availableRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	TodayBookings  int     `json:"todayBookings"`
	TodayRevenue   float64 `json:"todayRevenue"`
}

// StaffStats summarises the staff roster.
type StaffStats struct {
	Total   int `json:"total"`
	OnDuty  int `json:"onDuty"`
	OnLeave int `json:"onLeave"`
}

// ScheduleEntry is one card of the shift schedule board.
type ScheduleEntry struct {
	StaffID  int    `json:"staffId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Shift    string `json:"shift"`
	Hours    string `json:"hours"`
}
