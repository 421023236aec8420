package services

import "hotel-admin-backend/models"

// Sample dataset the listing pages render. Reseeded on every start.

func seedRooms() []models.SampleRoom {
	return []models.SampleRoom{
		{ID: 1, Number: "101", Type: "single", Price: 120, Capacity: 1, Amenities: []string{"WiFi", "TV", "AC"}, Status: models.RoomStatusAvailable, Image: "room-1.jpg"},
		{ID: 2, Number: "102", Type: "double", Price: 180, Capacity: 2, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar"}, Status: models.RoomStatusOccupied, Image: "room-2.jpg"},
		{ID: 3, Number: "103", Type: "suite", Price: 300, Capacity: 3, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar", "Jacuzzi", "Sea View"}, Status: models.RoomStatusAvailable, Image: "room-3.jpg"},
		{ID: 4, Number: "104", Type: "deluxe", Price: 250, Capacity: 2, Amenities: []string{"WiFi", "TV", "AC", "Breakfast"}, Status: models.RoomStatusMaintenance, Image: "room-4.jpg"},
		{ID: 5, Number: "201", Type: "single", Price: 120, Capacity: 1, Amenities: []string{"WiFi", "TV", "AC"}, Status: models.RoomStatusAvailable, Image: "room-5.jpg"},
		{ID: 6, Number: "202", Type: "double", Price: 180, Capacity: 2, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar"}, Status: models.RoomStatusOccupied, Image: "room-6.jpg"},
		{ID: 7, Number: "203", Type: "suite", Price: 320, Capacity: 4, Amenities: []string{"WiFi", "TV", "AC", "Mini Bar", "Jacuzzi"}, Status: models.RoomStatusAvailable, Image: "room-7.jpg"},
		{ID: 8, Number: "204", Type: "deluxe", Price: 280, Capacity: 2, Amenities: []string{"WiFi", "TV", "AC", "Sea View", "Breakfast"}, Status: models.RoomStatusAvailable, Image: "room-8.jpg"},
	}
}

func seedBookings() []models.Booking {
	return []models.Booking{
		{ID: 1001, GuestName: "John Smith", RoomNumber: "102", CheckIn: "2024-01-15", CheckOut: "2024-01-20", Amount: 900, Status: models.BookingStatusConfirmed},
		{ID: 1002, GuestName: "Emma Wilson", RoomNumber: "103", CheckIn: "2024-01-16", CheckOut: "2024-01-18", Amount: 600, Status: models.BookingStatusConfirmed},
		{ID: 1003, GuestName: "Robert Brown", RoomNumber: "201", CheckIn: "2024-01-17", CheckOut: "2024-01-19", Amount: 240, Status: models.BookingStatusPending},
		{ID: 1004, GuestName: "Sarah Johnson", RoomNumber: "204", CheckIn: "2024-01-15", CheckOut: "2024-01-22", Amount: 1960, Status: models.BookingStatusConfirmed},
		{ID: 1005, GuestName: "Michael Lee", RoomNumber: "202", CheckIn: "2024-01-14", CheckOut: "2024-01-16", Amount: 360, Status: models.BookingStatusCancelled},
	}
}

func seedCustomers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "John Smith", Email: "john@email.com", Phone: "+1234567890", Bookings: 5, TotalSpent: 4500},
		{ID: 2, Name: "Emma Wilson", Email: "emma@email.com", Phone: "+1234567891", Bookings: 3, TotalSpent: 1800},
	}
}

func seedStaff() []models.Staff {
	return []models.Staff{
		{ID: 1, Name: "John Smith", Position: "Front Desk Manager", Department: "front-desk", Email: "john.smith@hotel.com", Phone: "+1 (555) 123-4567", Shift: "morning", Status: models.StaffStatusActive, Salary: 4500, JoinDate: "2022-03-15", Address: "123 Main St, New York"},
		{ID: 2, Name: "Emma Johnson", Position: "Housekeeping Supervisor", Department: "housekeeping", Email: "emma.j@hotel.com", Phone: "+1 (555) 987-6543", Shift: "evening", Status: models.StaffStatusActive, Salary: 3800, JoinDate: "2021-08-22", Address: "456 Park Ave, New York"},
		{ID: 3, Name: "Robert Chen", Position: "Head Chef", Department: "kitchen", Email: "robert.c@hotel.com", Phone: "+1 (555) 456-7890", Shift: "flexible", Status: models.StaffStatusActive, Salary: 5200, JoinDate: "2020-11-10", Address: "789 Broadway, New York"},
		{ID: 4, Name: "Sarah Wilson", Position: "General Manager", Department: "management", Email: "sarah.w@hotel.com", Phone: "+1 (555) 321-0987", Shift: "morning", Status: models.StaffStatusActive, Salary: 6800, JoinDate: "2019-05-18", Address: "101 Luxury Lane, New York"},
		{ID: 5, Name: "Michael Brown", Position: "Security Chief", Department: "security", Email: "michael.b@hotel.com", Phone: "+1 (555) 654-3210", Shift: "night", Status: models.StaffStatusActive, Salary: 4200, JoinDate: "2023-01-25", Address: "202 Safety St, New York"},
		{ID: 6, Name: "Lisa Taylor", Position: "Receptionist", Department: "front-desk", Email: "lisa.t@hotel.com", Phone: "+1 (555) 789-0123", Shift: "evening", Status: models.StaffStatusOnLeave, Salary: 3200, JoinDate: "2022-09-14", Address: "303 Welcome Rd, New York"},
		{ID: 7, Name: "David Miller", Position: "Housekeeper", Department: "housekeeping", Email: "david.m@hotel.com", Phone: "+1 (555) 234-5678", Shift: "morning", Status: models.StaffStatusActive, Salary: 2800, JoinDate: "2023-03-30", Address: "404 Clean St, New York"},
		{ID: 8, Name: "Jennifer Lee", Position: "Sous Chef", Department: "kitchen", Email: "jennifer.l@hotel.com", Phone: "+1 (555) 876-5432", Shift: "evening", Status: models.StaffStatusActive, Salary: 4100, JoinDate: "2021-12-05", Address: "505 Food Ave, New York"},
	}
}
