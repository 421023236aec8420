package models

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Booking status
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Staff status
const (
	StaffStatusActive   = "active"
	StaffStatusOnLeave  = "on-leave"
	StaffStatusInactive = "inactive"
)
