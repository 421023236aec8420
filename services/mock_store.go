package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
)

// RoomFilter narrows the rooms listing.
type RoomFilter struct {
	Type   string
	Status string
	Search string
}

// StaffFilter narrows the staff roster.
type StaffFilter struct {
	Department string
	Status     string
	Search     string
}

// SampleRoomUpdate is a partial update; nil fields are left untouched.
type SampleRoomUpdate struct {
	Number    *string   `json:"number"`
	Type      *string   `json:"type"`
	Price     *float64  `json:"price"`
	Capacity  *int      `json:"capacity"`
	Amenities *[]string `json:"amenities"`
	Status    *string   `json:"status"`
}

// MockStore is the in-memory sample dataset behind the listing, dashboard
// and staff pages. It is reseeded on every start and is independent of the
// durable store the wizard writes to. The configurable latency stands in
// for a backend round trip; zero disables it.
type MockStore struct {
	mu      sync.RWMutex
	latency time.Duration

	rooms     []models.SampleRoom
	bookings  []models.Booking
	customers []models.Customer
	staff     []models.Staff
}

func NewMockStore(latency time.Duration) *MockStore {
	return &MockStore{
		latency:   latency,
		rooms:     seedRooms(),
		bookings:  seedBookings(),
		customers: seedCustomers(),
		staff:     seedStaff(),
	}
}

// wait applies the simulated per-request delay; cancellable via ctx.
func (s *MockStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MockStore) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if err := s.wait(ctx); err != nil {
		return models.DashboardStats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.DashboardStats{TodayBookings: len(s.bookings)}
	for _, room := range s.rooms {
		switch room.Status {
		case models.RoomStatusAvailable:
			stats.AvailableRooms++
		case models.RoomStatusOccupied:
			stats.OccupiedRooms++
		}
	}
	for _, booking := range s.bookings {
		stats.TodayRevenue += booking.Amount
	}
	return stats, nil
}

func (s *MockStore) RecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.bookings) {
		limit = len(s.bookings)
	}
	out := make([]models.Booking, limit)
	copy(out, s.bookings[:limit])
	return out, nil
}

func (s *MockStore) Booking(ctx context.Context, id int) (models.Booking, error) {
	if err := s.wait(ctx); err != nil {
		return models.Booking{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, booking := range s.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return models.Booking{}, errors.ErrBookingNotFound
}

// CreateBooking front-inserts a confirmed booking, ids starting at 1001.
func (s *MockStore) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if err := s.wait(ctx); err != nil {
		return models.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = 1001 + len(s.bookings)
	booking.Status = models.BookingStatusConfirmed
	s.bookings = append([]models.Booking{booking}, s.bookings...)
	return booking, nil
}

func (s *MockStore) RoomStatus(ctx context.Context) ([]models.RoomStatusItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.RoomStatusItem, 0, len(s.rooms))
	for _, room := range s.rooms {
		items = append(items, models.RoomStatusItem{Number: room.Number, Status: room.Status})
	}
	return items, nil
}

// Rooms applies the type/status/search filters the rooms page offers.
// Search matches the room number or type, case-insensitive.
func (s *MockStore) Rooms(ctx context.Context, filter RoomFilter) ([]models.SampleRoom, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SampleRoom, 0, len(s.rooms))
	term := strings.ToLower(filter.Search)
	for _, room := range s.rooms {
		if filter.Type != "" && room.Type != filter.Type {
			continue
		}
		if filter.Status != "" && room.Status != filter.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(room.Number), term) &&
			!strings.Contains(strings.ToLower(room.Type), term) {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (s *MockStore) AddRoom(ctx context.Context, room models.SampleRoom) (models.SampleRoom, error) {
	if err := s.wait(ctx); err != nil {
		return models.SampleRoom{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room.ID = len(s.rooms) + 1
	room.Status = models.RoomStatusAvailable
	s.rooms = append(s.rooms, room)
	return room, nil
}

func (s *MockStore) UpdateRoom(ctx context.Context, id int, update SampleRoomUpdate) (models.SampleRoom, error) {
	if err := s.wait(ctx); err != nil {
		return models.SampleRoom{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		room := &s.rooms[i]
		if update.Number != nil {
			room.Number = *update.Number
		}
		if update.Type != nil {
			room.Type = *update.Type
		}
		if update.Price != nil {
			room.Price = *update.Price
		}
		if update.Capacity != nil {
			room.Capacity = *update.Capacity
		}
		if update.Amenities != nil {
			room.Amenities = *update.Amenities
		}
		if update.Status != nil {
			room.Status = *update.Status
		}
		return *room, nil
	}
	return models.SampleRoom{}, errors.ErrRoomNotFound
}

func (s *MockStore) DeleteRoom(ctx context.Context, id int) (models.SampleRoom, error) {
	if err := s.wait(ctx); err != nil {
		return models.SampleRoom{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, room := range s.rooms {
		if room.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return room, nil
		}
	}
	return models.SampleRoom{}, errors.ErrRoomNotFound
}

func (s *MockStore) Customers(ctx context.Context) ([]models.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

func (s *MockStore) Customer(ctx context.Context, id int) (models.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return models.Customer{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, customer := range s.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return models.Customer{}, errors.ErrCustomerNotFound
}

func (s *MockStore) DeleteCustomer(ctx context.Context, id int) (models.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, customer := range s.customers {
		if customer.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return customer, nil
		}
	}
	return models.Customer{}, errors.ErrCustomerNotFound
}

// Staff applies the department/status/search filters. Search matches the
// name, position, email or numeric id.
func (s *MockStore) Staff(ctx context.Context, filter StaffFilter) ([]models.Staff, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Staff, 0, len(s.staff))
	term := strings.ToLower(filter.Search)
	for _, member := range s.staff {
		if filter.Department != "" && string(member.Department) != filter.Department {
			continue
		}
		if filter.Status != "" && member.Status != filter.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(member.Name), term) &&
			!strings.Contains(strings.ToLower(member.Position), term) &&
			!strings.Contains(strings.ToLower(member.Email), term) &&
			!strings.Contains(strconv.Itoa(member.ID), term) {
			continue
		}
		out = append(out, member)
	}
	return out, nil
}

func (s *MockStore) StaffByID(ctx context.Context, id int) (models.Staff, error) {
	if err := s.wait(ctx); err != nil {
		return models.Staff{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, member := range s.staff {
		if member.ID == id {
			return member, nil
		}
	}
	return models.Staff{}, errors.ErrStaffNotFound
}

// AddStaff defaults status to active and the join date to today.
func (s *MockStore) AddStaff(ctx context.Context, member models.Staff) (models.Staff, error) {
	if err := s.wait(ctx); err != nil {
		return models.Staff{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = len(s.staff) + 1
	member.Status = models.StaffStatusActive
	if member.JoinDate == "" {
		member.JoinDate = time.Now().Format("2006-01-02")
	}
	s.staff = append(s.staff, member)
	return member, nil
}

func (s *MockStore) UpdateStaff(ctx context.Context, id int, member models.Staff) (models.Staff, error) {
	if err := s.wait(ctx); err != nil {
		return models.Staff{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID == id {
			member.ID = id
			s.staff[i] = member
			return member, nil
		}
	}
	return models.Staff{}, errors.ErrStaffNotFound
}

func (s *MockStore) DeleteStaff(ctx context.Context, id int) (models.Staff, error) {
	if err := s.wait(ctx); err != nil {
		return models.Staff{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, member := range s.staff {
		if member.ID == id {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			return member, nil
		}
	}
	return models.Staff{}, errors.ErrStaffNotFound
}

func (s *MockStore) StaffStats(ctx context.Context) (models.StaffStats, error) {
	if err := s.wait(ctx); err != nil {
		return models.StaffStats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.StaffStats{Total: len(s.staff)}
	for _, member := range s.staff {
		switch member.Status {
		case models.StaffStatusActive:
			stats.OnDuty++
		case models.StaffStatusOnLeave:
			stats.OnLeave++
		}
	}
	return stats, nil
}

// ShiftSchedule lists the active staff with their shift time ranges.
func (s *MockStore) ShiftSchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.ScheduleEntry, 0, len(s.staff))
	for _, member := range s.staff {
		if member.Status != models.StaffStatusActive {
			continue
		}
		entries = append(entries, models.ScheduleEntry{
			StaffID:  member.ID,
			Name:     member.Name,
			Position: member.Position,
			Shift:    member.Shift.Label(),
			Hours:    member.Shift.Hours(),
		})
	}
	return entries, nil
}
