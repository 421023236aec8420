package validator

import (
	"strconv"
	"strings"
	"time"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
)

// FieldErrors maps a field name to its inline error message. Empty map
// means the input passed.
type FieldErrors map[string]string

// ValidateBasicInfo checks the five required step-1 fields independently so
// every failing field gets flagged, not just the first.
func ValidateBasicInfo(form models.BasicInfoForm) FieldErrors {
	fields := FieldErrors{}

	number, err := strconv.Atoi(strings.TrimSpace(form.RoomNumber))
	if form.RoomNumber == "" || err != nil || number < 1 || number > 9999 {
		fields["roomNumber"] = "Room number must be between 1 and 9999"
	}

	if strings.TrimSpace(form.RoomType) == "" {
		fields["roomType"] = "Room type is required"
	}

	if strings.TrimSpace(form.Floor) == "" {
		fields["floor"] = "Floor is required"
	}

	guests, err := strconv.Atoi(strings.TrimSpace(form.MaxGuests))
	if form.MaxGuests == "" || err != nil || guests < 1 {
		fields["maxGuests"] = "Maximum guests is required"
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.PricePerNight), 64)
	if form.PricePerNight == "" || err != nil || price < 50 || price > 5000 {
		fields["pricePerNight"] = "Price must be between $50 and $5000"
	}

	return fields
}

// ValidateFeatures enforces the step-2 rule: at least one feature,
// services always optional.
func ValidateFeatures(features []models.Feature) error {
	if len(features) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Please select at least one room feature", nil)
	}
	return nil
}

// ValidateNewBooking checks the new-booking form fields.
func ValidateNewBooking(booking *models.Booking) error {
	if strings.TrimSpace(booking.GuestName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
	}

	if strings.TrimSpace(booking.RoomNumber) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}

	checkIn, err := time.Parse("2006-01-02", booking.CheckIn)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-in date is invalid", err)
	}

	checkOut, err := time.Parse("2006-01-02", booking.CheckOut)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-out date is invalid", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "Check-out must be after check-in", nil)
	}

	if booking.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Amount cannot be negative", nil)
	}

	return nil
}

// ValidateNewStaff checks the add-staff form fields.
func ValidateNewStaff(staff *models.Staff) error {
	if strings.TrimSpace(staff.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Staff name is required", nil)
	}

	if strings.TrimSpace(staff.Position) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Position is required", nil)
	}

	if staff.Department == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Department is required", nil)
	}

	if staff.Email != "" && !strings.Contains(staff.Email, "@") {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email is invalid", nil)
	}

	if staff.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Salary cannot be negative", nil)
	}

	if staff.JoinDate != "" {
		if _, err := time.Parse("2006-01-02", staff.JoinDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Join date is invalid", err)
		}
	}

	return nil
}

// ValidateSampleRoom checks the quick add-room form on the rooms page.
func ValidateSampleRoom(room *models.SampleRoom) error {
	if strings.TrimSpace(room.Number) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}

	if strings.TrimSpace(room.Type) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type is required", nil)
	}

	if room.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must be positive", nil)
	}

	if room.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Capacity must be at least 1", nil)
	}

	return nil
}
