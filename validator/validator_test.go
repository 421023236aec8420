package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
)

func validForm() models.BasicInfoForm {
	return models.BasicInfoForm{
		RoomNumber:    "101",
		RoomType:      "double",
		Floor:         "2",
		MaxGuests:     "2",
		PricePerNight: "150",
	}
}

func TestValidateBasicInfoAccepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BasicInfoForm)
	}{
		{"typical", func(f *models.BasicInfoForm) {}},
		{"number lower bound", func(f *models.BasicInfoForm) { f.RoomNumber = "1" }},
		{"number upper bound", func(f *models.BasicInfoForm) { f.RoomNumber = "9999" }},
		{"price lower bound", func(f *models.BasicInfoForm) { f.PricePerNight = "50" }},
		{"price upper bound", func(f *models.BasicInfoForm) { f.PricePerNight = "5000" }},
		{"fractional price", func(f *models.BasicInfoForm) { f.PricePerNight = "99.99" }},
		{"padded fields", func(f *models.BasicInfoForm) { f.RoomNumber = " 101 "; f.MaxGuests = " 2 " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			assert.Empty(t, ValidateBasicInfo(form))
		})
	}
}

func TestValidateBasicInfoRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BasicInfoForm)
		field  string
	}{
		{"empty number", func(f *models.BasicInfoForm) { f.RoomNumber = "" }, "roomNumber"},
		{"number zero", func(f *models.BasicInfoForm) { f.RoomNumber = "0" }, "roomNumber"},
		{"number too high", func(f *models.BasicInfoForm) { f.RoomNumber = "10000" }, "roomNumber"},
		{"number not numeric", func(f *models.BasicInfoForm) { f.RoomNumber = "abc" }, "roomNumber"},
		{"missing type", func(f *models.BasicInfoForm) { f.RoomType = "" }, "roomType"},
		{"missing floor", func(f *models.BasicInfoForm) { f.Floor = "  " }, "floor"},
		{"guests zero", func(f *models.BasicInfoForm) { f.MaxGuests = "0" }, "maxGuests"},
		{"guests empty", func(f *models.BasicInfoForm) { f.MaxGuests = "" }, "maxGuests"},
		{"price below minimum", func(f *models.BasicInfoForm) { f.PricePerNight = "49.99" }, "pricePerNight"},
		{"price above maximum", func(f *models.BasicInfoForm) { f.PricePerNight = "5000.01" }, "pricePerNight"},
		{"price not numeric", func(f *models.BasicInfoForm) { f.PricePerNight = "cheap" }, "pricePerNight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			fields := ValidateBasicInfo(form)
			require.Len(t, fields, 1)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateBasicInfoReportsEveryField(t *testing.T) {
	fields := ValidateBasicInfo(models.BasicInfoForm{})
	assert.Len(t, fields, 5)
	for _, field := range []string{"roomNumber", "roomType", "floor", "maxGuests", "pricePerNight"} {
		assert.Contains(t, fields, field)
	}
}

func TestValidateFeatures(t *testing.T) {
	assert.NoError(t, ValidateFeatures([]models.Feature{"wifi"}))

	err := ValidateFeatures(nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestValidateNewBooking(t *testing.T) {
	booking := models.Booking{
		GuestName:  "John Smith",
		RoomNumber: "102",
		CheckIn:    "2024-01-15",
		CheckOut:   "2024-01-20",
		Amount:     900,
	}
	assert.NoError(t, ValidateNewBooking(&booking))

	t.Run("checkout before checkin", func(t *testing.T) {
		bad := booking
		bad.CheckOut = "2024-01-14"
		err := ValidateNewBooking(&bad)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	})

	t.Run("missing guest", func(t *testing.T) {
		bad := booking
		bad.GuestName = " "
		err := ValidateNewBooking(&bad)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
	})

	t.Run("bad date", func(t *testing.T) {
		bad := booking
		bad.CheckIn = "15/01/2024"
		err := ValidateNewBooking(&bad)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
	})
}

func TestValidateNewStaff(t *testing.T) {
	member := models.Staff{
		Name:       "Anna Kim",
		Position:   "Receptionist",
		Department: "front-desk",
		Email:      "anna.k@hotel.com",
		Salary:     3200,
		JoinDate:   "2024-02-01",
	}
	assert.NoError(t, ValidateNewStaff(&member))

	t.Run("invalid email", func(t *testing.T) {
		bad := member
		bad.Email = "not-an-email"
		err := ValidateNewStaff(&bad)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
	})

	t.Run("missing department", func(t *testing.T) {
		bad := member
		bad.Department = ""
		err := ValidateNewStaff(&bad)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
	})
}
