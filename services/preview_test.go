package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-admin-backend/models"
)

func TestBuildPreviewEmptyDraft(t *testing.T) {
	preview := BuildPreview(models.RoomDraft{})

	assert.Equal(t, "000", preview.Number)
	assert.Equal(t, "Room Type", preview.TypeLabel)
	assert.Equal(t, "Room 000", preview.Name)
	assert.Equal(t, "Ground Floor", preview.FloorLabel)
	assert.Equal(t, "2", preview.Guests)
	assert.Equal(t, "$0/night", preview.Price)
	assert.Equal(t, "No description provided", preview.Description)
	assert.Empty(t, preview.Tags)
	assert.Empty(t, preview.HeroImage)
}

func TestBuildPreviewPopulatedDraft(t *testing.T) {
	draft := models.RoomDraft{
		RoomNumber:    "305",
		RoomType:      "suite",
		RoomName:      "Sunset Suite",
		Floor:         "3",
		MaxGuests:     "4",
		PricePerNight: "1250",
		Description:   "Corner suite with a terrace",
		Features:      []models.Feature{"wifi", "balcony"},
		Services:      []models.Service{"breakfast"},
		Images: []models.StagedImage{
			{Name: "hero.jpg", Data: "data:image/jpeg;base64,aGVybw==", Type: "image/jpeg"},
			{Name: "bath.jpg", Data: "data:image/jpeg;base64,YmF0aA==", Type: "image/jpeg"},
		},
	}

	preview := BuildPreview(draft)

	assert.Equal(t, "305", preview.Number)
	assert.Equal(t, "Suite", preview.TypeLabel)
	assert.Equal(t, "Sunset Suite", preview.Name)
	assert.Equal(t, "3rd Floor", preview.FloorLabel)
	assert.Equal(t, "4", preview.Guests)
	assert.Equal(t, "$1,250/night", preview.Price)
	assert.Equal(t, []string{"Free Wi-Fi", "Private Balcony", "Breakfast Included"}, preview.Tags)
	assert.Equal(t, "data:image/jpeg;base64,aGVybw==", preview.HeroImage)
}

func TestBuildPreviewUnknownCodes(t *testing.T) {
	draft := models.RoomDraft{
		RoomType: "bungalow",
		Floor:    "42",
		Features: []models.Feature{"heated-floor"},
	}

	preview := BuildPreview(draft)

	assert.Equal(t, "Room Type", preview.TypeLabel)
	assert.Equal(t, "Ground Floor", preview.FloorLabel)
	// Unknown feature codes show as-is rather than disappearing.
	assert.Equal(t, []string{"heated-floor"}, preview.Tags)
}
