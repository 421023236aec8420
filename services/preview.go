package services

import (
	"strconv"

	"hotel-admin-backend/models"
	"hotel-admin-backend/utils"
)

// BuildPreview is a pure projection of a draft into its display model.
// Blank numeric fields get placeholder defaults, enumeration codes map to
// human labels, and the first staged image becomes the hero shot.
func BuildPreview(draft models.RoomDraft) models.RoomPreview {
	number := draft.RoomNumber
	if number == "" {
		number = "000"
	}

	name := draft.RoomName
	if name == "" {
		name = "Room " + number
	}

	floor := models.Floor(draft.Floor)
	if floor == "" {
		floor = models.FloorGround
	}

	guests := draft.MaxGuests
	if guests == "" {
		guests = "2"
	}

	price, _ := strconv.ParseFloat(draft.PricePerNight, 64)

	description := draft.Description
	if description == "" {
		description = "No description provided"
	}

	tags := make([]string, 0, len(draft.Features)+len(draft.Services))
	for _, feature := range draft.Features {
		tags = append(tags, feature.Label())
	}
	for _, service := range draft.Services {
		tags = append(tags, service.Label())
	}

	hero := ""
	if len(draft.Images) > 0 {
		hero = draft.Images[0].Data
	}

	return models.RoomPreview{
		Number:      number,
		TypeLabel:   models.RoomType(draft.RoomType).Label(),
		Name:        name,
		FloorLabel:  floor.Label(),
		Guests:      guests,
		Price:       utils.FormatPricePerNight(int(price)),
		Description: description,
		Tags:        tags,
		HeroImage:   hero,
	}
}
