package models

// StagedImage is a wizard-selected image decoded into storable form:
// original file name, data URI payload and reported MIME type.
type StagedImage struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Type string `json:"type"`
}

// Room is the durable record the wizard persists under the "hotelRooms" key.
// Created only via wizard submission; never mutated or deleted afterwards.
type Room struct {
	ID          string        `json:"id"`
	Number      int           `json:"number"`
	Type        RoomType      `json:"type"`
	Name        string        `json:"name"`
	Floor       Floor         `json:"floor"`
	MaxGuests   int           `json:"maxGuests"`
	Price       int           `json:"price"`
	Description string        `json:"description"`
	Features    []Feature     `json:"features"`
	Services    []Service     `json:"services"`
	Images      []StagedImage `json:"images"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	LastCleaned string        `json:"lastCleaned"`
}
