package models

// WizardStep numbers the four wizard pages.
type WizardStep int

const (
	StepBasicInfo WizardStep = 1
	StepFeatures  WizardStep = 2
	StepImages    WizardStep = 3
	StepPreview   WizardStep = 4
)

// BasicInfoForm carries the raw step-1 field values as entered.
// Numeric fields stay strings until validation parses them.
type BasicInfoForm struct {
	RoomNumber    string `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	RoomName      string `json:"roomName"`
	Floor         string `json:"floor"`
	MaxGuests     string `json:"maxGuests"`
	PricePerNight string `json:"pricePerNight"`
	Description   string `json:"description"`
}

// RoomDraft is the wizard's in-progress, unsaved room record. One draft
// exists per wizard session and is discarded on cancel or submit.
type RoomDraft struct {
	RoomNumber    string        `json:"roomNumber"`
	RoomType      string        `json:"roomType"`
	RoomName      string        `json:"roomName"`
	Floor         string        `json:"floor"`
	MaxGuests     string        `json:"maxGuests"`
	PricePerNight string        `json:"pricePerNight"`
	Description   string        `json:"description"`
	Features      []Feature     `json:"features"`
	Services      []Service     `json:"services"`
	Images        []StagedImage `json:"images"`
}
