package models

// RoomPreview is the display projection of a draft: placeholder defaults
// for blank fields, human labels for enumeration codes, first staged image
// as the hero shot.
type RoomPreview struct {
	Number      string   `json:"number"`
	TypeLabel   string   `json:"typeLabel"`
	Name        string   `json:"name"`
	FloorLabel  string   `json:"floorLabel"`
	Guests      string   `json:"guests"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	HeroImage   string   `json:"heroImage"`
}
