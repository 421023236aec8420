package models

// RoomType is the fixed room category enumeration used by the wizard.
type RoomType string

const (
	RoomTypeSingle       RoomType = "single"
	RoomTypeDouble       RoomType = "double"
	RoomTypeSuite        RoomType = "suite"
	RoomTypeDeluxe       RoomType = "deluxe"
	RoomTypePresidential RoomType = "presidential"
	RoomTypeExecutive    RoomType = "executive"
	RoomTypeFamily       RoomType = "family"
	RoomTypeHoneymoon    RoomType = "honeymoon"
)

var roomTypeLabels = map[RoomType]string{
	RoomTypeSingle:       "Single Room",
	RoomTypeDouble:       "Double Room",
	RoomTypeSuite:        "Suite",
	RoomTypeDeluxe:       "Deluxe Room",
	RoomTypePresidential: "Presidential Suite",
	RoomTypeExecutive:    "Executive Suite",
	RoomTypeFamily:       "Family Room",
	RoomTypeHoneymoon:    "Honeymoon Suite",
}

// Label returns the display name for the type. Unknown codes fall back
// to the generic placeholder instead of leaking the raw code.
func (t RoomType) Label() string {
	if label, ok := roomTypeLabels[t]; ok {
		return label
	}
	return "Room Type"
}

// Floor identifies the floor a room sits on: "ground", "1".."10" or "penthouse".
type Floor string

const (
	FloorGround    Floor = "ground"
	FloorPenthouse Floor = "penthouse"
)

var floorLabels = map[Floor]string{
	FloorGround:    "Ground Floor",
	"1":            "1st Floor",
	"2":            "2nd Floor",
	"3":            "3rd Floor",
	"4":            "4th Floor",
	"5":            "5th Floor",
	"6":            "6th Floor",
	"7":            "7th Floor",
	"8":            "8th Floor",
	"9":            "9th Floor",
	"10":           "10th Floor",
	FloorPenthouse: "Penthouse",
}

func (f Floor) Label() string {
	if label, ok := floorLabels[f]; ok {
		return label
	}
	return "Ground Floor"
}

// Feature is a selectable room feature tag.
type Feature string

var featureLabels = map[Feature]string{
	"wifi":    "Free Wi-Fi",
	"tv":      "Smart TV",
	"ac":      "Air Conditioning",
	"minibar": "Mini-bar",
	"safe":    "Safe Deposit Box",
	"coffee":  "Coffee Maker",
	"bath":    "Bathtub",
	"shower":  "Rain Shower",
	"balcony": "Private Balcony",
	"view":    "Mountain View",
	"ocean":   "Ocean View",
	"city":    "City View",
}

// Label returns the display name, or the raw code for unknown features.
func (f Feature) Label() string {
	if label, ok := featureLabels[f]; ok {
		return label
	}
	return string(f)
}

// Service is a selectable room service tag.
type Service string

var serviceLabels = map[Service]string{
	"room_service": "24/7 Room Service",
	"laundry":      "Laundry Service",
	"breakfast":    "Breakfast Included",
	"parking":      "Free Parking",
	"gym":          "Gym Access",
	"spa":          "Spa Access",
}

func (s Service) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Department groups staff members for filtering and badges.
type Department string

var departmentLabels = map[Department]string{
	"front-desk":   "Front Desk",
	"housekeeping": "Housekeeping",
	"kitchen":      "Kitchen",
	"management":   "Management",
	"security":     "Security",
	"maintenance":  "Maintenance",
}

func (d Department) Label() string {
	if label, ok := departmentLabels[d]; ok {
		return label
	}
	return string(d)
}

// Shift is a staff working shift.
type Shift string

var shiftLabels = map[Shift]string{
	"morning":  "Morning",
	"evening":  "Evening",
	"night":    "Night",
	"flexible": "Flexible",
}

var shiftHours = map[Shift]string{
	"morning":  "6:00 AM - 2:00 PM",
	"evening":  "2:00 PM - 10:00 PM",
	"night":    "10:00 PM - 6:00 AM",
	"flexible": "Flexible Hours",
}

func (s Shift) Label() string {
	if label, ok := shiftLabels[s]; ok {
		return label
	}
	return string(s)
}

// Hours returns the time range the shift covers.
func (s Shift) Hours() string {
	if hours, ok := shiftHours[s]; ok {
		return hours
	}
	return "Flexible Hours"
}
