package models

// Activity types appearing in the durable log.
const (
	ActivityRoomAdded = "room_added"
)

// MaxActivities caps the "hotelActivities" list; the oldest entries drop first.
const MaxActivities = 50

// ActivityEntry is one row of the capped activity log, most recent first.
type ActivityEntry struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
}
