package services

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
	"hotel-admin-backend/utils"
)

// ActivityLog is the capped, most-recent-first log under "hotelActivities".
type ActivityLog struct {
	db *gorm.DB
}

func NewActivityLog(db *gorm.DB) *ActivityLog {
	return &ActivityLog{db: db}
}

// Append front-inserts an entry and drops the oldest past the cap.
func (l *ActivityLog) Append(entry models.ActivityEntry) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		entries, err := readActivities(tx)
		if err != nil {
			return err
		}

		entries = append([]models.ActivityEntry{entry}, entries...)
		if len(entries) > models.MaxActivities {
			entries = entries[:models.MaxActivities]
		}

		return writeEntry(tx, activitiesKey, entries)
	})
}

// Entries returns the log, most recent first.
func (l *ActivityLog) Entries() ([]models.ActivityEntry, error) {
	return readActivities(l.db)
}

func readActivities(db *gorm.DB) ([]models.ActivityEntry, error) {
	var entry models.StoreEntry
	err := db.First(&entry, "key = ?", activitiesKey).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return []models.ActivityEntry{}, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIO, "Failed to read activities", err)
	}

	var entries []models.ActivityEntry
	if err := json.Unmarshal(entry.Value, &entries); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIO, "Stored activities are corrupted", err)
	}
	return entries, nil
}

// RoomAddedEntry builds the log entry recorded after a successful submission.
func RoomAddedEntry(room models.Room, now time.Time) models.ActivityEntry {
	return models.ActivityEntry{
		Type:     models.ActivityRoomAdded,
		Message:  fmt.Sprintf("New room added: %s (Room %d)", room.Name, room.Number),
		Time:     utils.FormatShortTime(now),
		Priority: "medium",
	}
}
