package services

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
)

// Durable store keys. Each key holds a whole JSON sequence that is
// read-modify-written wholesale.
const (
	roomsKey      = "hotelRooms"
	activitiesKey = "hotelActivities"
)

// RoomStore persists wizard-created rooms under the "hotelRooms" key.
type RoomStore struct {
	db *gorm.DB
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// Rooms returns every persisted room. A missing key reads as an empty list.
func (s *RoomStore) Rooms() ([]models.Room, error) {
	return readRooms(s.db)
}

// SaveRoom appends a room to the durable collection. The whole operation
// runs in one transaction so a duplicate room number fails without partial
// writes; concurrent appends cannot lose updates.
func (s *RoomStore) SaveRoom(room models.Room) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rooms, err := readRooms(tx)
		if err != nil {
			return err
		}

		for _, existing := range rooms {
			if existing.Number == room.Number {
				return errors.NewAppError(errors.ErrCodeConflict,
					fmt.Sprintf("Room number %d already exists", room.Number),
					errors.ErrRoomExists)
			}
		}

		rooms = append(rooms, room)
		return writeEntry(tx, roomsKey, rooms)
	})
}

func readRooms(db *gorm.DB) ([]models.Room, error) {
	var entry models.StoreEntry
	err := db.First(&entry, "key = ?", roomsKey).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Room{}, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIO, "Failed to read rooms", err)
	}

	var rooms []models.Room
	if err := json.Unmarshal(entry.Value, &rooms); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIO, "Stored rooms are corrupted", err)
	}
	return rooms, nil
}

func writeEntry(db *gorm.DB, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeIO, "Failed to encode store entry", err)
	}

	if err := db.Save(&models.StoreEntry{Key: key, Value: data}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeIO, "Failed to write store entry", err)
	}
	return nil
}
