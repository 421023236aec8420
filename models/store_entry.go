package models

import (
	"gorm.io/datatypes"
)

// StoreEntry is one key of the durable key-value store. The whole
// collection behind a key is serialized into Value and read-modify-written
// wholesale.
type StoreEntry struct {
	Key   string         `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value datatypes.JSON `json:"value" gorm:"type:json"`
}
