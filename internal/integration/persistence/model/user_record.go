// Package model defines database models for the persistence layer.
package model

import "time"

// UserRecordModel represents the user_records table: one row per storage key
// holding the entire serialized UserData record as an opaque JSON blob. There
// is no schema versioning column; the application infers the record's shape
// structurally.
type UserRecordModel struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserRecordModel.
func (UserRecordModel) TableName() string {
	return "user_records"
}
