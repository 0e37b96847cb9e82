package models

import "time"

// StorageRecord persists one named JSON snapshot per client. Last
// writer wins.
type StorageRecord struct {
	ClientID  string    `gorm:"column:client_id;primaryKey"`
	Name      string    `gorm:"column:name;primaryKey"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the snapshot table name.
func (StorageRecord) TableName() string {
	return "storage_records"
}
