package model

import "time"

// BaseModel carries the auto-incrementing row id and standard timestamps.
// Business keys (product_code, code, ...) live on the concrete models.
type BaseModel struct {
	ObjectID  uint      `gorm:"column:object_id;primaryKey;autoIncrement" json:"object_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
