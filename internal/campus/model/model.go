package model

import "time"

// BaseModel is embedded by every table. Business keys are separate uuid
// columns so surrogate ids never leak into the API.
type BaseModel struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
