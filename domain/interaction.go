package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventView     = "view"
	EventPurchase = "purchase"
)

type Interaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    string            `gorm:"column:user_id;not null" json:"user_id"`
	ProductID string            `gorm:"column:product_id;not null" json:"product_id"`
	EventType string            `gorm:"column:event_type;not null" json:"event_type"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (Interaction) TableName() string {
	return "interactions"
}
