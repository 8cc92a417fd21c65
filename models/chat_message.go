package models

import "time"

// ChatMessage is one turn in the diet assistant conversation.
type ChatMessage struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Role      string `gorm:"size:10"` // "user" | "assistant"
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
}
