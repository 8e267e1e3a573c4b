package models

import "time"

// Feedback is an append-only free-text message from a user.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// UserActivity is an append-only audit trail entry.
type UserActivity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Action    string    `json:"action" gorm:"type:varchar(200);not null"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
}
