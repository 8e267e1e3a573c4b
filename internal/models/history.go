package models

import "time"

// DonationHistory records that a user's item was donated at a point in
// time. FoodItemID is a soft reference: the row is never deleted, even if
// the item later is.
type DonationHistory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	FoodItemID uint      `json:"food_item_id" gorm:"not null"`
	DonatedAt  time.Time `json:"donated_at" gorm:"autoCreateTime"`
}

// RequestHistory records that a user requested an item. Append-only,
// FoodItemID is a soft reference like DonationHistory's.
type RequestHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	FoodItemID  uint      `json:"food_item_id" gorm:"not null"`
	RequestedAt time.Time `json:"requested_at" gorm:"autoCreateTime"`
}
