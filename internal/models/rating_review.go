package models

import "time"

// RatingReview is an immutable rating one user leaves for another,
// optionally tied to a food item.
type RatingReview struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RatedUserID   uint      `json:"rated_user_id" gorm:"index;not null"`
	RatedByUserID uint      `json:"rated_by_user_id" gorm:"index;not null"`
	FoodItemID    *uint     `json:"food_item_id,omitempty"` // soft reference, survives item deletion
	Rating        int       `json:"rating" gorm:"not null"`
	Review        string    `json:"review,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
