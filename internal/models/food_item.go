package models

import "time"

// FoodItem is a surplus food listing owned by a donor.
type FoodItem struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	FoodType      string     `json:"food_type" gorm:"type:varchar(100);not null" validate:"required"`
	Quantity      int        `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	Price         float64    `json:"price" gorm:"not null" validate:"gte=0"`
	Location      string     `json:"location" gorm:"type:varchar(100);not null" validate:"required"`
	Available     bool       `json:"available" gorm:"default:true"`
	ImageFilename string     `json:"image_filename,omitempty" gorm:"type:varchar(200)"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CategoryID    uint       `json:"category_id" gorm:"index;not null"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FoodCategory is static reference data food items point at.
type FoodCategory struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
}
