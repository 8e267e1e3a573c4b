package models

import "time"

// UserRole is the closed set of roles in the marketplace.
type UserRole string

const (
	RoleDonor     UserRole = "FoodDonor"
	RoleNGO       UserRole = "NGO"
	RoleRecipient UserRole = "BudgetEater"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleDonor, RoleNGO, RoleRecipient:
		return true
	}
	return false
}

// User represents a registered account: a donor listing surplus food,
// an NGO verifying accounts, or a recipient requesting food.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;type:varchar(80);not null" validate:"required,min=3,max=80"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(120);not null" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(120);not null"` // bcrypt hash, never serialized
	Role        UserRole  `json:"role" gorm:"type:varchar(20);not null"`
	Bio         string    `json:"bio"`
	Address     string    `json:"address" gorm:"type:varchar(200)"`
	PhoneNumber string    `json:"phone_number" gorm:"type:varchar(20)"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
