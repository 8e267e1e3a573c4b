package repositories

import "carekitchen/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Update(user *models.User) error
	UpdatePassword(id uint, passwordHash string) error
	SetVerified(id uint) error
	CountByRole(role models.UserRole) (int64, error)
}
