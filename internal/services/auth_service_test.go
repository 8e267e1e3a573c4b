package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
	"carekitchen/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id uint, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerified(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(role models.UserRole) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, nil, "test_jwt_secret")

	// Test successful registration
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	user, err := authService.Register(domain.RegisterRequest{
		Username: "donor_dave",
		Email:    "dave@example.com",
		Password: "password123",
		Role:     string(models.RoleDonor),
	})
	assert.NoError(t, err)
	assert.Equal(t, "donor_dave", user.Username)
	assert.Equal(t, models.RoleDonor, user.Role)
	// The stored credential must be a hash, never the plaintext
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Test unknown role
	_, err = authService.Register(domain.RegisterRequest{
		Username: "someone",
		Email:    "someone@example.com",
		Password: "password123",
		Role:     "Superhero",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Test duplicate identity surfaced by the store
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(domain.ErrDuplicateIdentity).Once()
	_, err = authService.Register(domain.RegisterRequest{
		Username: "donor_dave",
		Email:    "dave@example.com",
		Password: "password123",
		Role:     string(models.RoleDonor),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, nil, nil, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       42,
		Username: "donor_dave",
		Email:    "dave@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleDonor,
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, loggedIn, err := authService.Login("dave@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, string(models.RoleDonor), claims["role"])
	mockRepo.AssertExpectations(t)

	// Test wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.Login("dave@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown email returns the same generic failure as a wrong password
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, domain.ErrNotFound).Once()
	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, nil, nil, testJWTSecret)

	// Token issued by Login validates back to the same principal
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Email: "ngo@example.com", Password: string(hashedPassword), Role: models.RoleNGO}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	tokenString, _, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)

	userID, role, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, models.RoleNGO, role)

	// Test garbage token
	_, _, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(7),
		"role":    string(models.RoleNGO),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, _, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Test token signed with a different secret
	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(7),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	foreignTokenString, _ := foreignToken.SignedString([]byte("other_secret"))
	_, _, err = authService.ValidateToken(foreignTokenString)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, nil, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user := &models.User{ID: 3, Email: "eater@example.com", Password: string(hashedPassword), Role: models.RoleRecipient}

	// Test wrong current password
	mockRepo.On("GetByID", uint(3)).Return(user, nil).Once()
	err := authService.ChangePassword(3, domain.ChangePasswordRequest{
		CurrentPassword:    "notmyoldpassword",
		NewPassword:        "newpassword",
		ConfirmNewPassword: "newpassword",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCurrentPassword)
	mockRepo.AssertExpectations(t)

	// Test confirmation mismatch
	mockRepo.On("GetByID", uint(3)).Return(user, nil).Once()
	err = authService.ChangePassword(3, domain.ChangePasswordRequest{
		CurrentPassword:    "oldpassword",
		NewPassword:        "newpassword",
		ConfirmNewPassword: "somethingelse",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	mockRepo.AssertExpectations(t)

	// Test successful change; the new stored hash matches the new password
	mockRepo.On("GetByID", uint(3)).Return(user, nil).Once()
	mockRepo.On("UpdatePassword", uint(3), mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword")) == nil
	})).Return(nil).Once()
	err = authService.ChangePassword(3, domain.ChangePasswordRequest{
		CurrentPassword:    "oldpassword",
		NewPassword:        "newpassword",
		ConfirmNewPassword: "newpassword",
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
