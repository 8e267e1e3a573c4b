package services

import (
	"fmt"
	"log"
	"time"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
	"carekitchen/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, authentication and credential changes.
type AuthService struct {
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
	notifier     *NotificationService
	jwtSecret    []byte
	tokenDurat   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	notifier *NotificationService,
	jwtSecret string,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		notifier:     notifier,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   24 * time.Hour,
	}
}

// Register creates a user with a hashed credential. Username and email
// uniqueness is enforced by the store's unique indexes, so a collision
// under concurrent registration still surfaces as ErrDuplicateIdentity.
func (s *AuthService) Register(req domain.RegisterRequest) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, req.Role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, user.ID, "registered an account")
	if s.notifier != nil {
		if _, err := s.notifier.Notify(user.ID, "Welcome to Community Care Kitchen!"); err != nil {
			log.Printf("Warning: failed to send welcome notification to user %d: %v", user.ID, err)
		}
	}
	return user, nil
}

// Login authenticates by email and returns a session token. The same
// generic failure covers unknown email and wrong password, so callers
// cannot probe which emails are registered.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	recordActivity(s.activityRepo, user.ID, "logged in")
	return tokenString, user, nil
}

// ValidateToken resolves the principal behind a session token.
func (s *AuthService) ValidateToken(tokenString string) (uint, models.UserRole, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", domain.ErrUnauthenticated
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", domain.ErrUnauthenticated
	}
	role, _ := claims["role"].(string)
	return uint(userID), models.UserRole(role), nil
}

// ChangePassword verifies the current credential, checks the confirmation
// and replaces the stored hash. All checks run before any write.
func (s *AuthService) ChangePassword(userID uint, req domain.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrWrongCurrentPassword
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return domain.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(userID, string(hashedPassword)); err != nil {
		return err
	}

	recordActivity(s.activityRepo, userID, "changed password")
	return nil
}
