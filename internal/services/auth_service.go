package services

import (
	"regexp"
	"strings"

	"schoolhub_backend/internal/auth"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// invalidCredentialsMsg is intentionally identical for "no such user" and
// "wrong password" so responses cannot be used to enumerate accounts.
const invalidCredentialsMsg = "Invalid email or password"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	GetCurrentUser(db *gorm.DB, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Email and password are required")
	}

	email := normalizeEmail(req.Email)
	if !emailRegexp.MatchString(email) {
		return nil, apperrors.NewBadRequestError("Invalid email format")
	}

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewInvalidCredentialsError(invalidCredentialsMsg)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewInvalidCredentialsError(invalidCredentialsMsg)
	}

	// Best effort; a failed timestamp write must not block the login.
	_ = s.userRepo.UpdateLastLogin(db, user.ID)

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{User: user, AccessToken: token}, nil
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, apperrors.NewBadRequestError("Email, password and name are required")
	}

	email := normalizeEmail(req.Email)
	if !emailRegexp.MatchString(email) {
		return nil, apperrors.NewBadRequestError("Invalid email format")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError("Password must be at least 6 characters long")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(req.Name),
		Role:         models.UserRoleStudent,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("users", "User with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *AuthServiceImpl) GetCurrentUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("users", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
