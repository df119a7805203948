package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"codebook/internal/models"
	"codebook/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService creates and lists users.
type UserService struct {
	userRepo repository.UserRepository
	hashCost int
}

// CreateUserInput is the body of POST /api/users.
type CreateUserInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.userRepo.List(ctx)
}

// CreateUser stores a new user with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := checkInput(in, "All fields are required."); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(in.Password), s.hashCost)
	if err != nil {
		internal := models.NewInternalError(fmt.Errorf("hash password: %w", err))
		internal.Message = "Error creating user"
		return nil, internal
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// passwordDigest maps a password of any length to a fixed 44-byte input, since
// bcrypt rejects inputs over 72 bytes.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// CheckPassword reports whether password matches a hash stored by CreateUser.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordDigest(password))
}
