package repository

import (
	"context"

	"codebook/internal/database"
	"codebook/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.UserSummary, error)
	Create(ctx context.Context, user *models.User) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type userRepository struct {
	pool *database.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *database.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// List returns every user without the credential column, in storage order.
func (r *userRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := run(ctx, r.pool, "list_users", "users", failureMessages{internal: "Error fetching users"}, func(tx *gorm.DB) error {
		return tx.Model(&models.User{}).
			Select("user_id", "first_name", "last_name", "email", "join_date").
			Scan(&users).Error
	})
	if err != nil {
		return nil, err
	}
	return nonNil(users), nil
}

// Create inserts user and sets its generated id and join date.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	msgs := failureMessages{
		internal: "Error creating user",
		conflict: "Email already exists.",
	}
	return run(ctx, r.pool, "create_user", "users", msgs, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var exists bool
	err := run(ctx, r.pool, "user_exists", "users", failureMessages{internal: "Error fetching users"}, func(tx *gorm.DB) error {
		var err error
		exists, err = userExists(tx, id)
		return err
	})
	return exists, err
}

func userExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.User{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
