package repository

import (
	"context"

	"codebook/internal/database"
	"codebook/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository defines reaction data operations
type ReactionRepository interface {
	ListForEntity(ctx context.Context, entityID uint, entityType string) ([]models.ReactionView, error)
	Create(ctx context.Context, reaction *models.Reaction) error
}

type reactionRepository struct {
	pool *database.Pool
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(pool *database.Pool) ReactionRepository {
	return &reactionRepository{pool: pool}
}

const listReactionsSQL = `SELECT r.react_id, r.react,
	u.user_id AS reactor_id, u.first_name AS reactor_first_name, u.last_name AS reactor_last_name
FROM react r
JOIN users u ON u.user_id = r.user_id
WHERE r.entity_id = ? AND r.entity_type = ?`

func (r *reactionRepository) ListForEntity(ctx context.Context, entityID uint, entityType string) ([]models.ReactionView, error) {
	var reactions []models.ReactionView
	err := run(ctx, r.pool, "list_reactions", "react", failureMessages{internal: "Error fetching reactions"}, func(tx *gorm.DB) error {
		var err error
		reactions, err = listReactions(tx, entityID, entityType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

// Create inserts reaction. The target entity is not checked for existence.
func (r *reactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	msgs := failureMessages{
		internal:   "Error creating reaction",
		foreignKey: "Invalid userID provided. User does not exist.",
	}
	return run(ctx, r.pool, "create_reaction", "react", msgs, func(tx *gorm.DB) error {
		return tx.Omit("User").Create(reaction).Error
	})
}

// listReactions returns the reactions targeting (entityID, entityType), unordered.
func listReactions(tx *gorm.DB, entityID uint, entityType string) ([]models.ReactionView, error) {
	var reactions []models.ReactionView
	if err := tx.Raw(listReactionsSQL, entityID, entityType).Scan(&reactions).Error; err != nil {
		return nil, err
	}
	return nonNil(reactions), nil
}
