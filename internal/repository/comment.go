package repository

import (
	"context"

	"codebook/internal/database"
	"codebook/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines comment data operations
type CommentRepository interface {
	ListByPost(ctx context.Context, postID uint) ([]models.CommentView, error)
	Create(ctx context.Context, comment *models.Comment) error
}

type commentRepository struct {
	pool *database.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(pool *database.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

const listCommentsByPostSQL = `SELECT c.comment_id, c.comment, c.date_created,
	u.user_id AS commenter_id, u.first_name AS commenter_first_name, u.last_name AS commenter_last_name
FROM comments c
JOIN users u ON u.user_id = c.user_id
WHERE c.post_id = ?
ORDER BY c.date_created ASC, c.comment_id ASC`

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.CommentView, error) {
	var comments []models.CommentView
	err := run(ctx, r.pool, "list_comments", "comments", failureMessages{internal: "Error fetching comments"}, func(tx *gorm.DB) error {
		var err error
		comments, err = listCommentsByPost(tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts comment. Parent rows are only checked by the schema's own constraints.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	msgs := failureMessages{
		internal:   "Error creating comment",
		foreignKey: "Invalid userID or postID provided.",
	}
	return run(ctx, r.pool, "create_comment", "comments", msgs, func(tx *gorm.DB) error {
		return tx.Omit("User", "Post").Create(comment).Error
	})
}

// listCommentsByPost returns the comments on postID oldest first, joined with the commenter.
func listCommentsByPost(tx *gorm.DB, postID uint) ([]models.CommentView, error) {
	var comments []models.CommentView
	if err := tx.Raw(listCommentsByPostSQL, postID).Scan(&comments).Error; err != nil {
		return nil, err
	}
	return nonNil(comments), nil
}
