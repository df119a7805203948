package repository

import (
	"context"

	"codebook/internal/database"
	"codebook/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines post data operations
type PostRepository interface {
	List(ctx context.Context) ([]models.PostListItem, error)
	GetDetail(ctx context.Context, id uint) (*models.PostDetail, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id uint, update models.PostUpdate) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	pool *database.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(pool *database.Pool) PostRepository {
	return &postRepository{pool: pool}
}

const listPostsSQL = `SELECT p.post_id, p.title, p.content, p.image, p.date_created, p.user_id,
	u.first_name AS author_first_name, u.last_name AS author_last_name
FROM post p
JOIN users u ON u.user_id = p.user_id
ORDER BY p.date_created DESC, p.post_id DESC`

const getPostDetailSQL = `SELECT p.post_id, p.title, p.content, p.image, p.date_created,
	u.user_id AS author_id, u.first_name AS author_first_name, u.last_name AS author_last_name, u.email AS author_email
FROM post p
JOIN users u ON u.user_id = p.user_id
WHERE p.post_id = ?`

// List returns every post with its author's name, newest first.
func (r *postRepository) List(ctx context.Context) ([]models.PostListItem, error) {
	var posts []models.PostListItem
	err := run(ctx, r.pool, "list_posts", "post", failureMessages{internal: "Error fetching posts"}, func(tx *gorm.DB) error {
		return tx.Raw(listPostsSQL).Scan(&posts).Error
	})
	if err != nil {
		return nil, err
	}
	return nonNil(posts), nil
}

// GetDetail reads the post, its comments and its reactions with three sequential
// statements on one connection. The reads are not isolated from concurrent writers.
func (r *postRepository) GetDetail(ctx context.Context, id uint) (*models.PostDetail, error) {
	var detail models.PostDetail
	err := run(ctx, r.pool, "get_post_detail", "post", failureMessages{internal: "Error fetching post details"}, func(tx *gorm.DB) error {
		res := tx.Raw(getPostDetailSQL, id).Scan(&detail)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post not found.")
		}

		var err error
		if detail.Comments, err = listCommentsByPost(tx, id); err != nil {
			return err
		}
		detail.Reactions, err = listReactions(tx, id, models.EntityPost)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Create checks that the author exists, then inserts post on the same connection
// and sets its generated id and creation time.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	msgs := failureMessages{
		internal:   "Error creating post",
		foreignKey: "Invalid userID provided. User does not exist.",
	}
	return run(ctx, r.pool, "create_post", "post", msgs, func(tx *gorm.DB) error {
		exists, err := userExists(tx, post.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Author (userID) not found.")
		}
		return tx.Omit("User").Create(post).Error
	})
}

// Update applies the supplied fields. A missing row and a row whose values are
// already equal both affect zero rows and are reported as not found.
func (r *postRepository) Update(ctx context.Context, id uint, update models.PostUpdate) error {
	query, args, ok := postUpdateBuilder.Build(id, postUpdateValues(update))
	if !ok {
		return models.NewValidationError("At least one field (title, content, or Image) must be provided for update.")
	}

	return run(ctx, r.pool, "update_post", "post", failureMessages{internal: "Error updating post"}, func(tx *gorm.DB) error {
		res := tx.Exec(query, args...)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post not found or no changes were made.")
		}
		return nil
	})
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return run(ctx, r.pool, "delete_post", "post", failureMessages{internal: "Error deleting post"}, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post not found.")
		}
		return nil
	})
}
