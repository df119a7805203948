package service

import (
	"context"

	"codebook/internal/models"
	"codebook/internal/repository"
)

// PostService validates post input and delegates to the repository.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput is the body of POST /api/posts.
type CreatePostInput struct {
	Title   string  `json:"title" validate:"required"`
	Content string  `json:"content" validate:"required"`
	Image   *string `json:"Image"`
	UserID  uint    `json:"userID" validate:"required"`
}

// UpdatePostInput is the body of PUT /api/posts/:id.
type UpdatePostInput struct {
	PostID  uint                  `json:"-"`
	Title   models.OptionalString `json:"title"`
	Content models.OptionalString `json:"content"`
	Image   models.OptionalString `json:"Image"`
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.PostListItem, error) {
	return s.postRepo.List(ctx)
}

// GetPost loads a post with its comments and reactions. Id 0 never names a post.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.PostDetail, error) {
	if id == 0 {
		return nil, models.NewNotFoundError("Post not found.")
	}
	return s.postRepo.GetDetail(ctx, id)
}

// CreatePost stores a post for an existing author. Image is stored as given,
// so an empty string stays an empty string and only an omitted or null Image
// is absent.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := checkInput(in, "Title, content, and userID are required."); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		Image:   in.Image,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies a partial update. At least one field must carry a
// non-empty value; every supplied field is then written, so an empty content
// or a null Image alongside a new title is applied as given.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) error {
	if !in.Title.Truthy() && !in.Content.Truthy() && !in.Image.Truthy() {
		return models.NewValidationError("At least one field (title, content, or Image) must be provided for update.")
	}
	if (in.Title.Set && !in.Title.Valid) || (in.Content.Set && !in.Content.Valid) {
		return models.NewValidationError("Title and content cannot be null.")
	}
	if in.PostID == 0 {
		return models.NewNotFoundError("Post not found or no changes were made.")
	}

	return s.postRepo.Update(ctx, in.PostID, models.PostUpdate{
		Title:   in.Title,
		Content: in.Content,
		Image:   in.Image,
	})
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewNotFoundError("Post not found.")
	}
	return s.postRepo.Delete(ctx, id)
}
