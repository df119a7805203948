package service

import (
	"context"

	"codebook/internal/models"
	"codebook/internal/repository"
)

// CommentService validates comment input and delegates to the repository.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// CreateCommentInput is the body of POST /api/posts/:id/comments. PostID comes from the path.
type CreateCommentInput struct {
	PostID  uint   `json:"-"`
	Comment string `json:"comment" validate:"required"`
	UserID  uint   `json:"userID" validate:"required"`
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := checkInput(in, "Comment and userID are required."); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Comment: in.Comment,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
