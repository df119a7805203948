package service

import (
	"context"

	"codebook/internal/models"
	"codebook/internal/repository"
)

// ReactionService validates reaction input and delegates to the repository.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
}

// CreateReactionInput is the body of POST /api/reactions. EntityType defaults
// to post; the post-scoped route fills both target fields from the path.
type CreateReactionInput struct {
	EntityID   uint   `json:"entityID" validate:"required"`
	EntityType string `json:"entityType"`
	React      string `json:"react" validate:"required"`
	UserID     uint   `json:"userID" validate:"required"`
}

func NewReactionService(reactionRepo repository.ReactionRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo}
}

// ListReactions returns the reactions on a post. Comment-targeted reactions are stored but never listed.
func (s *ReactionService) ListReactions(ctx context.Context, postID uint) ([]models.ReactionView, error) {
	return s.reactionRepo.ListForEntity(ctx, postID, models.EntityPost)
}

func (s *ReactionService) CreateReaction(ctx context.Context, in CreateReactionInput) (*models.Reaction, error) {
	if err := checkInput(in, "React, userID, and entityID are required."); err != nil {
		return nil, err
	}
	if in.EntityType == "" {
		in.EntityType = models.EntityPost
	}
	if !models.ValidEntityType(in.EntityType) {
		return nil, models.NewValidationError("entityType must be 'post' or 'comment'.")
	}

	reaction := &models.Reaction{
		React:      in.React,
		UserID:     in.UserID,
		EntityID:   in.EntityID,
		EntityType: in.EntityType,
	}
	if err := s.reactionRepo.Create(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}
