package server

import (
	"codebook/internal/models"
	"codebook/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReactions godoc
// @Summary List reactions on a post
// @Tags reactions
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.ReactionView
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id}/reactions [get]
func (s *Server) GetReactions(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	reactions, err := s.reactionService.ListReactions(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(reactions)
}

// CreatePostReaction godoc
// @Summary React to a post
// @Description The target is always the post in the path
// @Tags reactions
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param reaction body service.CreateReactionInput true "New reaction"
// @Success 201 {object} models.CreateReactionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id}/reactions [post]
func (s *Server) CreatePostReaction(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.CreateReactionInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	req.EntityID = postID
	req.EntityType = models.EntityPost

	return s.createReaction(c, req)
}

// CreateReaction godoc
// @Summary React to a post or a comment
// @Description entityType defaults to post
// @Tags reactions
// @Accept json
// @Produce json
// @Param reaction body service.CreateReactionInput true "New reaction"
// @Success 201 {object} models.CreateReactionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reactions [post]
func (s *Server) CreateReaction(c *fiber.Ctx) error {
	var req service.CreateReactionInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	return s.createReaction(c, req)
}

func (s *Server) createReaction(c *fiber.Ctx, req service.CreateReactionInput) error {
	reaction, err := s.reactionService.CreateReaction(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateReactionResponse{
		Message:  "Reaction added successfully",
		ReactID:  reaction.ReactID,
		Reaction: *reaction,
	})
}
