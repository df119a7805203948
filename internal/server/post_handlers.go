package server

import (
	"codebook/internal/models"
	"codebook/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts godoc
// @Summary List posts
// @Description Returns every post with its author's name, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} models.PostListItem
// @Failure 500 {object} models.ErrorResponse
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPost godoc
// @Summary Get a post
// @Description Returns a post with its author, comments and reactions
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.PostDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), postIDParam(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body service.CreatePostInput true "New post"
// @Success 201 {object} models.CreatePostResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreatePostResponse{
		Message: "Post created successfully",
		PostID:  post.PostID,
		Post: models.CreatedPost{
			Title:   post.Title,
			Content: post.Content,
			Image:   post.Image,
			UserID:  post.UserID,
		},
	})
}

// UpdatePost godoc
// @Summary Update a post
// @Description Applies any subset of title, content and Image
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body service.UpdatePostInput true "Fields to change"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req service.UpdatePostInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	req.PostID = postIDParam(c)

	if err := s.postService.UpdatePost(c.UserContext(), req); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Post updated successfully"})
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.UserContext(), postIDParam(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Post deleted successfully."})
}
