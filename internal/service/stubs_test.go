package service

import (
	"context"
	"testing"

	"codebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	listFn   func(context.Context) ([]models.UserSummary, error)
	createFn func(context.Context, *models.User) error
	existsFn func(context.Context, uint) (bool, error)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.UserSummary, error) { return s.listFn(ctx) }
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error       { return s.createFn(ctx, u) }
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error)      { return s.existsFn(ctx, id) }

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	listFn      func(context.Context) ([]models.PostListItem, error)
	getDetailFn func(context.Context, uint) (*models.PostDetail, error)
	createFn    func(context.Context, *models.Post) error
	updateFn    func(context.Context, uint, models.PostUpdate) error
	deleteFn    func(context.Context, uint) error
}

func (s *postRepoStub) List(ctx context.Context) ([]models.PostListItem, error) { return s.listFn(ctx) }
func (s *postRepoStub) GetDetail(ctx context.Context, id uint) (*models.PostDetail, error) {
	return s.getDetailFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) Update(ctx context.Context, id uint, u models.PostUpdate) error {
	return s.updateFn(ctx, id, u)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	listByPostFn func(context.Context, uint) ([]models.CommentView, error)
	createFn     func(context.Context, *models.Comment) error
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.CommentView, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	listFn   func(context.Context, uint, string) ([]models.ReactionView, error)
	createFn func(context.Context, *models.Reaction) error
}

func (s *reactionRepoStub) ListForEntity(ctx context.Context, id uint, entityType string) ([]models.ReactionView, error) {
	return s.listFn(ctx, id, entityType)
}
func (s *reactionRepoStub) Create(ctx context.Context, r *models.Reaction) error {
	return s.createFn(ctx, r)
}

func failOnCall(t *testing.T) func() {
	return func() {
		t.Error("repository must not be called")
	}
}

func assertValidationError(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}
