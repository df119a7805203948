package service

import (
	"context"
	"errors"
	"testing"

	"codebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	called := failOnCall(t)
	svc := NewPostService(&postRepoStub{
		createFn: func(context.Context, *models.Post) error { called(); return nil },
	})

	for name, in := range map[string]CreatePostInput{
		"missing title":   {Content: "Body", UserID: 1},
		"missing content": {Title: "Hi", UserID: 1},
		"missing userID":  {Title: "Hi", Content: "Body"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(context.Background(), in)
			assertValidationError(t, err, "Title, content, and userID are required.")
		})
	}
}

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	empty := ""
	img := "https://img.example/1.png"

	tests := []struct {
		name      string
		image     *string
		wantImage *string
	}{
		{"without image", nil, nil},
		{"empty image kept as given", &empty, &empty},
		{"with image", &img, &img},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewPostService(&postRepoStub{
				createFn: func(_ context.Context, p *models.Post) error {
					p.PostID = 3
					return nil
				},
			})

			post, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "Hi", Content: "Body", Image: tt.image, UserID: 1})
			require.NoError(t, err)
			assert.Equal(t, uint(3), post.PostID)
			assert.Equal(t, tt.wantImage, post.Image)
		})
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          UpdatePostInput
		wantMessage string
		wantCalled  bool
	}{
		{
			name:        "no fields",
			in:          UpdatePostInput{PostID: 1},
			wantMessage: "At least one field (title, content, or Image) must be provided for update.",
		},
		{
			name:        "only empty or null fields",
			in:          UpdatePostInput{PostID: 1, Title: models.Some(""), Image: models.Null()},
			wantMessage: "At least one field (title, content, or Image) must be provided for update.",
		},
		{
			name:        "null content",
			in:          UpdatePostInput{PostID: 1, Title: models.Some("t"), Content: models.Null()},
			wantMessage: "Title and content cannot be null.",
		},
		{
			name:        "validation runs before the id check",
			in:          UpdatePostInput{},
			wantMessage: "At least one field (title, content, or Image) must be provided for update.",
		},
		{
			name:       "title with null image",
			in:         UpdatePostInput{PostID: 1, Title: models.Some("t"), Image: models.Null()},
			wantCalled: true,
		},
		{
			name:       "image only",
			in:         UpdatePostInput{PostID: 1, Image: models.Some("https://img/x.png")},
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got models.PostUpdate
			called := false
			svc := NewPostService(&postRepoStub{
				updateFn: func(_ context.Context, id uint, u models.PostUpdate) error {
					called = true
					got = u
					assert.Equal(t, uint(1), id)
					return nil
				},
			})

			err := svc.UpdatePost(context.Background(), tt.in)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantMessage != "" {
				assertValidationError(t, err, tt.wantMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.PostUpdate{Title: tt.in.Title, Content: tt.in.Content, Image: tt.in.Image}, got)
		})
	}
}

func TestPostService_PassThrough(t *testing.T) {
	t.Parallel()

	notFound := models.NewNotFoundError("Post not found.")
	repoErr := errors.New("down")
	svc := NewPostService(&postRepoStub{
		listFn:      func(context.Context) ([]models.PostListItem, error) { return nil, repoErr },
		getDetailFn: func(context.Context, uint) (*models.PostDetail, error) { return nil, notFound },
		deleteFn:    func(context.Context, uint) error { return notFound },
	})

	_, err := svc.ListPosts(context.Background())
	assert.ErrorIs(t, err, repoErr)

	_, err = svc.GetPost(context.Background(), 9)
	assert.ErrorIs(t, err, notFound)

	assert.ErrorIs(t, svc.DeletePost(context.Background(), 9), notFound)
}

func TestPostService_ZeroID(t *testing.T) {
	t.Parallel()

	svc := NewPostService(&postRepoStub{})

	_, err := svc.GetPost(context.Background(), 0)
	assertNotFound(t, err, "Post not found.")

	assertNotFound(t, svc.DeletePost(context.Background(), 0), "Post not found.")

	err = svc.UpdatePost(context.Background(), UpdatePostInput{Title: models.Some("t")})
	assertNotFound(t, err, "Post not found or no changes were made.")
}

func assertNotFound(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}
