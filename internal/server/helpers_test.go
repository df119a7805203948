package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"codebook/internal/config"
	"codebook/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	users     *MockUserRepository
	posts     *MockPostRepository
	comments  *MockCommentRepository
	reactions *MockReactionRepository
}

// newTestApp builds the full application over mock repositories.
func newTestApp(t *testing.T) (*fiber.App, testRepos) {
	t.Helper()
	repos := testRepos{
		users:     new(MockUserRepository),
		posts:     new(MockPostRepository),
		comments:  new(MockCommentRepository),
		reactions: new(MockReactionRepository),
	}
	s := &Server{
		config:          &config.Config{AllowedOrigins: "*"},
		userService:     service.NewUserService(repos.users),
		postService:     service.NewPostService(repos.posts),
		commentService:  service.NewCommentService(repos.comments),
		reactionService: service.NewReactionService(repos.reactions),
	}
	t.Cleanup(func() {
		repos.users.AssertExpectations(t)
		repos.posts.AssertExpectations(t)
		repos.comments.AssertExpectations(t)
		repos.reactions.AssertExpectations(t)
	})
	return s.NewApp(), repos
}

// doRequest sends a request with an optional raw JSON body and returns the status and body.
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// errorBody is the decoded form of models.ErrorResponse.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}
