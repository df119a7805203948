package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"codebook/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postListColumns   = []string{"post_id", "title", "content", "image", "date_created", "user_id", "author_first_name", "author_last_name"}
	postDetailColumns = []string{"post_id", "title", "content", "image", "date_created", "author_id", "author_first_name", "author_last_name", "author_email"}
	commentColumns    = []string{"comment_id", "comment", "date_created", "commenter_id", "commenter_first_name", "commenter_last_name"}
	reactionColumns   = []string{"react_id", "react", "reactor_id", "reactor_first_name", "reactor_last_name"}
)

func TestPostRepository_List(t *testing.T) {
	pool, mock := setupMockDB(t)
	repo := NewPostRepository(pool)
	newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows(postListColumns).
		AddRow(2, "Second", "B", "https://img/2.png", newer, 1, "Ada", "Lovelace").
		AddRow(1, "First", "A", nil, older, 1, "Ada", "Lovelace")
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.date_created DESC, p.post_id DESC`)).WillReturnRows(rows)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, uint(2), posts[0].PostID)
	require.NotNil(t, posts[0].Image)
	assert.Equal(t, "https://img/2.png", *posts[0].Image)
	assert.Nil(t, posts[1].Image)
	assert.Equal(t, "Ada", posts[1].AuthorFirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListFailure(t *testing.T) {
	pool, mock := setupMockDB(t)
	repo := NewPostRepository(pool)

	mock.ExpectQuery(`FROM post p`).WillReturnError(errors.New("timeout"))

	_, err := repo.List(context.Background())

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Error fetching posts", appErr.Message)
	assert.Equal(t, models.CodeInternal, appErr.Code)
}

func TestPostRepository_GetDetail(t *testing.T) {
	pool, mock := setupMockDB(t)
	repo := NewPostRepository(pool)
	created := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.post_id = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(postDetailColumns).
			AddRow(3, "Hi", "Body", nil, created, 1, "Ada", "Lovelace", "ada@example.com"))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.date_created ASC, c.comment_id ASC`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(10, "first!", created.Add(time.Minute), 2, "Alan", "Turing").
			AddRow(11, "second", created.Add(2*time.Minute), 1, "Ada", "Lovelace"))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.entity_id = $1 AND r.entity_type = $2`)).
		WithArgs(3, "post").
		WillReturnRows(sqlmock.NewRows(reactionColumns).AddRow(7, "like", 2, "Alan", "Turing"))

	post, err := repo.GetDetail(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, uint(1), post.AuthorID)
	assert.Equal(t, "ada@example.com", post.AuthorEmail)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, uint(10), post.Comments[0].CommentID)
	assert.Equal(t, "Alan", post.Comments[0].CommenterFirstName)
	require.Len(t, post.Reactions, 1)
	assert.Equal(t, models.ReactionView{ReactID: 7, React: "like", ReactorID: 2, ReactorFirstName: "Alan", ReactorLastName: "Turing"}, post.Reactions[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetDetailEmptyCollections(t *testing.T) {
	pool, mock := setupMockDB(t)
	repo := NewPostRepository(pool)

	mock.ExpectQuery(`WHERE p.post_id`).
		WillReturnRows(sqlmock.NewRows(postDetailColumns).AddRow(3, "Hi", "Body", nil, time.Now(), 1, "Ada", "L", "a@x.io"))
	mock.ExpectQuery(`FROM comments c`).WillReturnRows(sqlmock.NewRows(commentColumns))
	mock.ExpectQuery(`FROM react r`).WillReturnRows(sqlmock.NewRows(reactionColumns))

	post, err := repo.GetDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)
	assert.NotNil(t, post.Reactions)
	assert.Empty(t, post.Reactions)
}

func TestPostRepository_GetDetailNotFound(t *testing.T) {
	pool, mock := setupMockDB(t)
	repo := NewPostRepository(pool)

	mock.ExpectQuery(`WHERE p.post_id`).WithArgs(99).WillReturnRows(sqlmock.NewRows(postDetailColumns))

	post, err := repo.GetDetail(context.Background(), 99)
	assert.Nil(t, post)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	assert.Equal(t, "Post not found.", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet(), "comments and reactions are not read for a missing post")
}

func TestPostRepository_Create(t *testing.T) {
	countSQL := regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE user_id = $1`)

	tests := []struct {
		name         string
		mockBehavior func(mock sqlmock.Sqlmock)
		wantCode     string
		wantMessage  string
	}{
		{
			name: "Success",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(countSQL).WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "post" ("title","content","image","date_created","user_id") VALUES ($1,$2,$3,$4,$5) RETURNING "post_id"`)).
					WithArgs("Hi", "Body", nil, sqlmock.AnyArg(), 1).
					WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(5))
			},
		},
		{
			name: "Author missing",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(countSQL).WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			wantCode:    models.CodeNotFound,
			wantMessage: "Author (userID) not found.",
		},
		{
			name: "Author deleted between check and insert",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(countSQL).WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(`INSERT INTO "post"`).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			wantCode:    models.CodeValidation,
			wantMessage: "Invalid userID provided. User does not exist.",
		},
		{
			name: "Insert failure",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(countSQL).WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(`INSERT INTO "post"`).WillReturnError(errors.New("boom"))
			},
			wantCode:    models.CodeInternal,
			wantMessage: "Error creating post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, mock := setupMockDB(t)
			repo := NewPostRepository(pool)
			tt.mockBehavior(mock)

			post := &models.Post{Title: "Hi", Content: "Body", UserID: 1}
			err := repo.Create(context.Background(), post)

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, uint(5), post.PostID)
			} else {
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantMessage, appErr.Message)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_Update(t *testing.T) {
	t.Run("No fields runs no statement", func(t *testing.T) {
		pool, mock := setupMockDB(t)
		repo := NewPostRepository(pool)

		err := repo.Update(context.Background(), 1, models.PostUpdate{})
		assert.True(t, models.IsCode(err, models.CodeValidation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Applies supplied fields only", func(t *testing.T) {
		pool, mock := setupMockDB(t)
		repo := NewPostRepository(pool)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE post SET title = $1, image = $2 WHERE post_id = $3 AND (title IS DISTINCT FROM $4 OR image IS DISTINCT FROM $5)`)).
			WithArgs("New", nil, 4, "New", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), 4, models.PostUpdate{Title: models.Some("New"), Image: models.Null()})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero rows is not found", func(t *testing.T) {
		pool, mock := setupMockDB(t)
		repo := NewPostRepository(pool)

		mock.ExpectExec(`UPDATE post SET content`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), 4, models.PostUpdate{Content: models.Some("same")})
		assert.True(t, models.IsCode(err, models.CodeNotFound))
		assert.Equal(t, "Post not found or no changes were made.", err.Error())
	})

	t.Run("Driver failure is internal", func(t *testing.T) {
		pool, mock := setupMockDB(t)
		repo := NewPostRepository(pool)

		mock.ExpectExec(`UPDATE post`).WillReturnError(errors.New("deadlock"))

		err := repo.Update(context.Background(), 4, models.PostUpdate{Title: models.Some("x")})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Error updating post", appErr.Message)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM "post" WHERE "post"."post_id" = $1`)

	pool, mock := setupMockDB(t)
	repo := NewPostRepository(pool)

	mock.ExpectExec(deleteSQL).WithArgs(6).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteSQL).WithArgs(6).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 6))

	err := repo.Delete(context.Background(), 6)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	assert.Equal(t, "Post not found.", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}
