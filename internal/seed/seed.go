// Package seed populates a Code Book database with fake users, posts,
// comments and reactions for development and testing. Everything goes
// through the services, so seeded rows pass the same validation and
// password hashing as API traffic.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"codebook/internal/database"
	"codebook/internal/middleware"
	"codebook/internal/models"
	"codebook/internal/repository"
	"codebook/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

var reactionLabels = []string{"like", "love", "haha", "wow", "sad", "angry"}

// Options configures the seeder.
type Options struct {
	NumUsers     int
	NumPosts     int
	MaxComments  int // per post
	MaxReactions int // per post
	// Seed makes the generated content reproducible. Zero picks a random seed.
	Seed int64
}

// Result counts what a run created.
type Result struct {
	Users     int
	Posts     int
	Comments  int
	Reactions int
}

// Seeder creates fake data through the services.
type Seeder struct {
	users     *service.UserService
	posts     *service.PostService
	comments  *service.CommentService
	reactions *service.ReactionService
	faker     *gofakeit.Faker
	opts      Options
}

// NewSeeder wires repositories and services over pool.
func NewSeeder(pool *database.Pool, opts Options) *Seeder {
	return &Seeder{
		users:     service.NewUserService(repository.NewUserRepository(pool)),
		posts:     service.NewPostService(repository.NewPostRepository(pool)),
		comments:  service.NewCommentService(repository.NewCommentRepository(pool)),
		reactions: service.NewReactionService(repository.NewReactionRepository(pool)),
		faker:     gofakeit.New(opts.Seed),
		opts:      opts,
	}
}

// Run creates users first, then posts by random authors, then comments and
// reactions by random users on each post.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	middleware.Logger.InfoContext(ctx, "Starting database seeding",
		slog.Int("users", s.opts.NumUsers),
		slog.Int("posts", s.opts.NumPosts),
	)

	userIDs := make([]uint, 0, s.opts.NumUsers)
	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.users.CreateUser(ctx, s.userInput(i))
		if err != nil {
			return res, fmt.Errorf("failed to create user %d: %w", i, err)
		}
		userIDs = append(userIDs, user.UserID)
	}
	res.Users = len(userIDs)
	if len(userIDs) == 0 {
		return res, nil
	}

	for i := 0; i < s.opts.NumPosts; i++ {
		post, err := s.posts.CreatePost(ctx, s.postInput(s.pick(userIDs)))
		if err != nil {
			return res, fmt.Errorf("failed to create post %d: %w", i, err)
		}
		res.Posts++

		n, err := s.commentOn(ctx, post.PostID, userIDs)
		res.Comments += n
		if err != nil {
			return res, err
		}

		n, err = s.reactTo(ctx, post.PostID, userIDs)
		res.Reactions += n
		if err != nil {
			return res, err
		}
	}

	middleware.Logger.InfoContext(ctx, "Database seeding completed",
		slog.Int("users", res.Users),
		slog.Int("posts", res.Posts),
		slog.Int("comments", res.Comments),
		slog.Int("reactions", res.Reactions),
	)
	return res, nil
}

func (s *Seeder) commentOn(ctx context.Context, postID uint, userIDs []uint) (int, error) {
	count := s.upTo(s.opts.MaxComments)
	for i := 0; i < count; i++ {
		_, err := s.comments.CreateComment(ctx, service.CreateCommentInput{
			PostID:  postID,
			Comment: s.faker.Sentence(s.faker.Number(4, 16)),
			UserID:  s.pick(userIDs),
		})
		if err != nil {
			return i, fmt.Errorf("failed to comment on post %d: %w", postID, err)
		}
	}
	return count, nil
}

func (s *Seeder) reactTo(ctx context.Context, postID uint, userIDs []uint) (int, error) {
	count := s.upTo(s.opts.MaxReactions)
	for i := 0; i < count; i++ {
		_, err := s.reactions.CreateReaction(ctx, service.CreateReactionInput{
			EntityID:   postID,
			EntityType: models.EntityPost,
			React:      reactionLabels[s.faker.Number(0, len(reactionLabels)-1)],
			UserID:     s.pick(userIDs),
		})
		if err != nil {
			return i, fmt.Errorf("failed to react to post %d: %w", postID, err)
		}
	}
	return count, nil
}

// userInput builds a user whose email is unique within the run.
func (s *Seeder) userInput(i int) service.CreateUserInput {
	first := s.faker.FirstName()
	last := s.faker.LastName()
	return service.CreateUserInput{
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
		Password:  DefaultPassword,
	}
}

// postInput builds a post; roughly a third carry an image.
func (s *Seeder) postInput(authorID uint) service.CreatePostInput {
	in := service.CreatePostInput{
		Title:   strings.TrimSuffix(s.faker.Sentence(s.faker.Number(3, 8)), "."),
		Content: s.faker.Paragraph(1, 3, 12, "\n"),
		UserID:  authorID,
	}
	if s.faker.Number(1, 3) == 1 {
		image := fmt.Sprintf("https://picsum.photos/seed/%s/800/800", s.faker.UUID())
		in.Image = &image
	}
	return in
}

func (s *Seeder) pick(ids []uint) uint {
	return ids[s.faker.Number(0, len(ids)-1)]
}

func (s *Seeder) upTo(limit int) int {
	if limit <= 0 {
		return 0
	}
	return s.faker.Number(0, limit)
}

// ClearAll deletes every row, children first so foreign keys hold.
func ClearAll(ctx context.Context, db *gorm.DB) error {
	middleware.Logger.InfoContext(ctx, "Clearing existing data")
	for _, table := range []string{"react", "comments", "post", "users"} {
		if err := db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
