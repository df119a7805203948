// Command main runs the database seeder for Code Book.
package main

import (
	"context"
	"flag"
	"log"

	"codebook/internal/bootstrap"
	"codebook/internal/config"
	"codebook/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 60, "Number of posts to create")
	maxComments := flag.Int("comments", 5, "Maximum comments per post")
	maxReactions := flag.Int("reactions", 8, "Maximum reactions per post")
	randSeed := flag.Int64("seed", 0, "Seed for generated content (0 = random)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Target: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() { _ = pool.Close() }()

	if *shouldClean {
		if err := seed.ClearAll(ctx, pool.DB()); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	res, err := seed.NewSeeder(pool, seed.Options{
		NumUsers:     *numUsers,
		NumPosts:     *numPosts,
		MaxComments:  *maxComments,
		MaxReactions: *maxReactions,
		Seed:         *randSeed,
	}).Run(ctx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d posts, %d comments, %d reactions", res.Users, res.Posts, res.Comments, res.Reactions)
	log.Printf("All seeded users have the password: %s", seed.DefaultPassword)
}
