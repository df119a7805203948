package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/swagger"
)

// Route is one entry of a resource route table.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
	Summary string
}

func (s *Server) userRoutes() []Route {
	return []Route{
		{fiber.MethodGet, "/api/users", s.GetUsers, "List users"},
		{fiber.MethodPost, "/api/users", s.CreateUser, "Create a user"},
	}
}

// postRoutes lists specific /:id/<resource> paths before the generic /:id ones.
func (s *Server) postRoutes() []Route {
	return []Route{
		{fiber.MethodGet, "/api/posts", s.GetPosts, "List posts"},
		{fiber.MethodPost, "/api/posts", s.CreatePost, "Create a post"},
		{fiber.MethodGet, "/api/posts/:id/comments", s.GetComments, "List comments on a post"},
		{fiber.MethodPost, "/api/posts/:id/comments", s.CreateComment, "Comment on a post"},
		{fiber.MethodGet, "/api/posts/:id/reactions", s.GetReactions, "List reactions on a post"},
		{fiber.MethodPost, "/api/posts/:id/reactions", s.CreatePostReaction, "React to a post"},
		{fiber.MethodGet, "/api/posts/:id", s.GetPost, "Get a post with comments and reactions"},
		{fiber.MethodPut, "/api/posts/:id", s.UpdatePost, "Update a post"},
		{fiber.MethodDelete, "/api/posts/:id", s.DeletePost, "Delete a post"},
	}
}

func (s *Server) reactionRoutes() []Route {
	return []Route{
		{fiber.MethodPost, "/api/reactions", s.CreateReaction, "React to a post or a comment"},
	}
}

// Routes returns every API route served under /api.
func (s *Server) Routes() []Route {
	var routes []Route
	routes = append(routes, s.userRoutes()...)
	routes = append(routes, s.postRoutes()...)
	routes = append(routes, s.reactionRoutes()...)
	return routes
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Welcome)

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/api/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Code Book Metrics Dashboard",
	}))

	app.Get("/api-docs/*", swagger.HandlerDefault)

	for _, r := range s.Routes() {
		app.Add(r.Method, r.Path, r.Handler)
	}
}
