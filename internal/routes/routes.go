package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskhive/taskhive-backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	commentHandler *handlers.CommentHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)
	api.Get("/logs/recent", healthHandler.RecentLogs)

	// Static segments (search, statistics) must be registered before /:id.
	users := api.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/search", userHandler.Search)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/last-access", userHandler.TouchLastAccess)
	users.Patch("/:id", userHandler.Patch)
	users.Delete("/:id", userHandler.Delete)
	users.Get("/:id/tasks", userHandler.Tasks)

	projects := api.Group("/projects")
	projects.Post("/", projectHandler.Create)
	projects.Get("/search", projectHandler.Search)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.Get)
	projects.Put("/:id", projectHandler.Update)
	projects.Patch("/:id", projectHandler.Patch)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Get("/:id/tasks", projectHandler.Tasks)
	projects.Get("/:id/statistics", projectHandler.Statistics)

	tasks := api.Group("/tasks")
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/search", taskHandler.Search)
	tasks.Get("/statistics", taskHandler.Statistics)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/status", taskHandler.ChangeStatus)
	tasks.Patch("/:id/assign", taskHandler.Assign)
	tasks.Patch("/:id", taskHandler.Patch)
	tasks.Delete("/:id", taskHandler.Delete)

	comments := api.Group("/comments")
	comments.Post("/", commentHandler.Create)
	comments.Get("/task/:taskId", commentHandler.ForTask)
	comments.Get("/:id", commentHandler.Get)
	comments.Put("/:id", commentHandler.Update)
	comments.Delete("/:id", commentHandler.Delete)
}
