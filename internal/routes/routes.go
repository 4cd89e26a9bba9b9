package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/config"
	"github.com/inforum/backend/internal/handlers/blogposts"
	"github.com/inforum/backend/internal/handlers/categories"
	"github.com/inforum/backend/internal/handlers/comments"
	"github.com/inforum/backend/internal/handlers/contactforms"
	"github.com/inforum/backend/internal/handlers/firstrun"
	"github.com/inforum/backend/internal/handlers/forumanswers"
	"github.com/inforum/backend/internal/handlers/forumqueries"
	"github.com/inforum/backend/internal/handlers/forumsubanswers"
	"github.com/inforum/backend/internal/handlers/home"
	"github.com/inforum/backend/internal/handlers/subcomments"
	"github.com/inforum/backend/internal/handlers/users"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
)

func Setup(app *fiber.App, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	editorOrAdmin := middleware.RequireRoles(models.RoleEditor, models.RoleAdmin)

	// First run
	firstRunRoutes := api.Group("/firstrun")
	{
		firstRunRoutes.Get("/", firstrun.Status)
		firstRunRoutes.Get("/seed-status", firstrun.SeedStatus)
		firstRunRoutes.Post("/", firstrun.Run)
	}

	// Users
	userRoutes := api.Group("/user")
	{
		userRoutes.Post("/login", users.Login)
		userRoutes.Post("/register", users.Register)
		userRoutes.Post("/register-admin", auth, adminOnly, users.RegisterAdmin)
		userRoutes.Post("/register-editor", auth, adminOnly, users.RegisterEditor)
		userRoutes.Get("/list", users.List)
		userRoutes.Get("/list/user", users.ListUsers)
		userRoutes.Get("/list/editor", users.ListEditors)
		userRoutes.Get("/list/admin", auth, adminOnly, users.ListAdmins)
		userRoutes.Get("/roles/list", auth, adminOnly, users.ListRoles)
		userRoutes.Get("/single/:id", users.GetSingle)
		userRoutes.Get("/me", auth, users.Me)
		userRoutes.Patch("/update/:id", auth, users.Update)
		userRoutes.Post("/change-password/:id", auth, users.ChangePassword)
		userRoutes.Patch("/role/update", auth, adminOnly, users.UpdateRole)
		userRoutes.Post("/restrict/:id", auth, adminOnly, users.Restrict)
		userRoutes.Post("/delete/:id", auth, adminOnly, users.Delete)
	}

	// Categories
	categoryRoutes := api.Group("/categories")
	{
		categoryRoutes.Get("/", categories.List)
		categoryRoutes.Get("/slug/:slug", categories.GetBySlug)
		categoryRoutes.Get("/:id", categories.Get)
		categoryRoutes.Post("/", auth, adminOnly, categories.Create)
		categoryRoutes.Put("/:id", auth, adminOnly, categories.Update)
		categoryRoutes.Delete("/:id", auth, adminOnly, categories.Delete)
	}

	// Blog posts
	blogPostRoutes := api.Group("/blogposts")
	{
		blogPostRoutes.Get("/", blogposts.List)
		blogPostRoutes.Get("/slug/:slug", blogposts.GetBySlug)
		blogPostRoutes.Post("/star", auth, blogposts.ToggleStar)
		blogPostRoutes.Post("/star/status", auth, blogposts.StarStatus)
		blogPostRoutes.Get("/:id", blogposts.Get)
		blogPostRoutes.Post("/", auth, editorOrAdmin, blogposts.Create)
		blogPostRoutes.Put("/:id", auth, editorOrAdmin, blogposts.Update)
		blogPostRoutes.Delete("/:id", auth, editorOrAdmin, blogposts.Delete)
	}

	// Comments
	commentRoutes := api.Group("/comments")
	{
		commentRoutes.Get("/", comments.List)
		commentRoutes.Get("/:id", comments.Get)
		commentRoutes.Post("/", auth, comments.Create)
		commentRoutes.Put("/:id", auth, comments.Update)
		commentRoutes.Delete("/:id", auth, adminOnly, comments.Delete)
	}

	// Sub comments
	subCommentRoutes := api.Group("/subcomments")
	{
		subCommentRoutes.Get("/", subcomments.List)
		subCommentRoutes.Get("/:id", subcomments.Get)
		subCommentRoutes.Post("/", auth, subcomments.Create)
		subCommentRoutes.Put("/:id", auth, subcomments.Update)
		subCommentRoutes.Delete("/:id", auth, adminOnly, subcomments.Delete)
	}

	// Forum queries
	forumQueryRoutes := api.Group("/forumquery")
	{
		forumQueryRoutes.Get("/", forumqueries.List)
		forumQueryRoutes.Get("/slug/:slug", forumqueries.GetBySlug)
		forumQueryRoutes.Post("/vote", auth, forumqueries.ToggleVote)
		forumQueryRoutes.Post("/vote/status", auth, forumqueries.VoteStatus)
		forumQueryRoutes.Get("/:id", forumqueries.Get)
		forumQueryRoutes.Post("/", auth, forumqueries.Create)
		forumQueryRoutes.Put("/:id", auth, forumqueries.Update)
		forumQueryRoutes.Delete("/:id", auth, adminOnly, forumqueries.Delete)
	}

	// Forum answers
	forumAnswerRoutes := api.Group("/forumanswer")
	{
		forumAnswerRoutes.Get("/", forumanswers.List)
		forumAnswerRoutes.Get("/:id", forumanswers.Get)
		forumAnswerRoutes.Post("/", auth, forumanswers.Create)
		forumAnswerRoutes.Put("/:id", auth, forumanswers.Update)
		forumAnswerRoutes.Delete("/:id", auth, adminOnly, forumanswers.Delete)
	}

	// Forum sub answers
	forumSubAnswerRoutes := api.Group("/forumsubanswers")
	{
		forumSubAnswerRoutes.Get("/", forumsubanswers.List)
		forumSubAnswerRoutes.Get("/:id", forumsubanswers.Get)
		forumSubAnswerRoutes.Post("/", auth, forumsubanswers.Create)
		forumSubAnswerRoutes.Put("/:id", auth, forumsubanswers.Update)
		forumSubAnswerRoutes.Delete("/:id", auth, adminOnly, forumsubanswers.Delete)
	}

	// Contact forms
	contactFormRoutes := api.Group("/contactforms")
	{
		contactFormRoutes.Get("/", auth, adminOnly, contactforms.List)
		contactFormRoutes.Get("/:id", auth, adminOnly, contactforms.Get)
		contactFormRoutes.Post("/", contactforms.Create)
		contactFormRoutes.Put("/:id", auth, adminOnly, contactforms.Update)
		contactFormRoutes.Delete("/:id", auth, adminOnly, contactforms.Delete)
	}

	// Home
	homeRoutes := api.Group("/home")
	{
		homeRoutes.Get("/", home.List)
		homeRoutes.Get("/:id", home.Get)
		homeRoutes.Post("/", auth, adminOnly, home.Create)
		homeRoutes.Put("/:id", auth, adminOnly, home.Update)
		homeRoutes.Delete("/:id", auth, adminOnly, home.Delete)
	}
}
