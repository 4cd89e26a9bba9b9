package blogposts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/slug"
	"gorm.io/gorm"
)

type CreatePostRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Excerpt      string `json:"excerpt"`
	FeatureImage string `json:"featureImage"`
	CategoryID   int64  `json:"categoryId"`
}

// POST /api/blogposts (Editor, Admin)
// The slug embeds the generated id, so the row is inserted first and the
// slug persisted in a second write.
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	author, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}
	if req.CategoryID == 0 {
		return response.BadRequest(c, "Category is required")
	}

	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		return response.NotFound(c, "Category not Found.")
	}

	post := models.BlogPost{
		Title:        req.Title,
		Description:  req.Description,
		Excerpt:      req.Excerpt,
		FeatureImage: req.FeatureImage,
		CategoryID:   req.CategoryID,
		AuthorID:     author.ID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		post.Slug = slug.MakeWithID(post.Title, post.ID)
		return tx.Model(&post).Update("slug", post.Slug).Error
	})
	if err != nil {
		logger.Log.Error().Err(err).Msg("blog post creation failed")
		return response.BadRequest(c, "Failed to create post")
	}

	return response.Created(c, "Post Added Successfully.", post)
}
