package blogposts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/blogposts/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post id")
	}

	var post models.BlogPost
	if err := db.Preload("Category").Preload("Author").First(&post, id).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	return response.Success(c, post)
}

// GET /api/blogposts/slug/:slug
func GetBySlug(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var post models.BlogPost
	if err := db.Preload("Category").Preload("Author").
		Where("slug = ?", c.Params("slug")).First(&post).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	return response.Success(c, post)
}
