package forumqueries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/forumquery/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid query id")
	}

	var query models.ForumQuery
	if err := db.Preload("Category").Preload("Author").First(&query, id).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	return response.Success(c, query)
}

// GET /api/forumquery/slug/:slug
func GetBySlug(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var query models.ForumQuery
	if err := db.Preload("Category").Preload("Author").
		Where("slug = ?", c.Params("slug")).First(&query).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	return response.Success(c, query)
}
