package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/categories/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category not Found.")
	}

	return response.Success(c, category)
}

// GET /api/categories/slug/:slug
func GetBySlug(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var category models.Category
	if err := db.Where("slug = ?", c.Params("slug")).First(&category).Error; err != nil {
		return response.NotFound(c, "Category not Found.")
	}

	return response.Success(c, category)
}
