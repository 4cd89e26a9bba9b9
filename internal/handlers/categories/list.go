package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/categories
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch categories")
	}

	return response.Success(c, categories)
}
