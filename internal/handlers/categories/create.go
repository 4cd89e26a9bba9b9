package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/slug"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// POST /api/categories (Admin)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	name := titleCase(req.Name)
	if name == "" {
		return response.BadRequest(c, "Category name is required")
	}

	var existing models.Category
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Category already exists.")
	}

	category := models.Category{
		Name: name,
		Slug: slug.Make(name),
	}

	if err := db.Create(&category).Error; err != nil {
		return response.BadRequest(c, "Failed to create category")
	}

	return response.Created(c, "Category created Successfully.", category)
}
