package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/slug"
)

type UpdateCategoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PUT /api/categories/:id (Admin)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}

	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if request data is Correct.")
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category Does not Exist")
	}

	name := titleCase(req.Name)
	if name == "" {
		return response.BadRequest(c, "Category name is required")
	}

	updates := map[string]interface{}{
		"name": name,
		"slug": slug.Make(name),
	}

	if err := db.Model(&category).Updates(updates).Error; err != nil {
		return response.BadRequest(c, "Failed to update category")
	}

	return response.SuccessWithMessage(c, "Category Modified Successfully.", nil)
}
