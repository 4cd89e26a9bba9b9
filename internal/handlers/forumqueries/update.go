package forumqueries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/slug"
)

type UpdateQueryRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
}

// PUT /api/forumquery/:id (protected)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid query id")
	}

	var req UpdateQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if the Query Data is valid or not.")
	}
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	var query models.ForumQuery
	if err := db.First(&query, id).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"categoryId":  req.CategoryID,
		"slug":        slug.MakeWithID(req.Title, query.ID),
	}

	if err := db.Model(&query).Updates(updates).Error; err != nil {
		return response.BadRequest(c, "Failed to update query")
	}

	return response.SuccessWithMessage(c, "Query updated Successfully.", nil)
}
