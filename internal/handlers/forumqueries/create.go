package forumqueries

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

type CreateQueryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
}

// POST /api/forumquery (protected)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	author, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req CreateQueryRequest
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

	query := models.ForumQuery{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		AuthorID:    author.ID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&query).Error; err != nil {
			return err
		}
		query.Slug = slug.MakeWithID(query.Title, query.ID)
		return tx.Model(&query).Update("slug", query.Slug).Error
	})
	if err != nil {
		logger.Log.Error().Err(err).Msg("forum query creation failed")
		return response.BadRequest(c, "Failed to create query")
	}

	return response.Created(c, "Query Added Successfully.", query)
}
