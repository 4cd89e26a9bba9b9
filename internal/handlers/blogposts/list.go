package blogposts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/blogposts
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	var totalCount int64
	if err := db.Model(&models.BlogPost{}).Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch posts")
	}

	var posts []models.BlogPost
	if err := db.Preload("Category").Preload("Author").
		Order("datePosted DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&posts).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch posts")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"posts":      posts,
		"pagination": meta,
	})
}
