package forumqueries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/forumquery?categorySlug=&authorId=&search=&voteSort=
// Filters are mutually exclusive; the first one present wins, in the
// order categorySlug, authorId, search, voteSort.
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	query := db.Model(&models.ForumQuery{})

	switch {
	case c.Query("categorySlug") != "":
		query = query.
			Joins("JOIN Category ON Category.id = ForumQuery.categoryId").
			Where("Category.slug = ?", c.Query("categorySlug")).
			Order("datePosted DESC")
	case c.Query("authorId") != "":
		query = query.Where("authorId = ?", c.Query("authorId")).Order("datePosted DESC")
	case c.Query("search") != "":
		query = query.Where("title LIKE ?", "%"+c.Query("search")+"%").Order("datePosted DESC")
	case c.QueryBool("voteSort"):
		query = query.Order("votes DESC")
	default:
		query = query.Order("datePosted DESC")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch queries")
	}

	var queries []models.ForumQuery
	if err := query.
		Preload("Category").Preload("Author").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&queries).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch queries")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"forumQuery": queries,
		"pagination": meta,
	})
}
