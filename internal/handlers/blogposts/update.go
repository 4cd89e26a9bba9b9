package blogposts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/slug"
)

type UpdatePostRequest struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Excerpt      string `json:"excerpt"`
	FeatureImage string `json:"featureImage"`
	CategoryID   int64  `json:"categoryId"`
}

// PUT /api/blogposts/:id (Editor, Admin)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post id")
	}

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if the Post data is Valid or not.")
	}
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	var post models.BlogPost
	if err := db.First(&post, id).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	// slug is derived, never editable: recompute from the new title
	updates := map[string]interface{}{
		"title":        req.Title,
		"description":  req.Description,
		"excerpt":      req.Excerpt,
		"featureImage": req.FeatureImage,
		"categoryId":   req.CategoryID,
		"slug":         slug.MakeWithID(req.Title, post.ID),
	}

	if err := db.Model(&post).Updates(updates).Error; err != nil {
		return response.BadRequest(c, "Failed to update post")
	}

	return response.SuccessWithMessage(c, "Post updated Successfully.", nil)
}
