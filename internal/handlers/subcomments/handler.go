package subcomments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/subcomments?commentId=
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	query := db.Model(&models.SubComment{})
	if commentID := c.QueryInt("commentId", 0); commentID != 0 {
		query = query.Where("commentId = ?", commentID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch sub comments")
	}

	var subComments []models.SubComment
	if err := query.Preload("User").
		Order("datePosted DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&subComments).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch sub comments")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"subComments": subComments,
		"pagination":  meta,
	})
}

// GET /api/subcomments/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid sub comment id")
	}

	var subComment models.SubComment
	if err := db.Preload("User").First(&subComment, id).Error; err != nil {
		return response.NotFound(c, "Sub Comment not found.")
	}

	return response.Success(c, subComment)
}

type CreateSubCommentRequest struct {
	Description string `json:"description"`
	CommentID   int64  `json:"commentId"`
}

// POST /api/subcomments (protected)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req CreateSubCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Description == "" {
		return response.BadRequest(c, "Description is required")
	}

	var comment models.Comment
	if err := db.First(&comment, req.CommentID).Error; err != nil {
		return response.NotFound(c, "Comment not found.")
	}

	subComment := models.SubComment{
		Description: req.Description,
		CommentID:   req.CommentID,
		UserID:      user.ID,
	}

	if err := db.Create(&subComment).Error; err != nil {
		return response.BadRequest(c, "Failed to create sub comment")
	}

	return response.Created(c, "Sub Comment Added Successfully.", subComment)
}

type UpdateSubCommentRequest struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// PUT /api/subcomments/:id (protected)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid sub comment id")
	}

	var req UpdateSubCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if the Sub Comment data is valid or not.")
	}

	var subComment models.SubComment
	if err := db.First(&subComment, id).Error; err != nil {
		return response.NotFound(c, "Sub Comment not found.")
	}

	if err := db.Model(&subComment).Update("description", req.Description).Error; err != nil {
		return response.BadRequest(c, "Failed to update sub comment")
	}

	return response.SuccessWithMessage(c, "Sub Comment updated Successfully.", nil)
}

// DELETE /api/subcomments/:id (Admin)
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid sub comment id")
	}

	var subComment models.SubComment
	if err := db.First(&subComment, id).Error; err != nil {
		return response.NotFound(c, "Sub Comment not found.")
	}

	if err := db.Delete(&models.SubComment{}, subComment.ID).Error; err != nil {
		return response.BadRequest(c, "Failed to delete sub comment")
	}

	return response.SuccessWithMessage(c, "Sub Comment deleted Successfully.", nil)
}
