package comments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

// GET /api/comments?postId=
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	query := db.Model(&models.Comment{})
	if postID := c.QueryInt("postId", 0); postID != 0 {
		query = query.Where("postId = ?", postID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch comments")
	}

	var comments []models.Comment
	if err := query.Preload("User").
		Order("datePosted DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&comments).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch comments")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"comments":   comments,
		"pagination": meta,
	})
}

// GET /api/comments/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid comment id")
	}

	var comment models.Comment
	if err := db.Preload("User").First(&comment, id).Error; err != nil {
		return response.NotFound(c, "Comment not found.")
	}

	return response.Success(c, comment)
}

type CreateCommentRequest struct {
	Description string `json:"description"`
	PostID      int64  `json:"postId"`
}

// POST /api/comments (protected)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Description == "" {
		return response.BadRequest(c, "Description is required")
	}

	var post models.BlogPost
	if err := db.First(&post, req.PostID).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	comment := models.Comment{
		Description: req.Description,
		PostID:      req.PostID,
		UserID:      user.ID,
	}

	if err := db.Create(&comment).Error; err != nil {
		return response.BadRequest(c, "Failed to create comment")
	}

	return response.Created(c, "Comment Added Successfully.", comment)
}

type UpdateCommentRequest struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// PUT /api/comments/:id (protected)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid comment id")
	}

	var req UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if the Comment data is valid or not.")
	}

	var comment models.Comment
	if err := db.First(&comment, id).Error; err != nil {
		return response.NotFound(c, "Comment not found.")
	}

	if err := db.Model(&comment).Update("description", req.Description).Error; err != nil {
		return response.BadRequest(c, "Failed to update comment")
	}

	return response.SuccessWithMessage(c, "Comment updated Successfully.", nil)
}

// DELETE /api/comments/:id (Admin)
// Sub-comments under the comment go with it.
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid comment id")
	}

	var comment models.Comment
	if err := db.First(&comment, id).Error; err != nil {
		return response.NotFound(c, "Comment not found.")
	}

	if err := DeleteCascade(db, &comment); err != nil {
		logger.Log.Error().Err(err).Int64("comment", comment.ID).Msg("comment delete failed")
		return response.BadRequest(c, "Failed to delete comment")
	}

	return response.SuccessWithMessage(c, "Comment deleted Successfully.", nil)
}

// DeleteCascade removes the comment's sub-comments, then the comment,
// in one transaction.
func DeleteCascade(db *gorm.DB, comment *models.Comment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("commentId = ?", comment.ID).Delete(&models.SubComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, comment.ID).Error
	})
}
