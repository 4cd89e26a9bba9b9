package blogposts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

// DELETE /api/blogposts/:id (Editor, Admin)
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post id")
	}

	var post models.BlogPost
	if err := db.First(&post, id).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	if err := DeleteCascade(db, &post); err != nil {
		logger.Log.Error().Err(err).Int64("post", post.ID).Msg("blog post delete failed")
		return response.BadRequest(c, "Failed to delete post")
	}

	return response.SuccessWithMessage(c, "Post Deleted Successfully.", nil)
}

// DeleteCascade removes the post's sub-comments, comments and stars
// before the post row itself, all in one transaction.
func DeleteCascade(db *gorm.DB, post *models.BlogPost) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []int64
		if err := tx.Model(&models.Comment{}).Where("postId = ?", post.ID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			if err := tx.Where("commentId IN ?", commentIDs).Delete(&models.SubComment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("postId = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("blogPostId = ?", post.ID).Delete(&models.Star{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.BlogPost{}, post.ID).Error
	})
}
