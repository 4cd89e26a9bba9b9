package blogposts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

type StarRequest struct {
	BlogPostID int64 `json:"blogPostId"`
}

// POST /api/blogposts/star (protected)
// Toggles the acting user's star on a post: present removes it and
// decrements the count, absent adds it and increments.
func ToggleStar(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req StarRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var post models.BlogPost
	if err := db.First(&post, req.BlogPostID).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	added, err := Toggle(db, post.ID, user.ID)
	if err != nil {
		logger.Log.Error().Err(err).Int64("post", post.ID).Msg("star toggle failed")
		return response.BadRequest(c, "Failed to update star")
	}

	if err := db.First(&post, post.ID).Error; err != nil {
		return response.BadRequest(c, "Failed to update star")
	}

	message := "Star removed Successfully."
	if added {
		message = "Star added Successfully."
	}

	return response.SuccessWithMessage(c, message, fiber.Map{
		"added": added,
		"stars": post.Stars,
	})
}

// POST /api/blogposts/star/status (protected)
// Read-only membership check, no side effects.
func StarStatus(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req StarRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var post models.BlogPost
	if err := db.First(&post, req.BlogPostID).Error; err != nil {
		return response.NotFound(c, "Post not found")
	}

	var count int64
	if err := db.Model(&models.Star{}).
		Where("blogPostId = ? AND userId = ?", post.ID, user.ID).
		Count(&count).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch star status")
	}

	return response.Success(c, fiber.Map{"starExist": count > 0})
}

// Toggle flips the (post, user) star row and keeps the post's star
// counter in step. The check and the write share one transaction, and
// the composite unique index backstops concurrent toggles.
func Toggle(db *gorm.DB, postID int64, userID string) (added bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Star
		findErr := tx.Where("blogPostId = ? AND userId = ?", postID, userID).First(&existing).Error

		if findErr == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			added = false
			return tx.Model(&models.BlogPost{}).Where("id = ?", postID).
				Update("stars", gorm.Expr("stars - 1")).Error
		}
		if findErr != gorm.ErrRecordNotFound {
			return findErr
		}

		if err := tx.Create(&models.Star{BlogPostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		added = true
		return tx.Model(&models.BlogPost{}).Where("id = ?", postID).
			Update("stars", gorm.Expr("stars + 1")).Error
	})
	return added, err
}
