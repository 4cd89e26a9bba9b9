package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/internal/seed"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

// POST /api/user/delete/:id (Admin)
// Permanently deletes the user. Content the user authored is reassigned
// to the default user; their votes and stars are removed outright.
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()
	targetID := c.Params("id")

	var user models.User
	if err := db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	fallback, err := seed.DefaultUser(db)
	if err != nil {
		logger.Log.Error().Err(err).Msg("default user missing, cannot delete")
		return response.BadRequest(c, "Failed to Delete User.")
	}

	if fallback.ID == user.ID {
		return response.BadRequest(c, "The default user cannot be deleted.")
	}

	if err := DeleteCascade(db, &user, fallback); err != nil {
		logger.Log.Error().Err(err).Str("user", user.ID).Msg("user delete failed")
		return response.BadRequest(c, "Failed to Delete User.")
	}

	logger.Log.Info().Str("user", user.ID).Str("fallback", fallback.ID).Msg("user deleted, content reassigned")

	return response.SuccessWithMessage(c, "User Deleted Successfully!", nil)
}

// DeleteCascade reassigns every row the user authored to the fallback
// user, removes the user's votes and stars (keeping the counters in step
// with the rows), clears role assignments and deletes the account. Runs
// as one transaction so a failure midway leaves nothing dangling.
func DeleteCascade(db *gorm.DB, user, fallback *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		reassign := []struct {
			model  interface{}
			column string
		}{
			{&models.BlogPost{}, "authorId"},
			{&models.Comment{}, "userId"},
			{&models.SubComment{}, "userId"},
			{&models.ForumQuery{}, "authorId"},
			{&models.ForumAnswer{}, "userId"},
			{&models.ForumSubAnswer{}, "userId"},
		}
		for _, r := range reassign {
			if err := tx.Model(r.model).Where(r.column+" = ?", user.ID).
				Update(r.column, fallback.ID).Error; err != nil {
				return err
			}
		}

		// votes and stars are dropped, so their counters shrink with them
		var votes []models.Vote
		if err := tx.Where("userId = ?", user.ID).Find(&votes).Error; err != nil {
			return err
		}
		for _, vote := range votes {
			if err := tx.Model(&models.ForumQuery{}).Where("id = ?", vote.ForumID).
				Update("votes", gorm.Expr("votes - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("userId = ?", user.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		var stars []models.Star
		if err := tx.Where("userId = ?", user.ID).Find(&stars).Error; err != nil {
			return err
		}
		for _, star := range stars {
			if err := tx.Model(&models.BlogPost{}).Where("id = ?", star.BlogPostID).
				Update("stars", gorm.Expr("stars - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("userId = ?", user.ID).Delete(&models.Star{}).Error; err != nil {
			return err
		}

		if err := tx.Model(user).Association("Roles").Clear(); err != nil {
			return err
		}

		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
}
