package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/internal/seed"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

// DELETE /api/categories/:id (Admin)
// Posts and queries filed under the category are moved to General before
// the row goes away; the General category itself can never be deleted.
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category does not exist.")
	}

	general, err := seed.GeneralCategory(db)
	if err != nil {
		logger.Log.Error().Err(err).Msg("general category missing, cannot delete")
		return response.BadRequest(c, "Failed to delete category")
	}

	if category.ID == general.ID || category.Name == seed.GeneralCategoryName {
		return response.BadRequest(c, "The General category cannot be deleted.")
	}

	if err := DeleteCascade(db, &category, general); err != nil {
		logger.Log.Error().Err(err).Int64("category", category.ID).Msg("category delete failed")
		return response.BadRequest(c, "Failed to delete category")
	}

	logger.Log.Info().Int64("category", category.ID).Int64("general", general.ID).Msg("category deleted, rows reassigned")

	return response.SuccessWithMessage(c, "Category Deleted Successfully.", nil)
}

// DeleteCascade reassigns every blog post and forum query under the
// category to the General category, then deletes the category row.
// Reassignment runs before the delete so no foreign key is left dangling;
// the whole sequence is one transaction.
func DeleteCascade(db *gorm.DB, category, general *models.Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BlogPost{}).Where("categoryId = ?", category.ID).
			Update("categoryId", general.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ForumQuery{}).Where("categoryId = ?", category.ID).
			Update("categoryId", general.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Category{}, category.ID).Error
	})
}
