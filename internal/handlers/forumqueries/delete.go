package forumqueries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

// DELETE /api/forumquery/:id (Admin)
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid query id")
	}

	var query models.ForumQuery
	if err := db.First(&query, id).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	if err := DeleteCascade(db, &query); err != nil {
		logger.Log.Error().Err(err).Int64("query", query.ID).Msg("forum query delete failed")
		return response.BadRequest(c, "Failed to delete query")
	}

	return response.SuccessWithMessage(c, "Query deleted Successfully.", nil)
}

// DeleteCascade removes the query's sub-answers, answers and votes
// before the query row itself, all in one transaction.
func DeleteCascade(db *gorm.DB, query *models.ForumQuery) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var answerIDs []int64
		if err := tx.Model(&models.ForumAnswer{}).Where("queryId = ?", query.ID).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		if len(answerIDs) > 0 {
			if err := tx.Where("answerId IN ?", answerIDs).Delete(&models.ForumSubAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("queryId = ?", query.ID).Delete(&models.ForumAnswer{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("forumId = ?", query.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.ForumQuery{}, query.ID).Error
	})
}
