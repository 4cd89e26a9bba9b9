package forumqueries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"gorm.io/gorm"
)

type VoteRequest struct {
	ForumID int64 `json:"forumId"`
}

// POST /api/forumquery/vote (protected)
// Toggles the acting user's vote on a query: an existing vote is removed
// and the count decremented, a missing one added and the count bumped.
func ToggleVote(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var query models.ForumQuery
	if err := db.First(&query, req.ForumID).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	added, err := Toggle(db, query.ID, user.ID)
	if err != nil {
		logger.Log.Error().Err(err).Int64("query", query.ID).Msg("vote toggle failed")
		return response.BadRequest(c, "Failed to update vote")
	}

	if err := db.First(&query, query.ID).Error; err != nil {
		return response.BadRequest(c, "Failed to update vote")
	}

	message := "Vote removed Successfully."
	if added {
		message = "Vote added Successfully."
	}

	return response.SuccessWithMessage(c, message, fiber.Map{
		"added": added,
		"votes": query.Votes,
	})
}

// POST /api/forumquery/vote/status (protected)
// Read-only membership check, no side effects.
func VoteStatus(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var query models.ForumQuery
	if err := db.First(&query, req.ForumID).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	var count int64
	if err := db.Model(&models.Vote{}).
		Where("forumId = ? AND userId = ?", query.ID, user.ID).
		Count(&count).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch vote status")
	}

	return response.Success(c, fiber.Map{"voteExist": count > 0})
}

// Toggle flips the (query, user) vote row and keeps the query's vote
// counter in step. The check and the write share one transaction, and
// the composite unique index backstops concurrent toggles.
func Toggle(db *gorm.DB, queryID int64, userID string) (added bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		findErr := tx.Where("forumId = ? AND userId = ?", queryID, userID).First(&existing).Error

		if findErr == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			added = false
			return tx.Model(&models.ForumQuery{}).Where("id = ?", queryID).
				Update("votes", gorm.Expr("votes - 1")).Error
		}
		if findErr != gorm.ErrRecordNotFound {
			return findErr
		}

		if err := tx.Create(&models.Vote{ForumID: queryID, UserID: userID}).Error; err != nil {
			return err
		}
		added = true
		return tx.Model(&models.ForumQuery{}).Where("id = ?", queryID).
			Update("votes", gorm.Expr("votes + 1")).Error
	})
	return added, err
}
