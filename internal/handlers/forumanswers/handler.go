package forumanswers

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

// GET /api/forumanswer?queryId=
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	query := db.Model(&models.ForumAnswer{})
	if queryID := c.QueryInt("queryId", 0); queryID != 0 {
		query = query.Where("queryId = ?", queryID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch answers")
	}

	var answers []models.ForumAnswer
	if err := query.Preload("User").
		Order("datePosted DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&answers).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch answers")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"answers":    answers,
		"pagination": meta,
	})
}

// GET /api/forumanswer/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid answer id")
	}

	var answer models.ForumAnswer
	if err := db.Preload("User").First(&answer, id).Error; err != nil {
		return response.NotFound(c, "Answer not found.")
	}

	return response.Success(c, answer)
}

type CreateAnswerRequest struct {
	Answer  string `json:"answer"`
	QueryID int64  `json:"queryId"`
}

// POST /api/forumanswer (protected)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Answer == "" {
		return response.BadRequest(c, "Answer is required")
	}

	var query models.ForumQuery
	if err := db.First(&query, req.QueryID).Error; err != nil {
		return response.NotFound(c, "Query not found.")
	}

	answer := models.ForumAnswer{
		Answer:  req.Answer,
		QueryID: req.QueryID,
		UserID:  user.ID,
	}

	if err := db.Create(&answer).Error; err != nil {
		return response.BadRequest(c, "Failed to create answer")
	}

	return response.Created(c, "Answer Added Successfully.", answer)
}

type UpdateAnswerRequest struct {
	ID     int64  `json:"id"`
	Answer string `json:"answer"`
}

// PUT /api/forumanswer/:id (protected)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid answer id")
	}

	var req UpdateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if the Answer data is valid or not.")
	}

	var answer models.ForumAnswer
	if err := db.First(&answer, id).Error; err != nil {
		return response.NotFound(c, "Answer not found.")
	}

	if err := db.Model(&answer).Update("answer", req.Answer).Error; err != nil {
		return response.BadRequest(c, "Failed to update answer")
	}

	return response.SuccessWithMessage(c, "Answer updated Successfully.", nil)
}

// DELETE /api/forumanswer/:id (Admin)
// Sub-answers under the answer go with it.
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid answer id")
	}

	var answer models.ForumAnswer
	if err := db.First(&answer, id).Error; err != nil {
		return response.NotFound(c, "Answer not found.")
	}

	if err := DeleteCascade(db, &answer); err != nil {
		logger.Log.Error().Err(err).Int64("answer", answer.ID).Msg("answer delete failed")
		return response.BadRequest(c, "Failed to delete answer")
	}

	return response.SuccessWithMessage(c, "Answer deleted Successfully.", nil)
}

// DeleteCascade removes the answer's sub-answers, then the answer,
// in one transaction.
func DeleteCascade(db *gorm.DB, answer *models.ForumAnswer) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answerId = ?", answer.ID).Delete(&models.ForumSubAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ForumAnswer{}, answer.ID).Error
	})
}
