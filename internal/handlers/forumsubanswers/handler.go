package forumsubanswers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/forumsubanswers?answerId=
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	query := db.Model(&models.ForumSubAnswer{})
	if answerID := c.QueryInt("answerId", 0); answerID != 0 {
		query = query.Where("answerId = ?", answerID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch sub answers")
	}

	var subAnswers []models.ForumSubAnswer
	if err := query.Preload("User").
		Order("datePosted DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&subAnswers).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch sub answers")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"subAnswers": subAnswers,
		"pagination": meta,
	})
}

// GET /api/forumsubanswers/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid sub answer id")
	}

	var subAnswer models.ForumSubAnswer
	if err := db.Preload("User").First(&subAnswer, id).Error; err != nil {
		return response.NotFound(c, "Sub Answer not found.")
	}

	return response.Success(c, subAnswer)
}

type CreateSubAnswerRequest struct {
	Answer   string `json:"answer"`
	AnswerID int64  `json:"answerId"`
}

// POST /api/forumsubanswers (protected)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req CreateSubAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Answer == "" {
		return response.BadRequest(c, "Answer is required")
	}

	var answer models.ForumAnswer
	if err := db.First(&answer, req.AnswerID).Error; err != nil {
		return response.NotFound(c, "Answer not found.")
	}

	subAnswer := models.ForumSubAnswer{
		Answer:   req.Answer,
		AnswerID: req.AnswerID,
		UserID:   user.ID,
	}

	if err := db.Create(&subAnswer).Error; err != nil {
		return response.BadRequest(c, "Failed to create sub answer")
	}

	return response.Created(c, "Sub Answer Added Successfully.", subAnswer)
}

type UpdateSubAnswerRequest struct {
	ID     int64  `json:"id"`
	Answer string `json:"answer"`
}

// PUT /api/forumsubanswers/:id (protected)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid sub answer id")
	}

	var req UpdateSubAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if the Sub Answer data is valid or not.")
	}

	var subAnswer models.ForumSubAnswer
	if err := db.First(&subAnswer, id).Error; err != nil {
		return response.NotFound(c, "Sub Answer not found.")
	}

	if err := db.Model(&subAnswer).Update("answer", req.Answer).Error; err != nil {
		return response.BadRequest(c, "Failed to update sub answer")
	}

	return response.SuccessWithMessage(c, "Sub Answer updated Successfully.", nil)
}

// DELETE /api/forumsubanswers/:id (Admin)
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid sub answer id")
	}

	var subAnswer models.ForumSubAnswer
	if err := db.First(&subAnswer, id).Error; err != nil {
		return response.NotFound(c, "Sub Answer not found.")
	}

	if err := db.Delete(&models.ForumSubAnswer{}, subAnswer.ID).Error; err != nil {
		return response.BadRequest(c, "Failed to delete sub answer")
	}

	return response.SuccessWithMessage(c, "Sub Answer deleted Successfully.", nil)
}
