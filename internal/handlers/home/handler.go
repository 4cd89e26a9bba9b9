package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/home
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var rows []models.Home
	if err := db.Find(&rows).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch home data")
	}

	return response.Success(c, rows)
}

// GET /api/home/:id
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid home id")
	}

	var row models.Home
	if err := db.First(&row, id).Error; err != nil {
		return response.NotFound(c, "Home data not found.")
	}

	return response.Success(c, row)
}

type HomeRequest struct {
	ID          int64  `json:"id"`
	SubHeading  string `json:"subHeading"`
	HeaderImage string `json:"headerImage"`
}

// POST /api/home (Admin)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var req HomeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	row := models.Home{
		SubHeading:  req.SubHeading,
		HeaderImage: req.HeaderImage,
	}

	if err := db.Create(&row).Error; err != nil {
		return response.BadRequest(c, "Failed to create home data")
	}

	return response.Created(c, "Home Data Created Successfully.", row)
}

// PUT /api/home/:id (Admin)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid home id")
	}

	var req HomeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if request data is Correct.")
	}

	var row models.Home
	if err := db.First(&row, id).Error; err != nil {
		return response.NotFound(c, "Home data not found.")
	}

	updates := map[string]interface{}{
		"subHeading":  req.SubHeading,
		"headerImage": req.HeaderImage,
	}

	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return response.BadRequest(c, "Failed to update home data")
	}

	return response.SuccessWithMessage(c, "Home Data Updated Successfully.", nil)
}

// DELETE /api/home/:id (Admin)
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid home id")
	}

	var row models.Home
	if err := db.First(&row, id).Error; err != nil {
		return response.NotFound(c, "Home data not found.")
	}

	if err := db.Delete(&models.Home{}, row.ID).Error; err != nil {
		return response.BadRequest(c, "Failed to delete home data")
	}

	return response.SuccessWithMessage(c, "Home Data Deleted Successfully.", nil)
}
