package contactforms

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/utils"
)

// GET /api/contactforms (Admin)
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	var totalCount int64
	if err := db.Model(&models.ContactForm{}).Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch contact forms")
	}

	var forms []models.ContactForm
	if err := db.Order("createdOn DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&forms).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch contact forms")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	return response.Success(c, fiber.Map{
		"contactForms": forms,
		"pagination":   meta,
	})
}

// GET /api/contactforms/:id (Admin)
func Get(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid contact form id")
	}

	var form models.ContactForm
	if err := db.First(&form, id).Error; err != nil {
		return response.NotFound(c, "Contact form not found.")
	}

	return response.Success(c, form)
}

type CreateContactFormRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// POST /api/contactforms (public)
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var req CreateContactFormRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FullName == "" || req.Message == "" {
		return response.BadRequest(c, "Name and message are required")
	}
	if !utils.ValidateEmail(req.Email) {
		return response.BadRequest(c, "Invalid email address")
	}

	form := models.ContactForm{
		FullName: req.FullName,
		Email:    req.Email,
		Message:  req.Message,
	}

	if err := db.Create(&form).Error; err != nil {
		return response.BadRequest(c, "Failed to submit contact form")
	}

	return response.Created(c, "Contact Form Submitted Successfully.", form)
}

type UpdateContactFormRequest struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// PUT /api/contactforms/:id (Admin)
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid contact form id")
	}

	var req UpdateContactFormRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if int64(id) != req.ID {
		return response.BadRequest(c, "Check if request data is Correct.")
	}

	var form models.ContactForm
	if err := db.First(&form, id).Error; err != nil {
		return response.NotFound(c, "Contact form not found.")
	}

	updates := map[string]interface{}{
		"fullName": req.FullName,
		"email":    req.Email,
		"message":  req.Message,
	}

	if err := db.Model(&form).Updates(updates).Error; err != nil {
		return response.BadRequest(c, "Failed to update contact form")
	}

	return response.SuccessWithMessage(c, "Contact Form Updated Successfully.", nil)
}

// DELETE /api/contactforms/:id (Admin)
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid contact form id")
	}

	var form models.ContactForm
	if err := db.First(&form, id).Error; err != nil {
		return response.NotFound(c, "Contact form not found.")
	}

	if err := db.Delete(&models.ContactForm{}, form.ID).Error; err != nil {
		return response.BadRequest(c, "Failed to delete contact form")
	}

	return response.SuccessWithMessage(c, "Contact Form Deleted Successfully.", nil)
}
