package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"golang.org/x/crypto/bcrypt"
)

type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// POST /api/user/change-password/:id (self or Admin)
func ChangePassword(c *fiber.Ctx) error {
	db := database.GetDatabase()
	targetID := c.Params("id")

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var target models.User
	if err := db.Where("id = ?", targetID).First(&target).Error; err != nil {
		return response.NotFound(c, "User not found.")
	}

	if !canActOn(actor, target.ID) {
		return response.Forbidden(c, "You are not authorized to perform this action!")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if len(req.Password) < 6 {
		return response.BadRequest(c, "Password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return response.BadRequest(c, "Failed to Change Password! Please try again.")
	}

	if err := db.Model(&models.User{}).Where("id = ?", target.ID).Update("password", string(hashed)).Error; err != nil {
		return response.BadRequest(c, "Failed to Change Password! Please try again.")
	}

	return response.SuccessWithMessage(c, "Password Changed Successfully!", nil)
}
