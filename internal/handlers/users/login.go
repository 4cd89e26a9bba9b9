package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/user/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !utils.ValidateEmail(req.Email) {
		return response.BadRequest(c, "Invalid email address")
	}
	if len(req.Password) == 0 {
		return response.BadRequest(c, "Password is required")
	}

	db := database.GetDatabase()

	var user models.User
	if err := db.Preload("Roles").Where("email = ?", req.Email).First(&user).Error; err != nil {
		return response.NotFound(c, "Email or password is incorrect.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return response.NotFound(c, "Email or password is incorrect.")
	}

	if user.IsRestricted {
		return response.Forbidden(c, "Your account has been restricted. Please contact the administrator.")
	}

	token, expiry, err := utils.GenerateToken(&user)
	if err != nil {
		logger.Log.Error().Err(err).Str("user", user.ID).Msg("token generation failed")
		return response.InternalServerError(c, "Internal server error")
	}

	return response.Success(c, fiber.Map{
		"id":         user.ID,
		"role":       user.PrimaryRole(),
		"token":      token,
		"expiration": expiry,
	})
}
