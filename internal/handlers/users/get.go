package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/user/single/:id
func GetSingle(c *fiber.Ctx) error {
	db := database.GetDatabase()
	userID := c.Params("id")

	var user models.User
	if err := db.Preload("Roles").Where("id = ?", userID).First(&user).Error; err != nil {
		return response.NotFound(c, "User not found.")
	}

	return response.Success(c, fiber.Map{
		"user":     userView(&user),
		"userRole": user.PrimaryRole(),
	})
}

// GET /api/user/me (protected)
func Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	return response.Success(c, fiber.Map{
		"user":     userView(user),
		"userRole": user.PrimaryRole(),
	})
}
