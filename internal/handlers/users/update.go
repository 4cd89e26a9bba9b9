package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/middleware"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/utils"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
	Address      string `json:"address"`
	DOB          string `json:"dob"`
}

// PATCH /api/user/update/:id (self or Admin)
func Update(c *fiber.Ctx) error {
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
		return response.Forbidden(c, "You are not authorized to update this user!")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !utils.ValidateEmail(req.Email) {
		return response.BadRequest(c, "Invalid email address")
	}
	if req.Gender != "" && !models.ValidGender(req.Gender) {
		return response.BadRequest(c, "Gender must be Male, Female or Unspecified")
	}

	// email doubles as the username, so it must stay unique
	var existing models.User
	if err := db.Where("email = ? AND id != ?", req.Email, target.ID).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Email already taken")
	}

	updates := map[string]interface{}{
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"gender":       req.Gender,
		"email":        req.Email,
		"profileImage": req.ProfileImage,
		"address":      req.Address,
		"dob":          req.DOB,
	}

	if err := db.Model(&models.User{}).Where("id = ?", target.ID).Updates(updates).Error; err != nil {
		return response.BadRequest(c, "Failed to Update User! Please check user details and try again.")
	}

	return response.SuccessWithMessage(c, "User Updated Successfully!", nil)
}

type RoleUpdateRequest struct {
	UserID string `json:"userId"`
	RoleID string `json:"roleId"`
}

// PATCH /api/user/role/update (Admin)
// Replaces the user's current primary role with the role named by roleId.
func UpdateRole(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var req RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var user models.User
	if err := db.Preload("Roles").Where("id = ?", req.UserID).First(&user).Error; err != nil {
		return response.NotFound(c, "User or Role not found")
	}

	var newRole models.Role
	if err := db.Where("id = ?", req.RoleID).First(&newRole).Error; err != nil {
		return response.NotFound(c, "User or Role not found")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(user.Roles) > 0 {
			if err := tx.Model(&user).Association("Roles").Delete(&user.Roles[0]); err != nil {
				return err
			}
		}
		return tx.Model(&user).Association("Roles").Append(&newRole)
	})
	if err != nil {
		logger.Log.Error().Err(err).Str("user", user.ID).Msg("role update failed")
		return response.BadRequest(c, "Failed to Update User Role! Please try again.")
	}

	return response.SuccessWithMessage(c, "User Role Updated Successfully!", nil)
}

// POST /api/user/restrict/:id (Admin)
// Toggles the isRestricted flag.
func Restrict(c *fiber.Ctx) error {
	db := database.GetDatabase()
	targetID := c.Params("id")

	var user models.User
	if err := db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	restricted := !user.IsRestricted
	if err := db.Model(&user).Update("isRestricted", restricted).Error; err != nil {
		return response.BadRequest(c, "Failed to Restrict User.")
	}

	if restricted {
		return response.SuccessWithMessage(c, "User Restricted Successfully!", nil)
	}
	return response.SuccessWithMessage(c, "User Un-Restricted Successfully!", nil)
}
