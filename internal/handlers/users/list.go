package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/pagination"
	"github.com/inforum/backend/pkg/response"
)

// GET /api/user/list
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()
	page, size := pagination.Params(c)

	var totalCount int64
	if err := db.Model(&models.User{}).Count(&totalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch users")
	}

	var users []models.User
	if err := db.Preload("Roles").
		Order("dateJoined DESC").
		Offset(pagination.Offset(page, size)).
		Limit(size).
		Find(&users).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch users")
	}

	meta := pagination.NewMetadata(totalCount, page, size)
	pagination.SetHeader(c, meta)

	views := make([]fiber.Map, 0, len(users))
	for i := range users {
		view := userView(&users[i])
		view["userRole"] = users[i].PrimaryRole()
		views = append(views, view)
	}

	return response.Success(c, fiber.Map{
		"users":      views,
		"pagination": meta,
	})
}

// GET /api/user/list/user
func ListUsers(c *fiber.Ctx) error {
	return listByRole(c, models.RoleUser)
}

// GET /api/user/list/editor
func ListEditors(c *fiber.Ctx) error {
	return listByRole(c, models.RoleEditor)
}

// GET /api/user/list/admin (Admin)
func ListAdmins(c *fiber.Ctx) error {
	return listByRole(c, models.RoleAdmin)
}

func listByRole(c *fiber.Ctx, roleName string) error {
	db := database.GetDatabase()

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return response.Success(c, fiber.Map{"users": []fiber.Map{}})
	}

	var users []models.User
	if err := db.Model(&role).Association("Users").Find(&users); err != nil {
		return response.BadRequest(c, "Failed to fetch users")
	}

	views := make([]fiber.Map, 0, len(users))
	for i := range users {
		views = append(views, userView(&users[i]))
	}

	return response.Success(c, fiber.Map{"users": views})
}

// GET /api/user/roles/list (Admin)
func ListRoles(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var roles []models.Role
	if err := db.Find(&roles).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch roles")
	}

	return response.Success(c, fiber.Map{"roles": roles})
}
