package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// POST /api/user/register
func Register(c *fiber.Ctx) error {
	return register(c, models.RoleUser, "User created successfully!")
}

// POST /api/user/register-admin (Admin)
func RegisterAdmin(c *fiber.Ctx) error {
	return register(c, models.RoleAdmin, "Admin created successfully!")
}

// POST /api/user/register-editor (Admin)
func RegisterEditor(c *fiber.Ctx) error {
	return register(c, models.RoleEditor, "Editor created successfully!")
}

func register(c *fiber.Ctx, roleName, successMessage string) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := req.Validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	db := database.GetDatabase()

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "User already exists!")
	}

	user, err := CreateUser(db, &req, roleName)
	if err != nil {
		logger.Log.Error().Err(err).Str("email", req.Email).Msg("user creation failed")
		return response.BadRequest(c, "User creation failed! Please check user data and try again.")
	}

	logger.Log.Info().Str("user", user.ID).Str("role", roleName).Msg("user created")

	return response.Created(c, successMessage, fiber.Map{"id": user.ID})
}

// CreateUser hashes the password, stores the user with placeholder
// profile fields and assigns the named role (creating it on first use).
// Shared with the first-run bootstrap.
func CreateUser(db *gorm.DB, req *RegisterRequest, roleName string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	gender := req.Gender
	if gender == "" {
		gender = models.GenderUnspecified
	}
	profileImage := req.ProfileImage
	if profileImage == "" {
		profileImage = defaultProfileImage
	}

	user := models.User{
		ID:           utils.GenerateShortID(),
		Email:        req.Email,
		Password:     string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       gender,
		ProfileImage: profileImage,
		IsRestricted: false,
		Address:      "",
		DOB:          "",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		role, err := EnsureRole(tx, roleName)
		if err != nil {
			return err
		}

		return tx.Model(&user).Association("Roles").Append(role)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
