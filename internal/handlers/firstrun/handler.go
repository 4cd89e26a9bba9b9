package firstrun

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/handlers/users"
	"github.com/inforum/backend/internal/logger"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/internal/seed"
	"github.com/inforum/backend/pkg/response"
	"github.com/inforum/backend/pkg/slug"
	"github.com/inforum/backend/pkg/utils"
	"gorm.io/gorm"
)

const (
	defaultHomeSubHeading  = "For Students made by Students."
	defaultHomeHeaderImage = "https://res.cloudinary.com/inforum/image/upload/v1644820069/Defaults/img-1_nvdef7.jpg"
)

// GET /api/firstrun
func Status(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var firstRun models.FirstRun
	if err := db.First(&firstRun).Error; err != nil {
		return response.SuccessWithMessage(c, "First Run not Performed.", fiber.Map{"isOpen": true})
	}

	return response.SuccessWithMessage(c, "First Run Finished.", fiber.Map{"isOpen": false})
}

// GET /api/firstrun/seed-status
// Reports which seed artifacts already exist, so bootstrap tooling can
// act idempotently.
func SeedStatus(c *fiber.Ctx) error {
	db := database.GetDatabase()

	roleNames := []string{models.RoleAdmin, models.RoleEditor, models.RoleUser}
	roles := make(map[string]bool, len(roleNames))
	for _, name := range roleNames {
		var count int64
		if err := db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return response.BadRequest(c, "Failed to fetch seed status")
		}
		roles[name] = count > 0
	}

	var defaultUserCount int64
	if err := db.Model(&models.User{}).Where("email = ?", seed.DefaultUserEmail).
		Count(&defaultUserCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch seed status")
	}

	var generalCount int64
	if err := db.Model(&models.Category{}).Where("name = ?", seed.GeneralCategoryName).
		Count(&generalCount).Error; err != nil {
		return response.BadRequest(c, "Failed to fetch seed status")
	}

	return response.Success(c, fiber.Map{
		"roles":           roles,
		"defaultUser":     defaultUserCount > 0,
		"generalCategory": generalCount > 0,
	})
}

// POST /api/firstrun
// Seeds roles, the first admin, the default user, the General category
// and the home content block, then locks itself for good. The whole
// sequence is one transaction: either the world is fully seeded and the
// route locked, or nothing happened.
func Run(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var firstRun models.FirstRun
	err := db.First(&firstRun).Error
	if err == nil {
		return response.Forbidden(c, "Route Locked and cannot be accessed.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Error().Err(err).Msg("first run state check failed")
		return response.InternalServerError(c, "Failed to read first run status.")
	}

	var req users.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := req.Validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, name := range []string{models.RoleAdmin, models.RoleEditor, models.RoleUser} {
			if _, err := users.EnsureRole(tx, name); err != nil {
				return err
			}
		}

		admin, err := users.CreateUser(tx, &req, models.RoleAdmin)
		if err != nil {
			return err
		}
		logger.Log.Info().Str("admin", admin.ID).Msg("first admin created")

		defaultUser, err := users.CreateUser(tx, &users.RegisterRequest{
			Email:     seed.DefaultUserEmail,
			Password:  utils.GeneratePassword(),
			FirstName: "Default",
			LastName:  "User",
			Gender:    models.GenderUnspecified,
		}, models.RoleUser)
		if err != nil {
			return err
		}
		logger.Log.Info().Str("user", defaultUser.ID).Msg("default user created")

		general := models.Category{
			Name: seed.GeneralCategoryName,
			Slug: slug.Make(seed.GeneralCategoryName),
		}
		if err := tx.Create(&general).Error; err != nil {
			return err
		}
		logger.Log.Info().Int64("category", general.ID).Msg("base category created")

		if err := tx.Create(&models.Home{
			SubHeading:  defaultHomeSubHeading,
			HeaderImage: defaultHomeHeaderImage,
		}).Error; err != nil {
			return err
		}

		return tx.Create(&models.FirstRun{
			IsFinished:        true,
			GeneralCategoryID: general.ID,
			DefaultUserID:     defaultUser.ID,
		}).Error
	})
	if err != nil {
		logger.Log.Error().Err(err).Msg("first run failed")
		return response.BadRequest(c, "First Run Failed. Please check the data and try again.")
	}

	logger.Log.Info().Msg("first run succeeded, route locked")

	return response.Created(c, "First Run Succeeded. This Route will be locked now.", nil)
}
