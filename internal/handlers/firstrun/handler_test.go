package firstrun

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/internal/seed"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true, NoLowerCase: true},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Home{},
		&models.FirstRun{},
	))

	database.SetDatabase(db)

	app := fiber.New()
	app.Get("/api/firstrun", Status)
	app.Get("/api/firstrun/seed-status", SeedStatus)
	app.Post("/api/firstrun", Run)
	return app, db
}

func postFirstRun(t *testing.T, app *fiber.App) int {
	t.Helper()
	body := `{"email":"admin@mail.com","password":"secret123","firstName":"Ada","lastName":"Admin"}`
	req := httptest.NewRequest("POST", "/api/firstrun", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRunSeedsEverything(t *testing.T) {
	app, db := setupApp(t)

	require.Equal(t, fiber.StatusCreated, postFirstRun(t, app))

	// all three roles exist
	var roleCount int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	require.Equal(t, int64(3), roleCount)

	// the admin holds the Admin role
	var admin models.User
	require.NoError(t, db.Preload("Roles").Where("email = ?", "admin@mail.com").First(&admin).Error)
	require.True(t, admin.HasRole(models.RoleAdmin))

	// default user and General category resolve through the seed package
	defaultUser, err := seed.DefaultUser(db)
	require.NoError(t, err)
	require.Equal(t, seed.DefaultUserEmail, defaultUser.Email)

	general, err := seed.GeneralCategory(db)
	require.NoError(t, err)
	require.Equal(t, seed.GeneralCategoryName, general.Name)

	var home models.Home
	require.NoError(t, db.First(&home).Error)
	require.NotEmpty(t, home.SubHeading)

	// the lock row records the seeded ids
	var firstRun models.FirstRun
	require.NoError(t, db.First(&firstRun).Error)
	require.True(t, firstRun.IsFinished)
	require.Equal(t, general.ID, firstRun.GeneralCategoryID)
	require.Equal(t, defaultUser.ID, firstRun.DefaultUserID)
}

func TestRunLocksAfterFirstUse(t *testing.T) {
	app, db := setupApp(t)

	require.Equal(t, fiber.StatusCreated, postFirstRun(t, app))
	require.Equal(t, fiber.StatusForbidden, postFirstRun(t, app))

	// the second attempt seeded nothing extra
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.Equal(t, int64(2), userCount)
}

func TestStatusReflectsLock(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/firstrun", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Equal(t, fiber.StatusCreated, postFirstRun(t, app))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/firstrun", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRunFailsWhenStateUnreadable(t *testing.T) {
	app, db := setupApp(t)

	// a failed state read must not be mistaken for an open bootstrap
	require.NoError(t, db.Migrator().DropTable(&models.FirstRun{}))

	require.Equal(t, fiber.StatusInternalServerError, postFirstRun(t, app))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestRunRejectsInvalidPayload(t *testing.T) {
	app, db := setupApp(t)

	body := `{"email":"not-an-email","password":"short"}`
	req := httptest.NewRequest("POST", "/api/firstrun", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// nothing was seeded, the route is still open
	var count int64
	require.NoError(t, db.Model(&models.FirstRun{}).Count(&count).Error)
	require.Zero(t, count)
}
