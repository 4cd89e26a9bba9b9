package categories

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupDB(t)
	app := fiber.New()
	app.Delete("/api/categories/:id", Delete)
	return app, db
}

func deleteCategory(t *testing.T, app *fiber.App, id int64) int {
	t.Helper()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/categories/%d", id), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestDeleteRejectsGeneralCategory(t *testing.T) {
	app, db := setupApp(t)

	general := models.Category{Name: "General", Slug: "general"}
	require.NoError(t, db.Create(&general).Error)
	require.NoError(t, db.Create(&models.FirstRun{
		IsFinished:        true,
		GeneralCategoryID: general.ID,
	}).Error)

	require.Equal(t, fiber.StatusBadRequest, deleteCategory(t, app, general.ID))

	// the fallback category is still there
	require.NoError(t, db.First(&general, general.ID).Error)
}

func TestDeleteRejectsGeneralByNameFallback(t *testing.T) {
	app, db := setupApp(t)

	// no FirstRun row: resolution falls back to the name lookup
	general := models.Category{Name: "General", Slug: "general"}
	require.NoError(t, db.Create(&general).Error)

	require.Equal(t, fiber.StatusBadRequest, deleteCategory(t, app, general.ID))

	require.NoError(t, db.First(&general, general.ID).Error)
}

func TestDeleteRemovesOrdinaryCategory(t *testing.T) {
	app, db := setupApp(t)

	general := models.Category{Name: "General", Slug: "general"}
	require.NoError(t, db.Create(&general).Error)
	require.NoError(t, db.Create(&models.FirstRun{
		IsFinished:        true,
		GeneralCategoryID: general.ID,
	}).Error)

	doomed := models.Category{Name: "Science", Slug: "science"}
	require.NoError(t, db.Create(&doomed).Error)
	post := models.BlogPost{Title: "Post", CategoryID: doomed.ID, AuthorID: "a1"}
	require.NoError(t, db.Create(&post).Error)

	require.Equal(t, fiber.StatusOK, deleteCategory(t, app, doomed.ID))

	err := db.First(&doomed, doomed.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, db.First(&post, post.ID).Error)
	require.Equal(t, general.ID, post.CategoryID)
}

func TestDeleteUnknownCategoryReturnsNotFound(t *testing.T) {
	app, db := setupApp(t)

	general := models.Category{Name: "General", Slug: "general"}
	require.NoError(t, db.Create(&general).Error)

	require.Equal(t, fiber.StatusNotFound, deleteCategory(t, app, 9999))
}
