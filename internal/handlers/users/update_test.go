package users

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/models"
	"github.com/stretchr/testify/require"
)

// setupActorApp wires the profile handlers behind a stub that injects
// the acting user, the way the auth middleware does after token checks.
func setupActorApp(actor *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", actor)
		return c.Next()
	})
	app.Patch("/api/user/update/:id", Update)
	app.Post("/api/user/change-password/:id", ChangePassword)
	return app
}

func patchProfile(t *testing.T, app *fiber.App, targetID, body string) int {
	t.Helper()
	req := httptest.NewRequest("PATCH", "/api/user/update/"+targetID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func postPassword(t *testing.T, app *fiber.App, targetID, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/user/change-password/"+targetID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestUpdateRejectsOtherUsers(t *testing.T) {
	db := setupDB(t)
	actor := newUser(t, db, "actor@mail.com")
	target := newUser(t, db, "target@mail.com")
	app := setupActorApp(actor)

	body := `{"email":"target@mail.com","firstName":"Hijacked"}`
	require.Equal(t, fiber.StatusForbidden, patchProfile(t, app, target.ID, body))

	require.NoError(t, db.First(target, "id = ?", target.ID).Error)
	require.NotEqual(t, "Hijacked", target.FirstName)
}

func TestUpdateAllowsSelf(t *testing.T) {
	db := setupDB(t)
	actor := newUser(t, db, "actor@mail.com")
	app := setupActorApp(actor)

	body := `{"email":"actor@mail.com","firstName":"Ada","lastName":"Lovelace"}`
	require.Equal(t, fiber.StatusOK, patchProfile(t, app, actor.ID, body))

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", actor.ID).Error)
	require.Equal(t, "Ada", updated.FirstName)
	require.Equal(t, "Lovelace", updated.LastName)
}

func TestUpdateAllowsAdminOnOthers(t *testing.T) {
	db := setupDB(t)
	actor := newUser(t, db, "admin@mail.com")
	actor.Roles = []models.Role{{ID: "r1", Name: models.RoleAdmin}}
	target := newUser(t, db, "target@mail.com")
	app := setupActorApp(actor)

	body := `{"email":"target@mail.com","firstName":"Renamed"}`
	require.Equal(t, fiber.StatusOK, patchProfile(t, app, target.ID, body))

	require.NoError(t, db.First(target, "id = ?", target.ID).Error)
	require.Equal(t, "Renamed", target.FirstName)
}

func TestChangePasswordRejectsOtherUsers(t *testing.T) {
	db := setupDB(t)
	actor := newUser(t, db, "actor@mail.com")
	target := newUser(t, db, "target@mail.com")
	target.Password = "original-hash"
	require.NoError(t, db.Save(target).Error)
	app := setupActorApp(actor)

	body := `{"password":"newpassword"}`
	require.Equal(t, fiber.StatusForbidden, postPassword(t, app, target.ID, body))

	require.NoError(t, db.First(target, "id = ?", target.ID).Error)
	require.Equal(t, "original-hash", target.Password)
}

func TestChangePasswordAllowsSelf(t *testing.T) {
	db := setupDB(t)
	actor := newUser(t, db, "actor@mail.com")
	app := setupActorApp(actor)

	body := `{"password":"newpassword"}`
	require.Equal(t, fiber.StatusOK, postPassword(t, app, actor.ID, body))

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", actor.ID).Error)
	require.NotEmpty(t, updated.Password)
}
