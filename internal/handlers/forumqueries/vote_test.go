package forumqueries

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true, NoLowerCase: true},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.User{},
		&models.ForumQuery{},
		&models.ForumAnswer{},
		&models.ForumSubAnswer{},
		&models.Vote{},
	))

	database.SetDatabase(db)
	return db
}

func TestToggleAddsAndRemoves(t *testing.T) {
	db := setupDB(t)

	query := models.ForumQuery{Title: "Query", AuthorID: "a1"}
	require.NoError(t, db.Create(&query).Error)

	added, err := Toggle(db, query.ID, "u1")
	require.NoError(t, err)
	require.True(t, added)

	require.NoError(t, db.First(&query, query.ID).Error)
	require.Equal(t, int64(1), query.Votes)

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).
		Where("forumId = ? AND userId = ?", query.ID, "u1").Count(&count).Error)
	require.Equal(t, int64(1), count)

	// second toggle undoes the first
	added, err = Toggle(db, query.ID, "u1")
	require.NoError(t, err)
	require.False(t, added)

	require.NoError(t, db.First(&query, query.ID).Error)
	require.Zero(t, query.Votes)

	require.NoError(t, db.Model(&models.Vote{}).
		Where("forumId = ? AND userId = ?", query.ID, "u1").Count(&count).Error)
	require.Zero(t, count)
}

func TestToggleIsPerUser(t *testing.T) {
	db := setupDB(t)

	query := models.ForumQuery{Title: "Query", AuthorID: "a1"}
	require.NoError(t, db.Create(&query).Error)

	_, err := Toggle(db, query.ID, "u1")
	require.NoError(t, err)
	_, err = Toggle(db, query.ID, "u2")
	require.NoError(t, err)

	require.NoError(t, db.First(&query, query.ID).Error)
	require.Equal(t, int64(2), query.Votes)

	// removing one user's vote leaves the other's in place
	_, err = Toggle(db, query.ID, "u1")
	require.NoError(t, err)

	require.NoError(t, db.First(&query, query.ID).Error)
	require.Equal(t, int64(1), query.Votes)
}

func TestDeleteCascadeRemovesThread(t *testing.T) {
	db := setupDB(t)

	query := models.ForumQuery{Title: "Query", AuthorID: "a1"}
	require.NoError(t, db.Create(&query).Error)

	answer := models.ForumAnswer{Answer: "a", QueryID: query.ID, UserID: "u1"}
	require.NoError(t, db.Create(&answer).Error)
	sub := models.ForumSubAnswer{Answer: "s", AnswerID: answer.ID, UserID: "u2"}
	require.NoError(t, db.Create(&sub).Error)
	require.NoError(t, db.Create(&models.Vote{ForumID: query.ID, UserID: "u2"}).Error)

	require.NoError(t, DeleteCascade(db, &query))

	var count int64
	require.NoError(t, db.Model(&models.ForumQuery{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.ForumAnswer{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.ForumSubAnswer{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.Vote{}).Count(&count).Error)
	require.Zero(t, count)
}
