package categories

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
		&models.BlogPost{},
		&models.ForumQuery{},
		&models.FirstRun{},
	))

	database.SetDatabase(db)
	return db
}

func TestDeleteCascadeReassignsToGeneral(t *testing.T) {
	db := setupDB(t)

	general := models.Category{Name: "General", Slug: "general"}
	require.NoError(t, db.Create(&general).Error)
	doomed := models.Category{Name: "Science", Slug: "science"}
	require.NoError(t, db.Create(&doomed).Error)

	post := models.BlogPost{Title: "Post", CategoryID: doomed.ID, AuthorID: "a1"}
	require.NoError(t, db.Create(&post).Error)
	query := models.ForumQuery{Title: "Query", CategoryID: doomed.ID, AuthorID: "a1"}
	require.NoError(t, db.Create(&query).Error)

	require.NoError(t, DeleteCascade(db, &doomed, &general))

	var gone models.Category
	err := db.First(&gone, doomed.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, db.First(&post, post.ID).Error)
	require.Equal(t, general.ID, post.CategoryID)

	require.NoError(t, db.First(&query, query.ID).Error)
	require.Equal(t, general.ID, query.CategoryID)
}

func TestDeleteCascadeLeavesOtherCategoriesAlone(t *testing.T) {
	db := setupDB(t)

	general := models.Category{Name: "General", Slug: "general"}
	require.NoError(t, db.Create(&general).Error)
	doomed := models.Category{Name: "Science", Slug: "science"}
	require.NoError(t, db.Create(&doomed).Error)
	other := models.Category{Name: "Arts", Slug: "arts"}
	require.NoError(t, db.Create(&other).Error)

	post := models.BlogPost{Title: "Arty", CategoryID: other.ID, AuthorID: "a1"}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, DeleteCascade(db, &doomed, &general))

	require.NoError(t, db.First(&post, post.ID).Error)
	require.Equal(t, other.ID, post.CategoryID)
}
