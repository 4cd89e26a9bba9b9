package comments

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
		&models.User{},
		&models.BlogPost{},
		&models.Comment{},
		&models.SubComment{},
	))

	database.SetDatabase(db)
	return db
}

func TestDeleteCascadeRemovesSubComments(t *testing.T) {
	db := setupDB(t)

	post := models.BlogPost{Title: "Post", AuthorID: "a1"}
	require.NoError(t, db.Create(&post).Error)

	comment := models.Comment{Description: "c", PostID: post.ID, UserID: "u1"}
	require.NoError(t, db.Create(&comment).Error)
	kept := models.Comment{Description: "kept", PostID: post.ID, UserID: "u2"}
	require.NoError(t, db.Create(&kept).Error)

	require.NoError(t, db.Create(&models.SubComment{Description: "s1", CommentID: comment.ID, UserID: "u2"}).Error)
	require.NoError(t, db.Create(&models.SubComment{Description: "s2", CommentID: comment.ID, UserID: "u3"}).Error)
	keptSub := models.SubComment{Description: "s3", CommentID: kept.ID, UserID: "u3"}
	require.NoError(t, db.Create(&keptSub).Error)

	require.NoError(t, DeleteCascade(db, &comment))

	var count int64
	require.NoError(t, db.Model(&models.SubComment{}).
		Where("commentId = ?", comment.ID).Count(&count).Error)
	require.Zero(t, count)

	err := db.First(&comment, comment.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the sibling comment and its thread survive
	require.NoError(t, db.First(&kept, kept.ID).Error)
	require.NoError(t, db.First(&keptSub, keptSub.ID).Error)
}
