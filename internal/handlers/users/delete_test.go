package users

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/inforum/backend/internal/database"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/utils"
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
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.BlogPost{},
		&models.Comment{},
		&models.SubComment{},
		&models.ForumQuery{},
		&models.ForumAnswer{},
		&models.ForumSubAnswer{},
		&models.Vote{},
		&models.Star{},
	))

	database.SetDatabase(db)
	return db
}

func newUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{ID: utils.GenerateShortID(), Email: email}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestDeleteCascadeReassignsContent(t *testing.T) {
	db := setupDB(t)

	doomed := newUser(t, db, "doomed@mail.com")
	fallback := newUser(t, db, "fallback@mail.com")

	post := models.BlogPost{Title: "Post", AuthorID: doomed.ID}
	require.NoError(t, db.Create(&post).Error)
	comment := models.Comment{Description: "c", PostID: post.ID, UserID: doomed.ID}
	require.NoError(t, db.Create(&comment).Error)
	query := models.ForumQuery{Title: "Query", AuthorID: doomed.ID}
	require.NoError(t, db.Create(&query).Error)
	answer := models.ForumAnswer{Answer: "a", QueryID: query.ID, UserID: doomed.ID}
	require.NoError(t, db.Create(&answer).Error)

	require.NoError(t, DeleteCascade(db, doomed, fallback))

	var gone models.User
	err := db.Where("id = ?", doomed.ID).First(&gone).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, db.First(&post, post.ID).Error)
	require.Equal(t, fallback.ID, post.AuthorID)
	require.NoError(t, db.First(&comment, comment.ID).Error)
	require.Equal(t, fallback.ID, comment.UserID)
	require.NoError(t, db.First(&query, query.ID).Error)
	require.Equal(t, fallback.ID, query.AuthorID)
	require.NoError(t, db.First(&answer, answer.ID).Error)
	require.Equal(t, fallback.ID, answer.UserID)
}

func TestDeleteCascadeRemovesVotesAndStars(t *testing.T) {
	db := setupDB(t)

	doomed := newUser(t, db, "doomed@mail.com")
	fallback := newUser(t, db, "fallback@mail.com")
	other := newUser(t, db, "other@mail.com")

	query := models.ForumQuery{Title: "Query", AuthorID: other.ID, Votes: 2}
	require.NoError(t, db.Create(&query).Error)
	require.NoError(t, db.Create(&models.Vote{ForumID: query.ID, UserID: doomed.ID}).Error)
	require.NoError(t, db.Create(&models.Vote{ForumID: query.ID, UserID: other.ID}).Error)

	post := models.BlogPost{Title: "Post", AuthorID: other.ID, Stars: 1}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&models.Star{BlogPostID: post.ID, UserID: doomed.ID}).Error)

	require.NoError(t, DeleteCascade(db, doomed, fallback))

	// the deleted user's vote and star are gone and the counters followed
	var voteCount int64
	require.NoError(t, db.Model(&models.Vote{}).Where("userId = ?", doomed.ID).Count(&voteCount).Error)
	require.Zero(t, voteCount)

	require.NoError(t, db.First(&query, query.ID).Error)
	require.Equal(t, int64(1), query.Votes)

	require.NoError(t, db.First(&post, post.ID).Error)
	require.Zero(t, post.Stars)

	// the other user's vote survives
	var remaining models.Vote
	require.NoError(t, db.Where("userId = ?", other.ID).First(&remaining).Error)
}

func TestDeleteCascadeClearsRoles(t *testing.T) {
	db := setupDB(t)

	doomed := newUser(t, db, "doomed@mail.com")
	fallback := newUser(t, db, "fallback@mail.com")

	role, err := EnsureRole(db, models.RoleUser)
	require.NoError(t, err)
	require.NoError(t, db.Model(doomed).Association("Roles").Append(role))

	require.NoError(t, DeleteCascade(db, doomed, fallback))

	count := db.Model(&models.Role{ID: role.ID}).Association("Users").Count()
	require.Zero(t, count)

	// the role itself is untouched
	var kept models.Role
	require.NoError(t, db.Where("id = ?", role.ID).First(&kept).Error)
}
