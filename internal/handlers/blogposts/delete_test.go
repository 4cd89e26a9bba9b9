package blogposts

import (
	"testing"

	"github.com/inforum/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDeleteCascadeRemovesThread(t *testing.T) {
	db := setupDB(t)

	post := models.BlogPost{Title: "Post", AuthorID: "a1"}
	require.NoError(t, db.Create(&post).Error)
	other := models.BlogPost{Title: "Other", AuthorID: "a1"}
	require.NoError(t, db.Create(&other).Error)

	comment := models.Comment{Description: "c", PostID: post.ID, UserID: "u1"}
	require.NoError(t, db.Create(&comment).Error)
	require.NoError(t, db.Create(&models.SubComment{Description: "s", CommentID: comment.ID, UserID: "u2"}).Error)
	require.NoError(t, db.Create(&models.Star{BlogPostID: post.ID, UserID: "u2"}).Error)

	keptComment := models.Comment{Description: "kept", PostID: other.ID, UserID: "u1"}
	require.NoError(t, db.Create(&keptComment).Error)

	require.NoError(t, DeleteCascade(db, &post))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("postId = ?", post.ID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.SubComment{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.Star{}).Count(&count).Error)
	require.Zero(t, count)

	// the other post and its comment survive
	require.NoError(t, db.First(&other, other.ID).Error)
	require.NoError(t, db.First(&keptComment, keptComment.ID).Error)
}
