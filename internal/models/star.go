package models

// Star marks that a user has starred a blog post. At most one row exists
// per (blogPostId, userId) pair, enforced by the composite index.
type Star struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BlogPostID int64  `gorm:"uniqueIndex:idx_star_post_user;column:blogPostId" json:"blogPostId"`
	UserID     string `gorm:"uniqueIndex:idx_star_post_user;size:191;column:userId" json:"userId"`
}

func (Star) TableName() string {
	return "Star"
}
