package models

// Vote marks that a user has voted for a forum query. At most one row
// exists per (forumId, userId) pair, enforced by the composite index.
type Vote struct {
	ID      int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ForumID int64  `gorm:"uniqueIndex:idx_vote_forum_user;column:forumId" json:"forumId"`
	UserID  string `gorm:"uniqueIndex:idx_vote_forum_user;size:191;column:userId" json:"userId"`
}

func (Vote) TableName() string {
	return "Vote"
}
