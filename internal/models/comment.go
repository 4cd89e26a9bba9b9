package models

import "time"

type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	DatePosted  time.Time `gorm:"autoCreateTime;column:datePosted" json:"datePosted"`
	PostID      int64     `gorm:"index;column:postId" json:"postId"`
	UserID      string    `gorm:"index;size:191;column:userId" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "Comment"
}
