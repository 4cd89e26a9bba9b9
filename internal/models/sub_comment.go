package models

import "time"

type SubComment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	DatePosted  time.Time `gorm:"autoCreateTime;column:datePosted" json:"datePosted"`
	CommentID   int64     `gorm:"index;column:commentId" json:"commentId"`
	UserID      string    `gorm:"index;size:191;column:userId" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (SubComment) TableName() string {
	return "SubComment"
}
