package models

import "time"

type ForumSubAnswer struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Answer     string    `gorm:"type:text;column:answer" json:"answer"`
	DatePosted time.Time `gorm:"autoCreateTime;column:datePosted" json:"datePosted"`
	AnswerID   int64     `gorm:"index;column:answerId" json:"answerId"`
	UserID     string    `gorm:"index;size:191;column:userId" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ForumSubAnswer) TableName() string {
	return "ForumSubAnswer"
}
