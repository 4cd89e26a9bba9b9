package models

import "time"

type ForumQuery struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"size:512;column:title" json:"title"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	Slug        string    `gorm:"index;size:512;column:slug" json:"slug"`
	DatePosted  time.Time `gorm:"autoCreateTime;column:datePosted" json:"datePosted"`
	Votes       int64     `gorm:"default:0;column:votes" json:"votes"`
	CategoryID  int64     `gorm:"index;column:categoryId" json:"categoryId"`
	AuthorID    string    `gorm:"index;size:191;column:authorId" json:"authorId"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author      *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (ForumQuery) TableName() string {
	return "ForumQuery"
}
