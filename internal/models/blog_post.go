package models

import "time"

type BlogPost struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title        string    `gorm:"size:512;column:title" json:"title"`
	Description  string    `gorm:"type:text;column:description" json:"description"`
	Excerpt      string    `gorm:"size:1024;column:excerpt" json:"excerpt"`
	FeatureImage string    `gorm:"size:512;column:featureImage" json:"featureImage"`
	Slug         string    `gorm:"index;size:512;column:slug" json:"slug"`
	DatePosted   time.Time `gorm:"autoCreateTime;column:datePosted" json:"datePosted"`
	Stars        int64     `gorm:"default:0;column:stars" json:"stars"`
	CategoryID   int64     `gorm:"index;column:categoryId" json:"categoryId"`
	AuthorID     string    `gorm:"index;size:191;column:authorId" json:"authorId"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (BlogPost) TableName() string {
	return "BlogPost"
}
