package models

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"uniqueIndex;size:191;column:name" json:"name"`
	Slug string `gorm:"index;size:191;column:slug" json:"slug"`
}

func (Category) TableName() string {
	return "Category"
}
