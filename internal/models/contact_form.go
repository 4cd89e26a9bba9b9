package models

import "time"

type ContactForm struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FullName  string    `gorm:"size:191;column:fullName" json:"fullName"`
	Email     string    `gorm:"size:191;column:email" json:"email"`
	Message   string    `gorm:"type:text;column:message" json:"message"`
	CreatedOn time.Time `gorm:"autoCreateTime;column:createdOn" json:"createdOn"`
}

func (ContactForm) TableName() string {
	return "ContactForm"
}
