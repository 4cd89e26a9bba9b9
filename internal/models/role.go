package models

type Role struct {
	ID    string `gorm:"primaryKey;size:191;column:id" json:"id"`
	Name  string `gorm:"uniqueIndex;size:191;column:name" json:"name"`
	Users []User `gorm:"many2many:UserRole" json:"-"`
}

func (Role) TableName() string {
	return "Role"
}
