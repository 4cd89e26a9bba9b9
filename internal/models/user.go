package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:191;column:id" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;column:email" json:"email"`
	Password     string    `gorm:"size:191;column:password" json:"-"`
	FirstName    string    `gorm:"size:191;column:firstName" json:"firstName"`
	LastName     string    `gorm:"size:191;column:lastName" json:"lastName"`
	Gender       string    `gorm:"size:32;column:gender" json:"gender"`
	ProfileImage string    `gorm:"size:512;column:profileImage" json:"profileImage"`
	IsRestricted bool      `gorm:"column:isRestricted" json:"isRestricted"`
	DateJoined   time.Time `gorm:"autoCreateTime;column:dateJoined" json:"dateJoined"`
	Address      string    `gorm:"size:191;column:address" json:"address"`
	DOB          string    `gorm:"size:64;column:dob" json:"dob"`
	Roles        []Role    `gorm:"many2many:UserRole" json:"roles,omitempty"`
}

func (User) TableName() string {
	return "User"
}

// PrimaryRole returns the first assigned role name, or an empty string.
// Users can technically hold several roles; the first one is treated as
// the active role for login responses and role updates.
func (u *User) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0].Name
}

// HasRole reports whether the user holds the named role
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
