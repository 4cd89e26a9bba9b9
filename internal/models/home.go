package models

// Home holds the home page content block. Exactly one row is expected
// once the first run has been performed.
type Home struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SubHeading  string `gorm:"size:512;column:subHeading" json:"subHeading"`
	HeaderImage string `gorm:"size:512;column:headerImage" json:"headerImage"`
}

func (Home) TableName() string {
	return "Home"
}
