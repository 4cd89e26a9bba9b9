package models

// FirstRun locks the bootstrap route once the seed sequence has executed.
// The row also records which rows were seeded, so fallback lookups go by
// id instead of by magic name.
type FirstRun struct {
	ID                int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	IsFinished        bool   `gorm:"column:isFinished" json:"isFinished"`
	GeneralCategoryID int64  `gorm:"column:generalCategoryId" json:"generalCategoryId"`
	DefaultUserID     string `gorm:"size:191;column:defaultUserId" json:"defaultUserId"`
}

func (FirstRun) TableName() string {
	return "FirstRun"
}
