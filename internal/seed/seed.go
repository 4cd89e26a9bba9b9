// Package seed resolves the rows created by the first-run bootstrap:
// the "General" fallback category and the default user that orphaned
// content is reassigned to.
package seed

import (
	"github.com/inforum/backend/internal/models"
	"gorm.io/gorm"
)

const (
	// DefaultUserEmail is the address the bootstrap default user is created with
	DefaultUserEmail = "defaultUser@mail.com"

	// GeneralCategoryName is the name of the non-deletable fallback category
	GeneralCategoryName = "General"
)

// GeneralCategory resolves the fallback category. The id recorded on the
// FirstRun row wins; lookup by name covers databases seeded before the
// id was recorded.
func GeneralCategory(db *gorm.DB) (*models.Category, error) {
	var firstRun models.FirstRun
	if err := db.First(&firstRun).Error; err == nil && firstRun.GeneralCategoryID != 0 {
		var category models.Category
		if err := db.First(&category, firstRun.GeneralCategoryID).Error; err == nil {
			return &category, nil
		}
	}

	var category models.Category
	if err := db.Where("name = ?", GeneralCategoryName).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DefaultUser resolves the fallback user deleted authors are reassigned to
func DefaultUser(db *gorm.DB) (*models.User, error) {
	var firstRun models.FirstRun
	if err := db.First(&firstRun).Error; err == nil && firstRun.DefaultUserID != "" {
		var user models.User
		if err := db.Where("id = ?", firstRun.DefaultUserID).First(&user).Error; err == nil {
			return &user, nil
		}
	}

	var user models.User
	if err := db.Where("email = ?", DefaultUserEmail).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
