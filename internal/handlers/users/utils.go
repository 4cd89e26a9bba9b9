package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inforum/backend/internal/models"
	"github.com/inforum/backend/pkg/utils"
	"gorm.io/gorm"
)

// defaultProfileImage is used when registration omits a profile image
const defaultProfileImage = "https://res.cloudinary.com/inforum/image/upload/v1645625776/Defaults/profile_image_dummy_oawg87.png"

// RegisterRequest is the payload for register and first-run endpoints
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	ProfileImage string `json:"profileImage"`
}

// Validate runs the shallow field checks shared by all register endpoints
func (r *RegisterRequest) Validate() string {
	if !utils.ValidateEmail(r.Email) {
		return "Invalid email address"
	}
	if len(r.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	if r.FirstName == "" {
		return "First name is required"
	}
	if r.Gender != "" && !models.ValidGender(r.Gender) {
		return "Gender must be Male, Female or Unspecified"
	}
	return ""
}

// userView trims a user row down to the fields list endpoints expose
func userView(u *models.User) fiber.Map {
	return fiber.Map{
		"id":           u.ID,
		"userName":     u.Email,
		"email":        u.Email,
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		"gender":       u.Gender,
		"profileImage": u.ProfileImage,
		"isRestricted": u.IsRestricted,
		"dateJoined":   u.DateJoined,
		"address":      u.Address,
		"dob":          u.DOB,
	}
}

// EnsureRole finds the named role, creating it on first use
func EnsureRole(tx *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	err := tx.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role = models.Role{ID: utils.GenerateShortID(), Name: name}
	if err := tx.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// canActOn reports whether the actor may modify the target user:
// the actor is the target, or holds the Admin role
func canActOn(actor *models.User, targetID string) bool {
	return actor.ID == targetID || actor.HasRole(models.RoleAdmin)
}
