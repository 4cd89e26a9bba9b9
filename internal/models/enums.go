package models

// Role names
const (
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
	RoleUser   = "User"
)

// Genders
const (
	GenderMale        = "Male"
	GenderFemale      = "Female"
	GenderUnspecified = "Unspecified"
)

// ValidGender reports whether g is one of the known gender values
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderUnspecified
}
