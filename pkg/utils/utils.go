package utils

import (
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/inforum/backend/internal/config"
	"github.com/inforum/backend/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateShortID generates a short ID (first char alphabetic, rest alphanumeric)
func GenerateShortID() string {
	firstChar, _ := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz", 1)
	rest, _ := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 19)
	return firstChar + rest
}

// GeneratePassword generates a random password for seeded accounts
func GeneratePassword() string {
	password, _ := gonanoid.Generate("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", 16)
	return password
}

// ValidateEmail validates email format using Go's net/mail package
func ValidateEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// TokenLifetime is how long issued bearer tokens stay valid
const TokenLifetime = time.Hour * 24 * 7

// GenerateToken issues a signed bearer token carrying the user identity
// and role claims. Returns the token string and its expiry.
func GenerateToken(user *models.User) (string, time.Time, error) {
	cfg := config.Get()
	expiry := time.Now().Add(TokenLifetime)

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	claims := jwt.MapClaims{
		"sub":    user.Email,
		"userId": user.ID,
		"roles":  roles,
		"jti":    uuid.NewString(),
		"iss":    cfg.JWTIssuer,
		"aud":    cfg.JWTAudience,
		"exp":    expiry.Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}
