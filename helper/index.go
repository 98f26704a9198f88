package helper

import (
	"errors"
	"fmt"
	"strings"
	"ticket_master/config"
	"ticket_master/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookie      = "__session"
	RememberSessionTTL = 30 * 24 * time.Hour
	SessionTTL         = 14 * 24 * time.Hour
)

var ErrSessionSecretMissing = errors.New("SESSION_SECRET is not set")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type SessionClaims struct {
	UserId   uuid.UUID  `json:"userId"`
	UserRole model.Role `json:"userRole"`
	jwt.RegisteredClaims
}

func sessionSecret() ([]byte, error) {
	secret := config.Config("SESSION_SECRET")
	if secret == "" {
		return nil, ErrSessionSecretMissing
	}
	return []byte(secret), nil
}

func SessionTTLFor(remember bool) time.Duration {
	if remember {
		return RememberSessionTTL
	}
	return SessionTTL
}

// GenerateSessionToken signs a session for the user that expires after ttl.
func GenerateSessionToken(userId uuid.UUID, role model.Role, ttl time.Duration, now time.Time) (string, error) {
	secret, err := sessionSecret()
	if err != nil {
		return "", err
	}
	claims := SessionClaims{
		UserId:   userId,
		UserRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	secret, err := sessionSecret()
	if err != nil {
		return nil, err
	}
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserId == uuid.Nil || !claims.UserRole.Valid() {
		return nil, errors.New("invalid session")
	}
	return claims, nil
}

// SafeRedirect keeps redirects on this site: anything that is not a local path becomes "/".
func SafeRedirect(to string) string {
	if to == "" || !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.HasPrefix(to, "/\\") {
		return "/"
	}
	return to
}
