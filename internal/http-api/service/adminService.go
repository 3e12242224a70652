package service

import (
	"errors"
	"time"

	"facultyreview/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
)

type AdminService interface {
	Login(password string) (token string, expiresIn int64, err error)
	ValidateToken(tokenString string) (jwt.MapClaims, error)
}

type adminService struct {
	passwordHash string
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAdminService(passwordHash, jwtSecret string, tokenTTL time.Duration) AdminService {
	return &adminService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// Login checks the moderation password and issues a short-lived admin token.
// There are no admin accounts, just one shared password, so the token only
// carries the role.
func (s *adminService) Login(password string) (string, int64, error) {
	if err := auth.VerifyPassword(s.passwordHash, password); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
		"type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.tokenTTL.Seconds()), nil
}

// ValidateToken parses and verifies an admin token
func (s *adminService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
