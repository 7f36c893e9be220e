package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// WorkspaceCookieExpiration bounds how long a browser keeps pointing at one workspace.
	WorkspaceCookieExpiration = 7 * 24 * time.Hour

	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "InnoEvent-Portal"
)

// GenerateToken signs payload with HS256 after stamping its standard claims.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken validates tokenString with secretKey and returns its payload.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.WorkspaceID == "" {
		return nil, errors.New("token carries no workspace id")
	}

	return claims, nil
}
