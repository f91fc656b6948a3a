package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// SessionClaims identifies the admin a session token was minted for. The
// token carries no expiry claim: session lifetime is tracked by the stored
// login timestamp, and an extension must not invalidate the token.
type SessionClaims struct {
	AdminSID string `json:"admin_sid"`
	jwt.RegisteredClaims
}

// SessionTokenService mints and verifies signed session tokens. Outside of
// this package the token is an opaque string; the signature only proves it
// was issued here.
type SessionTokenService struct {
	secret []byte
}

func NewSessionTokenService(secret string) *SessionTokenService {
	return &SessionTokenService{secret: []byte(secret)}
}

func (s *SessionTokenService) Generate(adminSID string) (string, error) {
	jti, err := id.Generate(id.DefaultLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	claims := &SessionClaims{
		AdminSID: adminSID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       jti,
			IssuedAt: jwt.NewNumericDate(biztime.NowUTC()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the admin SID the token was
// minted for.
func (s *SessionTokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.AdminSID, nil
}
