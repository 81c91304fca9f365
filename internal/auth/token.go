package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Principal holds identity extracted from a validated token.
type Principal struct {
	Username string
	Role     string
	Claims   jwt.MapClaims
}

// Verifier issues and verifies HS256 session tokens. The service is its own
// issuer: there is no external identity provider behind the two fixed
// accounts, so a shared signing key replaces JWKS lookup.
type Verifier struct {
	cfg Config
}

// NewVerifier constructs a Verifier with config.
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// IssueToken creates a signed session token carrying the username and role.
func (v *Verifier) IssueToken(username, role string) (string, error) {
	now := jwt.TimeFunc()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iss":  v.cfg.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(v.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.cfg.SigningKey)
}

// ParseAndVerifyToken verifies a bearer token, validates issuer/exp and returns Principal.
func (v *Verifier) ParseAndVerifyToken(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}
	tokenString = strings.TrimSpace(tokenString)
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// enforce HS256
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.cfg.SigningKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if iss, _ := claims["iss"].(string); iss != v.cfg.Issuer {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyExpiresAt(jwt.TimeFunc().Unix(), true) {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrMissingSub
	}
	role, _ := claims["role"].(string)

	return &Principal{
		Username: sub,
		Role:     role,
		Claims:   claims,
	}, nil
}

// TokenExpiry reports the expiry a freshly issued token will carry.
func (v *Verifier) TokenExpiry() time.Time {
	return jwt.TimeFunc().Add(v.cfg.TokenTTL)
}
