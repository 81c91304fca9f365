package auth

import (
	"os"
	"time"
)

// Config holds auth configuration
type Config struct {
	SigningKey []byte
	Issuer     string
	TokenTTL   time.Duration
}

const DefaultIssuer = "hospital-frontdesk"

// LoadConfig reads config from env with sensible defaults.
// Override with AUTH_SIGNING_KEY, AUTH_ISSUER and AUTH_TOKEN_TTL.
func LoadConfig() Config {
	key := os.Getenv("AUTH_SIGNING_KEY")
	if key == "" {
		key = "dev-signing-key-change-me"
	}
	issuer := os.Getenv("AUTH_ISSUER")
	if issuer == "" {
		issuer = DefaultIssuer
	}
	ttl := 12 * time.Hour
	if raw := os.Getenv("AUTH_TOKEN_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			ttl = d
		}
	}
	return Config{
		SigningKey: []byte(key),
		Issuer:     issuer,
		TokenTTL:   ttl,
	}
}
