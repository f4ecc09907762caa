package di

import (
	"time"

	"wellbeing_backend/internal/feature/auth/usecase"
	jwtmw "wellbeing_backend/internal/platform/jwt"
)

// NewTokenGenerator returns a JWT issuer, or a nil interface when secret is empty
// so that the auth usecase skips token issuance.
func NewTokenGenerator(secret string, ttl time.Duration) usecase.TokenGenerator {
	if secret == "" {
		return nil
	}
	return jwtmw.NewIssuer(secret, ttl)
}
