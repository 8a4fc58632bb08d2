package service

import (
	"crypto/subtle"
	"os"
	"time"

	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TOKEN_TTL is the fixed lifetime of an admin token. Expiry is the only
// invalidation mechanism; there is no revocation state.
const TOKEN_TTL = 2 * time.Hour

type authService struct {
	logger *zap.Logger
}

func newAuthService(logger *zap.Logger) Auth {
	return &authService{
		logger: logger,
	}
}

// Login checks the submitted secret against the configured admin secret and
// issues a signed admin token. The stored secret is not hashed; the
// comparison is constant-time.
func (s *authService) Login(secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	adminSecret := os.Getenv("ADMIN_SECRET")
	if adminSecret == "" {
		s.logger.Error("ADMIN_SECRET is not configured")
		return "", ErrInternal
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(adminSecret)) != 1 {
		return "", ErrInvalidSecret
	}

	token, err := utils.SignJWT(jwt.MapClaims{"admin": true}, []byte(os.Getenv("JWT_SIGNING_SECRET")), TOKEN_TTL)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign admin token: %s", err.Error())
		return "", ErrInternal
	}

	return token, nil
}
