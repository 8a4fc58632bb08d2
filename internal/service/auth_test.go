package service

import (
	"errors"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	t.Setenv("ADMIN_SECRET", "s3cret")
	t.Setenv("JWT_SIGNING_SECRET", "signing-key")
	return New(zap.NewNop(), &repository.Repository{})
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Auth.Login("s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := utils.DecodeJWT(token, []byte("signing-key"))
	if err != nil {
		t.Fatalf("decode issued token: %v", err)
	}
	if admin, ok := claims["admin"].(bool); !ok || !admin {
		t.Fatalf("expected admin claim true, got %v", claims["admin"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("expiration claim: %v", err)
	}
	want := time.Now().Add(TOKEN_TTL)
	if diff := exp.Time.Sub(want); diff < -5*time.Second || diff > 5*time.Second {
		t.Fatalf("expected expiry ~%v from now, got %v", TOKEN_TTL, exp.Time)
	}
}

func TestLoginRejectsMissingSecret(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Auth.Login(""); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Auth.Login("not-the-secret"); !errors.Is(err, ErrInvalidSecret) {
		t.Fatalf("expected ErrInvalidSecret, got %v", err)
	}
}

func TestLoginTokenNotVerifiableWithOtherKey(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Auth.Login("s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := utils.DecodeJWT(token, []byte("some-other-key")); err == nil {
		t.Fatalf("expected verification to fail with a different key")
	}
}
