package jwtmw

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// TestIssuer_TokenAuthenticatesRequest は発行したトークンが両方の認証ミドルウェアを通過し、
// コンテキストに uint のユーザーIDが入ることを検証します。
func TestIssuer_TokenAuthenticatesRequest(t *testing.T) {
	t.Parallel()

	token, err := NewIssuer(testSecret, time.Hour).GenerateToken(42, "sam@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	middlewares := map[string]gin.HandlerFunc{
		"optional": OptionalAuth(testSecret),
		"required": RequireAuth(testSecret),
	}
	for mode, handler := range middlewares {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()

			w, c := run(handler, "Bearer "+token)
			if c.IsAborted() {
				t.Fatalf("expected request to pass, got %d: %s", w.Code, w.Body.String())
			}

			v, ok := c.Get(ContextUserID)
			if !ok {
				t.Fatal("expected userID in context")
			}
			id, ok := v.(uint)
			if !ok {
				t.Fatalf("expected uint userID, got %T", v)
			}
			if id != 42 {
				t.Errorf("expected userID 42, got %d", id)
			}
		})
	}
}

// TestParseToken_Claims はトークンのクレーム（主体・発行者・期限）を検証します。
func TestParseToken_Claims(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(testSecret, 2*time.Hour)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := iss.GenerateToken(7, "kit@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken([]byte(testSecret), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "7" {
		t.Errorf("expected subject %q, got %q", "7", claims.Subject)
	}
	if claims.Issuer != Issuer {
		t.Errorf("expected issuer %q, got %q", Issuer, claims.Issuer)
	}
	if claims.Email != "kit@example.com" {
		t.Errorf("expected email %q, got %q", "kit@example.com", claims.Email)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 2*time.Hour {
		t.Errorf("expected lifetime 2h, got %v", got)
	}

	// 期限切れの時刻で発行したトークンは拒否される
	iss.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	expired, err := iss.GenerateToken(7, "kit@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseToken([]byte(testSecret), expired); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

// TestIssuer_TokensAreUnique は同じユーザーでもトークンごとに jti が異なることを検証します。
func TestIssuer_TokensAreUnique(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(testSecret, time.Hour)
	fixed := time.Now()
	iss.now = func() time.Time { return fixed }

	a, _ := iss.GenerateToken(1, "a@example.com")
	b, _ := iss.GenerateToken(1, "a@example.com")
	if a == b {
		t.Error("expected distinct tokens for repeated logins")
	}
}

// TestIssuer_RejectsZeroUser はユーザーID 0 ではトークンを発行しないことを検証します。
func TestIssuer_RejectsZeroUser(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer(testSecret, time.Hour).GenerateToken(0, ""); err == nil {
		t.Error("expected error for user id 0")
	}
}

// TestNewIssuer_DefaultExpiration は0以下の有効期間で既定値が使われることを検証します。
func TestNewIssuer_DefaultExpiration(t *testing.T) {
	t.Parallel()

	for _, ttl := range []time.Duration{0, -time.Minute} {
		if got := NewIssuer("secret", ttl).ttl; got != DefaultExpiration {
			t.Errorf("expected ttl %v for input %v, got %v", DefaultExpiration, ttl, got)
		}
	}
}
