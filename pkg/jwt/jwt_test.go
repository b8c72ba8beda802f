package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewService(t *testing.T) {
	t.Parallel()

	if _, err := NewService(Config{Issuer: "test", ExpirationMins: 60}); err == nil {
		t.Error("expected error for missing secret")
	}
	if _, err := NewService(Config{Secret: "s", Issuer: "test"}); err == nil {
		t.Error("expected error for non-positive expiration")
	}
}

func TestSignVerifyRoundtrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, Config{Secret: "test-secret", Issuer: "api.test", ExpirationMins: 60})

	token, err := svc.Sign(7, "alice")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.Issuer != "api.test" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, Config{Secret: "test-secret", Issuer: "api.test", ExpirationMins: 60})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := newTestService(t, Config{Secret: "different-secret", Issuer: "api.test", ExpirationMins: 60})
		token, err := other.Sign(7, "alice")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		t.Parallel()
		other := newTestService(t, Config{Secret: "test-secret", Issuer: "someone-else", ExpirationMins: 60})
		token, err := other.Sign(7, "alice")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		// A negative duration can't be configured through NewService, so
		// construct the expired signer directly.
		expired := &Service{secret: []byte("test-secret"), issuer: "api.test", expiration: -time.Hour}
		token, err := expired.Sign(7, "alice")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})
}
