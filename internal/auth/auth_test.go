package auth

import (
	"errors"
	"testing"
	"time"

	"tourism/internal/domain"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	for _, pw := range []string{"pw1", "admin123", "a much longer pass phrase"} {
		hash, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("hash %q: %v", pw, err)
		}
		if hash == pw {
			t.Fatalf("hash equals plaintext for %q", pw)
		}
		if !CheckPassword(hash, pw) {
			t.Fatalf("verification failed for %q", pw)
		}
		if CheckPassword(hash, pw+"x") {
			t.Fatalf("verification accepted wrong password for %q", pw)
		}
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 1)
	tok, err := m.Issue(domain.Identity{SubjectID: 7, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.SubjectID != 7 || id.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestTokenRejectsTamperingAndExpiry(t *testing.T) {
	m := NewTokenManager("secret", 1)
	tok, _ := m.Issue(domain.Identity{SubjectID: 2, Role: domain.RoleUser})

	other := NewTokenManager("other-secret", 1)
	if _, err := other.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for wrong secret, got %v", err)
	}

	m.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := m.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestIssueRejectsAnonymous(t *testing.T) {
	m := NewTokenManager("secret", 1)
	if _, err := m.Issue(domain.Identity{}); err == nil {
		t.Fatalf("anonymous identity must not get a token")
	}
}
