package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Verifies(t *testing.T) {
	hash, err := HashPassword("use-the-force")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "use-the-force" {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte("use-the-force")); err != nil {
		t.Errorf("expected password to match its hash: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("dark-side")) == nil {
		t.Error("expected wrong password not to match")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs over 72 bytes
	if _, err := HashPassword(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}

func TestNewTraceID_IsUUID(t *testing.T) {
	id := NewTraceID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUIDv7, got version %d", parsed.Version())
	}
	if NewTraceID() == id {
		t.Error("expected distinct ids")
	}
}
