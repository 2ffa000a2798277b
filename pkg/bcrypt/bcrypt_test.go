package bcrypt

import (
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Errorf("correct password should verify: %v", err)
	}
	if err := ComparePassword(hash, "secret2"); err == nil {
		t.Error("wrong password should fail verification")
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	// A garbage stored hash reads as verification failure, not a panic.
	if err := ComparePassword("not-a-bcrypt-hash", "secret1"); err == nil {
		t.Error("malformed hash should fail verification")
	}
}
