package jwt

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewTokenService("test-secret", 7*24*time.Hour)

	token, err := s.Generate(42, "SP3FCK", "a@b.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := s.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != 42 || claims.Callsign != "SP3FCK" || claims.Email != "a@b.com" {
		t.Errorf("claims do not round-trip: %+v", claims)
	}
}

func TestValidate_Expired(t *testing.T) {
	s := NewTokenService("test-secret", -time.Minute)

	token, err := s.Generate(1, "SP3FCK", "a@b.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := s.Validate(token); err == nil {
		t.Error("expired token should fail validation")
	}
}

func TestValidate_Tampered(t *testing.T) {
	s := NewTokenService("test-secret", time.Hour)

	token, err := s.Generate(1, "SP3FCK", "a@b.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err := s.Validate(tampered); err == nil {
		t.Error("tampered signature should fail validation")
	}

	other := NewTokenService("other-secret", time.Hour)
	if _, err := other.Validate(token); err == nil {
		t.Error("token signed with a different secret should fail validation")
	}
}

func TestExtractBearer(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer ", "", true}, // prefix present, empty token
		{"bearer abc", "", false},
		{"Basic abc", "", false},
		{"", "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tc := range cases {
		token, ok := ExtractBearer(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Errorf("ExtractBearer(%q) = (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}
