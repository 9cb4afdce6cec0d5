package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stayease/stayease/pkg/auth"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := auth.NewSessionToken(7, "Jane Tenant", "jane@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	claims, err := auth.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Sub != 7 || claims.Email != "jane@example.com" || claims.Role != "user" {
		t.Errorf("claims %+v", claims)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := auth.NewSessionToken(7, "Jane", "jane@example.com", "user", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if _, err := auth.Parse(tampered); err == nil {
		t.Error("Parse accepted a bad signature")
	}
}

func TestDecodeUnverified(t *testing.T) {
	token, err := auth.NewSessionToken(7, "Jane", "jane@example.com", "user", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.DecodeUnverified(token)
	if err != nil {
		t.Fatalf("DecodeUnverified: %v", err)
	}
	if claims.Sub != 7 || claims.FullName != "Jane" {
		t.Errorf("claims %+v", claims)
	}
}

func TestDecodeUnverifiedRejectsEmptyIdentity(t *testing.T) {
	// A token with no sub and no email carries nothing to restore.
	token, err := auth.NewSessionToken(0, "", "", "", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.DecodeUnverified(token); err == nil {
		t.Error("expected identity-free token to be rejected")
	}
}
