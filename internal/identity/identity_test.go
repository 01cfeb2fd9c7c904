package identity_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/identity"
)

func TestHeaderResolver_Resolve(t *testing.T) {
	resolver := identity.NewHeaderResolver()
	userID := uuid.New()

	r := httptest.NewRequest("GET", "/uploads", nil)
	r.Header.Set(identity.HeaderUserID, userID.String())
	r.Header.Set(identity.HeaderUserName, "Asha")
	r.Header.Set(identity.HeaderUserLanguage, "te")

	principal, err := resolver.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if principal.ID != userID {
		t.Errorf("ID = %v, want %v", principal.ID, userID)
	}
	if principal.Name != "Asha" {
		t.Errorf("Name = %q, want Asha", principal.Name)
	}
	if principal.Language != "te" {
		t.Errorf("Language = %q, want te", principal.Language)
	}
}

func TestHeaderResolver_DefaultLanguage(t *testing.T) {
	resolver := identity.NewHeaderResolver()

	r := httptest.NewRequest("GET", "/uploads", nil)
	r.Header.Set(identity.HeaderUserID, uuid.NewString())

	principal, err := resolver.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if principal.Language != "en" {
		t.Errorf("Language = %q, want en default", principal.Language)
	}
}

func TestHeaderResolver_Unauthorized(t *testing.T) {
	resolver := identity.NewHeaderResolver()

	tests := []struct {
		name string
		id   string
	}{
		{"missing header", ""},
		{"malformed uuid", "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/uploads", nil)
			if tt.id != "" {
				r.Header.Set(identity.HeaderUserID, tt.id)
			}

			if _, err := resolver.Resolve(r); !errors.Is(err, identity.ErrUnauthorized) {
				t.Errorf("Resolve() error = %v, want ErrUnauthorized", err)
			}
		})
	}
}
