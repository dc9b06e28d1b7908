package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/99minutos/wms-console/internal/core/domain"
)

func TestStaticVerifier_Verify(t *testing.T) {
	v := NewStaticVerifier("")

	tests := []struct {
		username, password string
		want               domain.Role
		wantErr            error
	}{
		{"admin", "123", domain.RoleAdmin, nil},
		{"manager", "123", domain.RoleManager, nil},
		{"staff", "123", domain.RoleStaff, nil},
		{"x", "y", domain.RoleNone, domain.ErrInvalidCredentials},
		{"admin", "", domain.RoleNone, domain.ErrInvalidCredentials},
		{"Admin", "123", domain.RoleNone, domain.ErrInvalidCredentials},
		{"", "123", domain.RoleNone, domain.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		got, err := v.Verify(context.Background(), tc.username, tc.password)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("Verify(%q, %q) err = %v, want %v", tc.username, tc.password, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("Verify(%q, %q) = %q, want %q", tc.username, tc.password, got, tc.want)
		}
	}
}

func TestStaticVerifier_CustomPassword(t *testing.T) {
	v := NewStaticVerifier("s3cret")

	if _, err := v.Verify(context.Background(), "admin", "123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("default password must be rejected once overridden, got %v", err)
	}
	if role, err := v.Verify(context.Background(), "admin", "s3cret"); err != nil || role != domain.RoleAdmin {
		t.Fatalf("expected Admin, got %q, %v", role, err)
	}
}
