package services

import (
	"context"
	"testing"
	"time"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
)

func newAuthFixture() AuthService {
	return AuthService{
		Users:  memUsers{newMemDB()},
		Secret: []byte("test-secret"),
		NewID:  seqIDs("u"),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture()

	reg, err := svc.Register(ctx, "Ana", " Ana@Example.com ", "hunter22")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.User.Email != "ana@example.com" || reg.User.PasswordHash == "hunter22" || reg.Token == "" {
		t.Fatalf("unexpected register result: %+v", reg)
	}

	userID, err := svc.ParseToken(reg.Token)
	if err != nil || userID != reg.User.ID {
		t.Fatalf("token round trip failed: %q %v", userID, err)
	}

	login, err := svc.Login(ctx, "ana@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Fatalf("login returned another user: %+v", login.User)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture()

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "hunter22"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, err := svc.Register(ctx, "Ana 2", "ANA@example.com", "other-pass")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture()
	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "hunter22"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login(ctx, "ana@example.com", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("wrong password: expected unauthorized, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "hunter22"); !domain.IsUnauthorized(err) {
		t.Fatalf("unknown email: expected unauthorized, got %v", err)
	}
}

func TestParseTokenRejects(t *testing.T) {
	svc := newAuthFixture()

	past := time.Now().Add(-48 * time.Hour)
	old := svc
	old.Now = func() time.Time { return past }
	expired, err := old.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	if _, err := svc.ParseToken(expired); !domain.IsUnauthorized(err) {
		t.Fatalf("expired token: expected unauthorized, got %v", err)
	}

	other := svc
	other.Secret = []byte("another-secret")
	forged, _ := other.IssueToken("u1")
	if _, err := svc.ParseToken(forged); !domain.IsUnauthorized(err) {
		t.Fatalf("foreign signature: expected unauthorized, got %v", err)
	}

	if _, err := svc.ParseToken("not-a-jwt"); !domain.IsUnauthorized(err) {
		t.Fatalf("garbage: expected unauthorized, got %v", err)
	}
}

func TestCurrentUserMissing(t *testing.T) {
	svc := newAuthFixture()
	if _, err := svc.CurrentUser(context.Background(), "gone"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
