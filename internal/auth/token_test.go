package auth

import (
	"context"
	"testing"
	"time"

	"airportops/internal/config"
	"airportops/internal/domain"
	"airportops/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]models.ApiUser
}

func (s fakeUserStore) GetByUserName(_ context.Context, userName string) (models.ApiUser, error) {
	u, ok := s.users[userName]
	if !ok {
		return models.ApiUser{}, domain.NotFoundError{Resource: "API user"}
	}
	return u, nil
}

func testIssuer(t *testing.T) TokenIssuer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return TokenIssuer{
		Users: fakeUserStore{users: map[string]models.ApiUser{
			"testuser": {ID: 1, UserName: "testuser", PasswordHash: string(hash), Role: "Admin"},
		}},
		Cfg: config.Authentication{
			SecretForKey: "unit-test-secret-key-of-sufficient-length",
			Issuer:       "airportops",
			Audience:     "airportops-console",
		},
	}
}

func TestAuthenticateIssuesTokenWithNameAndRoleClaims(t *testing.T) {
	issuer := testIssuer(t)

	token, err := issuer.Authenticate(context.Background(), "testuser", "password123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	claims, err := ParseToken(token, issuer.Cfg)
	if err != nil {
		t.Fatalf("issued token failed to parse: %v", err)
	}
	if claims.Name != "testuser" {
		t.Fatalf("Name claim = %q, want %q", claims.Name, "testuser")
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("Role claim = %q, want %q", claims.Role, RoleAdmin)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 24*time.Hour {
		t.Fatalf("token lifetime = %s, want 24h", ttl)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	issuer := testIssuer(t)
	ctx := context.Background()

	_, unknownErr := issuer.Authenticate(ctx, "nobody", "password123")
	_, wrongPassErr := issuer.Authenticate(ctx, "testuser", "hunter2")

	for _, err := range []error{unknownErr, wrongPassErr} {
		if err == nil {
			t.Fatalf("expected authentication failure")
		}
		if !domain.IsAuth(err) {
			t.Fatalf("expected AuthError, got %T", err)
		}
		if err.Error() != "Provided username or password is incorrect." {
			t.Fatalf("unexpected failure message %q", err.Error())
		}
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("unknown-user and wrong-password messages must match")
	}
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	issuer := testIssuer(t)
	issuer.Now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := issuer.Authenticate(context.Background(), "testuser", "password123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if _, err := ParseToken(token, issuer.Cfg); err == nil {
		t.Fatalf("expired token should fail verification")
	}
}

func TestParseTokenRejectsWrongIssuerAndAudience(t *testing.T) {
	issuer := testIssuer(t)

	token, err := issuer.Authenticate(context.Background(), "testuser", "password123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	badIssuer := issuer.Cfg
	badIssuer.Issuer = "someone-else"
	if _, err := ParseToken(token, badIssuer); err == nil {
		t.Fatalf("token with wrong issuer should fail verification")
	}

	badAudience := issuer.Cfg
	badAudience.Audience = "other-console"
	if _, err := ParseToken(token, badAudience); err == nil {
		t.Fatalf("token with wrong audience should fail verification")
	}
}

func TestRoleHierarchy(t *testing.T) {
	if !RoleSuperAdmin.AtLeast(RoleAdmin) || !RoleAdmin.AtLeast(RoleUser) {
		t.Fatalf("hierarchy should be User < Admin < SuperAdmin")
	}
	if RoleUser.AtLeast(RoleAdmin) || RoleAdmin.AtLeast(RoleSuperAdmin) {
		t.Fatalf("lower roles must not satisfy higher requirements")
	}
	if Role("Owner").AtLeast(RoleUser) {
		t.Fatalf("unknown roles must not satisfy any requirement")
	}
}
