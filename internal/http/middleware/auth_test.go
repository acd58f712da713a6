package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airportops/internal/auth"
	"airportops/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testAuthCfg = config.Authentication{
	SecretForKey: "middleware-test-secret-key",
	Issuer:       "airportops",
	Audience:     "airportops-console",
}

func signTestToken(t *testing.T, role auth.Role, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := auth.Claims{
		Name: "tester",
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testAuthCfg.Issuer,
			Audience:  jwt.ClaimStrings{testAuthCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte(testAuthCfg.SecretForKey))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func protectedRouter(min auth.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireAuth(testAuthCfg), RequireRole(min), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGuarded(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenIsUnauthenticated(t *testing.T) {
	r := protectedRouter(auth.RoleUser)
	if w := doGuarded(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestExpiredTokenIsUnauthenticated(t *testing.T) {
	r := protectedRouter(auth.RoleUser)
	token := signTestToken(t, auth.RoleAdmin, -time.Hour)
	if w := doGuarded(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestInsufficientRoleIsForbidden(t *testing.T) {
	r := protectedRouter(auth.RoleAdmin)
	token := signTestToken(t, auth.RoleUser, time.Hour)
	if w := doGuarded(r, token); w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRoleHierarchyGrantsHigherRoles(t *testing.T) {
	r := protectedRouter(auth.RoleAdmin)
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleSuperAdmin} {
		token := signTestToken(t, role, time.Hour)
		if w := doGuarded(r, token); w.Code != http.StatusOK {
			t.Fatalf("role %s: status = %d, want 200", role, w.Code)
		}
	}
}

func TestTokenSignedWithWrongKeyIsRejected(t *testing.T) {
	r := protectedRouter(auth.RoleUser)
	claims := jwt.RegisteredClaims{
		Issuer:    testAuthCfg.Issuer,
		Audience:  jwt.ClaimStrings{testAuthCfg.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("other-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if w := doGuarded(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
