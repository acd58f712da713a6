package auth

import (
	"context"
	"fmt"
	"time"

	"airportops/internal/config"
	"airportops/internal/domain"
	"airportops/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the absolute lifetime of an issued token.
const tokenTTL = 24 * time.Hour

// Claims is the typed shape of the token payload. Conversion to and from
// the JWT format happens only at this boundary.
type Claims struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
	jwt.RegisteredClaims
}

// UserStore looks up stored credentials. Lookups are case-sensitive exact
// matches on the username.
type UserStore interface {
	GetByUserName(ctx context.Context, userName string) (models.ApiUser, error)
}

// TokenIssuer verifies credentials and signs access tokens.
type TokenIssuer struct {
	Users UserStore
	Cfg   config.Authentication
	Now   func() time.Time // defaults to time.Now
}

func (i TokenIssuer) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

// Authenticate returns a signed token for valid credentials. An unknown
// username and a wrong password produce the same domain.AuthError so the
// response never reveals which usernames exist.
func (i TokenIssuer) Authenticate(ctx context.Context, userName, password string) (string, error) {
	user, err := i.Users.GetByUserName(ctx, userName)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.AuthError{Err: err}
		}
		return "", domain.InternalError{Msg: "user lookup failed", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.AuthError{Err: err}
	}

	role, ok := ParseRole(user.Role)
	if !ok {
		return "", domain.InternalError{Msg: fmt.Sprintf("user %q has unknown role", userName)}
	}

	now := i.now()
	claims := Claims{
		Name: user.UserName,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.Cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.Cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(i.Cfg.SecretForKey))
	if err != nil {
		return "", domain.InternalError{Msg: "token signing failed", Err: err}
	}
	return signed, nil
}

// ParseToken validates signature, expiry, issuer and audience, and returns
// the typed claims.
func ParseToken(tokenString string, cfg config.Authentication) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return []byte(cfg.SecretForKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("token carries unknown role %q", claims.Role)
	}
	return claims, nil
}
