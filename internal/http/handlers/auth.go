package handlers

import (
	"context"
	"net/http"

	"airportops/internal/domain"

	"github.com/gin-gonic/gin"
)

// TokenIssuer is the slice of the auth service this handler needs.
type TokenIssuer interface {
	Authenticate(ctx context.Context, userName, password string) (string, error)
}

type AuthHandler struct {
	Issuer TokenIssuer
}

type credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// CreateToken handles POST /api/auth/token. The response body is the bearer
// token as a plain string; every failure answers 401 with the same message.
func (h AuthHandler) CreateToken(c *gin.Context) {
	var creds credentials
	if !bindJSON(c, &creds) {
		return
	}

	token, err := h.Issuer.Authenticate(c.Request.Context(), creds.UserName, creds.Password)
	if err != nil {
		if domain.IsAuth(err) {
			c.String(http.StatusUnauthorized, err.Error())
			return
		}
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, token)
}
