package handlers

import (
	"context"
	"net/http"
	"strings"

	"airportops/internal/auth"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
	"airportops/internal/pagination"
	"airportops/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type ApiUserRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.ApiUserSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.ApiUser, error)
	GetByFilter(ctx context.Context, f filters.ApiUserSearchFilter, page, pageSize int) ([]models.ApiUser, error)
	GetByID(ctx context.Context, id int64) (models.ApiUser, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, u models.ApiUser) (int64, error)
	Update(ctx context.Context, u models.ApiUser) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ApiUserHandler manages the accounts that can obtain tokens. The whole
// route group is gated to SuperAdmin; password hashes never leave the
// handler in responses.
type ApiUserHandler struct {
	Repo  ApiUserRepository
	Pager pagination.Validator
}

// apiUserPayload is the write-side shape: the password arrives in clear
// and is hashed before it reaches the repository.
type apiUserPayload struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// GET /api/api-users
func (h ApiUserHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	ok, eff := h.Pager.Validate(page, size)
	if !ok {
		c.String(http.StatusBadRequest, pagination.MsgInvalidParameters)
		return
	}

	ctx := c.Request.Context()
	items, err := h.Repo.GetPage(ctx, page, eff)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	total, err := h.Repo.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.NewPage(items, page, eff, total))
}

// GET /api/api-users/:id
func (h ApiUserHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /api/api-users/byFilter
func (h ApiUserHandler) ByFilter(c *gin.Context) {
	var f filters.ApiUserSearchFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.String(http.StatusBadRequest, "Invalid filter parameters.")
		return
	}
	if f.IsEmpty() {
		c.String(http.StatusBadRequest, filters.MsgEmptyFilter)
		return
	}
	page, size := pageParams(c)
	ok, eff := h.Pager.Validate(page, size)
	if !ok {
		c.String(http.StatusBadRequest, pagination.MsgInvalidParameters)
		return
	}

	ctx := c.Request.Context()
	items, err := h.Repo.GetByFilter(ctx, f, page, eff)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	total, err := h.Repo.CountFiltered(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.NewPage(items, page, eff, total))
}

// POST /api/api-users
func (h ApiUserHandler) Create(c *gin.Context) {
	var p apiUserPayload
	if !bindJSON(c, &p) {
		return
	}
	role, msg := validateApiUser(p, true)
	if msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}
	u := models.ApiUser{
		UserName:     p.UserName,
		PasswordHash: string(hash),
		Role:         string(role),
	}
	id, err := h.Repo.Create(c.Request.Context(), u)
	if err != nil {
		respondError(c, err)
		return
	}
	u.ID = id
	c.JSON(http.StatusCreated, u)
}

// PUT /api/api-users/:id
// An empty password keeps the stored hash.
func (h ApiUserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p apiUserPayload
	if !bindJSON(c, &p) {
		return
	}
	role, msg := validateApiUser(p, false)
	if msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	u := models.ApiUser{
		ID:           id,
		UserName:     p.UserName,
		PasswordHash: existing.PasswordHash,
		Role:         string(role),
	}
	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, err)
			return
		}
		u.PasswordHash = string(hash)
	}
	if err := h.Repo.Update(ctx, u); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/api-users/:id
func (h ApiUserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "API user", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "API user not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

func validateApiUser(p apiUserPayload, passwordRequired bool) (auth.Role, string) {
	if strings.TrimSpace(p.UserName) == "" {
		return "", "User name is required."
	}
	if passwordRequired && p.Password == "" {
		return "", "Password is required."
	}
	role, ok := auth.ParseRole(p.Role)
	if !ok {
		return "", "Role must be one of User, Admin or SuperAdmin."
	}
	return role, ""
}
