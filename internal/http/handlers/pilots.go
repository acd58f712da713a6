package handlers

import (
	"context"
	"net/http"
	"strings"

	"airportops/internal/domain/models"
	"airportops/internal/export"
	"airportops/internal/filters"
	"airportops/internal/pagination"
	"airportops/internal/services"

	"github.com/gin-gonic/gin"
)

type PilotRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.PilotSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.Pilot, error)
	GetByFilter(ctx context.Context, f filters.PilotSearchFilter, page, pageSize int) ([]models.Pilot, error)
	GetByID(ctx context.Context, id int64) (models.Pilot, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p models.Pilot) (int64, error)
	Update(ctx context.Context, p models.Pilot) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PilotHandler struct {
	Repo  PilotRepository
	Pager pagination.Validator
}

// GET /api/pilots
func (h PilotHandler) List(c *gin.Context) {
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

// GET /api/pilots/:id
func (h PilotHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/pilots/byFilter
func (h PilotHandler) ByFilter(c *gin.Context) {
	var f filters.PilotSearchFilter
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

// POST /api/pilots
func (h PilotHandler) Create(c *gin.Context) {
	var p models.Pilot
	if !bindJSON(c, &p) {
		return
	}
	if msg := validatePilot(p); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

// PUT /api/pilots/:id
func (h PilotHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p models.Pilot
	if !bindJSON(c, &p) {
		return
	}
	if msg := validatePilot(p); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	p.ID = id
	if err := h.Repo.Update(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/pilots/:id
func (h PilotHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Pilot", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Pilot not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/pilots/export/excel
func (h PilotHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Pilots", export.PilotRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("Pilots", "xlsx"))
}

// GET /api/pilots/export/pdf
func (h PilotHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Pilots", export.PilotRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("Pilots", "pdf"))
}

func (h PilotHandler) exportPage(c *gin.Context) ([]models.Pilot, bool) {
	page, size := pageParams(c)
	ok, eff := h.Pager.Validate(page, size)
	if !ok {
		c.String(http.StatusBadRequest, pagination.MsgInvalidParameters)
		return nil, false
	}
	items, err := h.Repo.GetPage(c.Request.Context(), page, eff)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return items, true
}

func validatePilot(p models.Pilot) string {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return "Pilot first and last name are required."
	}
	if p.FlyingHours < 0 {
		return "Flying hours cannot be negative."
	}
	return ""
}
