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

type AirlineRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.AirlineSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.Airline, error)
	GetByFilter(ctx context.Context, f filters.AirlineSearchFilter, page, pageSize int) ([]models.Airline, error)
	GetByID(ctx context.Context, id int64) (models.Airline, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, a models.Airline) (int64, error)
	Update(ctx context.Context, a models.Airline) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type AirlineHandler struct {
	Repo  AirlineRepository
	Pager pagination.Validator
}

// GET /api/airlines?page=1&pageSize=10
func (h AirlineHandler) List(c *gin.Context) {
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

// GET /api/airlines/:id
func (h AirlineHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GET /api/airlines/search?name=...
// Ad-hoc-parameter search: the single criterion must be present.
func (h AirlineHandler) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.String(http.StatusBadRequest, "Airline name is missing in the request.")
		return
	}
	page, size := pageParams(c)
	ok, eff := h.Pager.Validate(page, size)
	if !ok {
		c.String(http.StatusBadRequest, pagination.MsgInvalidParameters)
		return
	}

	f := filters.AirlineSearchFilter{Name: &name}
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

// POST /api/airlines
func (h AirlineHandler) Create(c *gin.Context) {
	var a models.Airline
	if !bindJSON(c, &a) {
		return
	}
	if strings.TrimSpace(a.Name) == "" {
		c.String(http.StatusBadRequest, "Airline name is required.")
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	a.ID = id
	c.JSON(http.StatusCreated, a)
}

// PUT /api/airlines/:id
func (h AirlineHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var a models.Airline
	if !bindJSON(c, &a) {
		return
	}
	if strings.TrimSpace(a.Name) == "" {
		c.String(http.StatusBadRequest, "Airline name is required.")
		return
	}
	a.ID = id
	if err := h.Repo.Update(c.Request.Context(), a); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/airlines/:id
func (h AirlineHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Airline", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Airline not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/airlines/export/excel
func (h AirlineHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Airlines", export.AirlineRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("Airlines", "xlsx"))
}

// GET /api/airlines/export/pdf
func (h AirlineHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Airlines", export.AirlineRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("Airlines", "pdf"))
}

func (h AirlineHandler) exportPage(c *gin.Context) ([]models.Airline, bool) {
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
