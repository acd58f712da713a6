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

type DestinationRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.DestinationSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.Destination, error)
	GetByFilter(ctx context.Context, f filters.DestinationSearchFilter, page, pageSize int) ([]models.Destination, error)
	GetByID(ctx context.Context, id int64) (models.Destination, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, d models.Destination) (int64, error)
	Update(ctx context.Context, d models.Destination) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type DestinationHandler struct {
	Repo  DestinationRepository
	Pager pagination.Validator
}

// GET /api/destinations
func (h DestinationHandler) List(c *gin.Context) {
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

// GET /api/destinations/:id
func (h DestinationHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GET /api/destinations/byFilter?city=...&airport=...
// Filter-object search: at least one criterion is required.
func (h DestinationHandler) ByFilter(c *gin.Context) {
	var f filters.DestinationSearchFilter
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

// POST /api/destinations
func (h DestinationHandler) Create(c *gin.Context) {
	var d models.Destination
	if !bindJSON(c, &d) {
		return
	}
	if strings.TrimSpace(d.City) == "" || strings.TrimSpace(d.Airport) == "" {
		c.String(http.StatusBadRequest, "Destination city and airport are required.")
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), d)
	if err != nil {
		respondError(c, err)
		return
	}
	d.ID = id
	c.JSON(http.StatusCreated, d)
}

// PUT /api/destinations/:id
func (h DestinationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var d models.Destination
	if !bindJSON(c, &d) {
		return
	}
	if strings.TrimSpace(d.City) == "" || strings.TrimSpace(d.Airport) == "" {
		c.String(http.StatusBadRequest, "Destination city and airport are required.")
		return
	}
	d.ID = id
	if err := h.Repo.Update(c.Request.Context(), d); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/destinations/:id
// A destination still referenced by a flight answers 409.
func (h DestinationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Destination", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Destination not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/destinations/export/excel
func (h DestinationHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Destinations", export.DestinationRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("Destinations", "xlsx"))
}

// GET /api/destinations/export/pdf
func (h DestinationHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Destinations", export.DestinationRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("Destinations", "pdf"))
}

func (h DestinationHandler) exportPage(c *gin.Context) ([]models.Destination, bool) {
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
