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

type TravelClassRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.TravelClassSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.TravelClass, error)
	GetByFilter(ctx context.Context, f filters.TravelClassSearchFilter, page, pageSize int) ([]models.TravelClass, error)
	GetByID(ctx context.Context, id int64) (models.TravelClass, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, tc models.TravelClass) (int64, error)
	Update(ctx context.Context, tc models.TravelClass) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type TravelClassHandler struct {
	Repo  TravelClassRepository
	Pager pagination.Validator
}

// GET /api/travel-classes
func (h TravelClassHandler) List(c *gin.Context) {
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

// GET /api/travel-classes/:id
func (h TravelClassHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tc, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tc)
}

// GET /api/travel-classes/byFilter
func (h TravelClassHandler) ByFilter(c *gin.Context) {
	var f filters.TravelClassSearchFilter
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

// POST /api/travel-classes
func (h TravelClassHandler) Create(c *gin.Context) {
	var tc models.TravelClass
	if !bindJSON(c, &tc) {
		return
	}
	if strings.TrimSpace(tc.Type) == "" {
		c.String(http.StatusBadRequest, "Travel class type is required.")
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), tc)
	if err != nil {
		respondError(c, err)
		return
	}
	tc.ID = id
	c.JSON(http.StatusCreated, tc)
}

// PUT /api/travel-classes/:id
func (h TravelClassHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var tc models.TravelClass
	if !bindJSON(c, &tc) {
		return
	}
	if strings.TrimSpace(tc.Type) == "" {
		c.String(http.StatusBadRequest, "Travel class type is required.")
		return
	}
	tc.ID = id
	if err := h.Repo.Update(c.Request.Context(), tc); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/travel-classes/:id
func (h TravelClassHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Travel class", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Travel class not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/travel-classes/export/excel
func (h TravelClassHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Travel Classes", export.TravelClassRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("TravelClasses", "xlsx"))
}

// GET /api/travel-classes/export/pdf
func (h TravelClassHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Travel Classes", export.TravelClassRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("TravelClasses", "pdf"))
}

func (h TravelClassHandler) exportPage(c *gin.Context) ([]models.TravelClass, bool) {
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
