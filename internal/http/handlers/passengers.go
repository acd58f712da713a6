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

type PassengerRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.PassengerSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.Passenger, error)
	GetByFilter(ctx context.Context, f filters.PassengerSearchFilter, page, pageSize int) ([]models.Passenger, error)
	GetByID(ctx context.Context, id int64) (models.Passenger, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p models.Passenger) (int64, error)
	Update(ctx context.Context, p models.Passenger) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PassengerHandler struct {
	Repo  PassengerRepository
	Pager pagination.Validator
}

// GET /api/passengers
func (h PassengerHandler) List(c *gin.Context) {
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

// GET /api/passengers/:id
func (h PassengerHandler) GetByID(c *gin.Context) {
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

// GET /api/passengers/byFilter
func (h PassengerHandler) ByFilter(c *gin.Context) {
	var f filters.PassengerSearchFilter
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

// POST /api/passengers
func (h PassengerHandler) Create(c *gin.Context) {
	var p models.Passenger
	if !bindJSON(c, &p) {
		return
	}
	if msg := validatePassenger(p); msg != "" {
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

// PUT /api/passengers/:id
func (h PassengerHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p models.Passenger
	if !bindJSON(c, &p) {
		return
	}
	if msg := validatePassenger(p); msg != "" {
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

// DELETE /api/passengers/:id
func (h PassengerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Passenger", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Passenger not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/passengers/export/excel
func (h PassengerHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Passengers", export.PassengerRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("Passengers", "xlsx"))
}

// GET /api/passengers/export/pdf
func (h PassengerHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Passengers", export.PassengerRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("Passengers", "pdf"))
}

func (h PassengerHandler) exportPage(c *gin.Context) ([]models.Passenger, bool) {
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

func validatePassenger(p models.Passenger) string {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return "Passenger first and last name are required."
	}
	if strings.TrimSpace(p.Passport) == "" {
		return "Passenger passport number is required."
	}
	return ""
}
