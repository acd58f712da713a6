package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"airportops/internal/domain/models"
	"airportops/internal/export"
	"airportops/internal/filters"
	"airportops/internal/pagination"
	"airportops/internal/services"

	"github.com/gin-gonic/gin"
)

type TicketRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.TicketSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.Ticket, error)
	GetByFilter(ctx context.Context, f filters.TicketSearchFilter, page, pageSize int) ([]models.Ticket, error)
	GetByID(ctx context.Context, id int64) (models.Ticket, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, t models.Ticket) (int64, error)
	Update(ctx context.Context, t models.Ticket) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type TicketHandler struct {
	Repo  TicketRepository
	Pager pagination.Validator
}

// GET /api/tickets
func (h TicketHandler) List(c *gin.Context) {
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

// GET /api/tickets/:id
func (h TicketHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/tickets/search?minPrice=100&maxPrice=400
// Price-range search; at least one bound must be present.
func (h TicketHandler) Search(c *gin.Context) {
	minRaw := strings.TrimSpace(c.Query("minPrice"))
	maxRaw := strings.TrimSpace(c.Query("maxPrice"))
	if minRaw == "" && maxRaw == "" {
		c.String(http.StatusBadRequest, "Both minimum and maximum price are missing in the request.")
		return
	}

	f := filters.TicketSearchFilter{}
	if minRaw != "" {
		v, err := strconv.ParseFloat(minRaw, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "Prices must be numeric.")
			return
		}
		f.MinPrice = &v
	}
	if maxRaw != "" {
		v, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "Prices must be numeric.")
			return
		}
		f.MaxPrice = &v
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

// GET /api/tickets/byFilter
func (h TicketHandler) ByFilter(c *gin.Context) {
	var f filters.TicketSearchFilter
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

// POST /api/tickets
func (h TicketHandler) Create(c *gin.Context) {
	var t models.Ticket
	if !bindJSON(c, &t) {
		return
	}
	if msg := validateTicket(t); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), t)
	if err != nil {
		respondError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, t)
}

// PUT /api/tickets/:id
func (h TicketHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var t models.Ticket
	if !bindJSON(c, &t) {
		return
	}
	if msg := validateTicket(t); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	t.ID = id
	if err := h.Repo.Update(c.Request.Context(), t); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/tickets/:id
func (h TicketHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Ticket", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Ticket not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/tickets/export/excel
func (h TicketHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Tickets", export.TicketRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("Tickets", "xlsx"))
}

// GET /api/tickets/export/pdf
func (h TicketHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Tickets", export.TicketRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("Tickets", "pdf"))
}

func (h TicketHandler) exportPage(c *gin.Context) ([]models.Ticket, bool) {
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

func validateTicket(t models.Ticket) string {
	if t.Price < 0 {
		return "Ticket price cannot be negative."
	}
	if _, err := time.Parse("2006-01-02", t.PurchaseDate); err != nil {
		return "Purchase date must use the YYYY-MM-DD format."
	}
	if t.SeatNumber < 1 {
		return "Seat number must be positive."
	}
	if t.PassengerID < 1 || t.TravelClassID < 1 || t.FlightID < 1 {
		return "Passenger, travel class and flight ids are required."
	}
	return ""
}
