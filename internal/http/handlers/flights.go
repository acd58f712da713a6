package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"airportops/internal/domain/models"
	"airportops/internal/export"
	"airportops/internal/filters"
	"airportops/internal/pagination"
	"airportops/internal/services"

	"github.com/gin-gonic/gin"
)

type FlightRepository interface {
	Count(ctx context.Context) (int, error)
	CountFiltered(ctx context.Context, f filters.FlightSearchFilter) (int, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.FlightDetail, error)
	GetByFilter(ctx context.Context, f filters.FlightSearchFilter, page, pageSize int) ([]models.FlightDetail, error)
	GetByID(ctx context.Context, id int64) (models.FlightDetail, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, f models.Flight) (int64, error)
	Update(ctx context.Context, f models.Flight) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type FlightHandler struct {
	Repo  FlightRepository
	Pager pagination.Validator
}

// GET /api/flights
func (h FlightHandler) List(c *gin.Context) {
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

// GET /api/flights/:id
func (h FlightHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	f, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// GET /api/flights/search?startDate=2024-05-01&endDate=2024-05-31
// Ad-hoc date-range search; at least one bound must be present.
func (h FlightHandler) Search(c *gin.Context) {
	start := strings.TrimSpace(c.Query("startDate"))
	end := strings.TrimSpace(c.Query("endDate"))
	if start == "" && end == "" {
		c.String(http.StatusBadRequest, "Both start date and end date are missing in the request.")
		return
	}
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.String(http.StatusBadRequest, "Dates must use the YYYY-MM-DD format.")
			return
		}
	}
	page, size := pageParams(c)
	ok, eff := h.Pager.Validate(page, size)
	if !ok {
		c.String(http.StatusBadRequest, pagination.MsgInvalidParameters)
		return
	}

	f := filters.FlightSearchFilter{}
	if start != "" {
		f.StartDate = &start
	}
	if end != "" {
		f.EndDate = &end
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

// GET /api/flights/byFilter
// Filter-object search over dates and airline/destination/pilot ids.
func (h FlightHandler) ByFilter(c *gin.Context) {
	var f filters.FlightSearchFilter
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

// POST /api/flights
func (h FlightHandler) Create(c *gin.Context) {
	var f models.Flight
	if !bindJSON(c, &f) {
		return
	}
	if msg := validateFlight(f); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	f.ID = id
	c.JSON(http.StatusCreated, f)
}

// PUT /api/flights/:id
func (h FlightHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var f models.Flight
	if !bindJSON(c, &f) {
		return
	}
	if msg := validateFlight(f); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}
	f.ID = id
	if err := h.Repo.Update(c.Request.Context(), f); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/flights/:id
func (h FlightHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	guard := services.DeleteGuard{Entity: "Flight", Repo: h.Repo}
	outcome, err := guard.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	switch outcome {
	case services.DeleteNotFound:
		c.String(http.StatusNotFound, "Flight not found")
	case services.DeleteConflict:
		c.String(http.StatusConflict, guard.ConflictMessage())
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /api/flights/export/excel
func (h FlightHandler) ExportExcel(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToSpreadsheet("Flights", export.FlightRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.SpreadsheetContentType, exportFilename("Flights", "xlsx"))
}

// GET /api/flights/export/pdf
// Renders the joined airline/destination/pilot names, not the raw ids.
func (h FlightHandler) ExportPDF(c *gin.Context) {
	items, ok := h.exportPage(c)
	if !ok {
		return
	}
	data, err := export.ToDocument("Flights", export.FlightRows(items))
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, data, export.DocumentContentType, exportFilename("Flights", "pdf"))
}

func (h FlightHandler) exportPage(c *gin.Context) ([]models.FlightDetail, bool) {
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

func validateFlight(f models.Flight) string {
	if _, err := time.Parse("2006-01-02", f.DepartureDate); err != nil {
		return "Departure date must use the YYYY-MM-DD format."
	}
	if _, err := time.Parse("15:04", f.DepartureTime); err != nil {
		return "Departure time must use the HH:MM format."
	}
	if f.AirlineID < 1 || f.DestinationID < 1 || f.PilotID < 1 {
		return "Airline, destination and pilot ids are required."
	}
	return ""
}
