package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
	"airportops/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeFlightRepo struct {
	flights []models.FlightDetail
	// lastFilter records what the handler translated the query into.
	lastFilter filters.FlightSearchFilter
}

func (r *fakeFlightRepo) Count(ctx context.Context) (int, error) { return len(r.flights), nil }

func (r *fakeFlightRepo) CountFiltered(ctx context.Context, f filters.FlightSearchFilter) (int, error) {
	return len(r.flights), nil
}

func (r *fakeFlightRepo) GetPage(ctx context.Context, page, pageSize int) ([]models.FlightDetail, error) {
	return slicePage(r.flights, page, pageSize), nil
}

func (r *fakeFlightRepo) GetByFilter(ctx context.Context, f filters.FlightSearchFilter, page, pageSize int) ([]models.FlightDetail, error) {
	r.lastFilter = f
	return slicePage(r.flights, page, pageSize), nil
}

func (r *fakeFlightRepo) GetByID(ctx context.Context, id int64) (models.FlightDetail, error) {
	for _, f := range r.flights {
		if f.ID == id {
			return f, nil
		}
	}
	return models.FlightDetail{}, domain.NotFoundError{Resource: "Flight"}
}

func (r *fakeFlightRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *fakeFlightRepo) Create(ctx context.Context, f models.Flight) (int64, error) { return 1, nil }

func (r *fakeFlightRepo) Update(ctx context.Context, f models.Flight) error { return nil }

func (r *fakeFlightRepo) Delete(ctx context.Context, id int64) (bool, error) { return true, nil }

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func flightRouter(repo *fakeFlightRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := FlightHandler{Repo: repo, Pager: pagination.Validator{MaxPageSize: 50}}
	r := gin.New()
	r.GET("/api/flights/search", h.Search)
	r.GET("/api/flights/byFilter", h.ByFilter)
	r.POST("/api/flights", h.Create)
	return r
}

func TestFlightSearchRequiresAtLeastOneDate(t *testing.T) {
	r := flightRouter(&fakeFlightRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/search", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Both start date and end date are missing in the request.", w.Body.String())
}

func TestFlightSearchAcceptsSingleBound(t *testing.T) {
	repo := &fakeFlightRepo{flights: []models.FlightDetail{{
		Flight:      models.Flight{ID: 1, DepartureDate: "2024-05-02", DepartureTime: "08:30"},
		AirlineName: "Aurora Air",
	}}}
	r := flightRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/search?startDate=2024-05-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.lastFilter.StartDate)
	require.Equal(t, "2024-05-01", *repo.lastFilter.StartDate)
	require.Nil(t, repo.lastFilter.EndDate)
}

func TestFlightSearchRejectsMalformedDate(t *testing.T) {
	r := flightRouter(&fakeFlightRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/search?startDate=05/01/2024", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightByFilterRejectsEmptyFilter(t *testing.T) {
	r := flightRouter(&fakeFlightRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/byFilter", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "At least one filter criterion must be provided.", w.Body.String())
}

func TestFlightCreateValidatesPayload(t *testing.T) {
	r := flightRouter(&fakeFlightRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/flights",
		jsonBody(`{"departureDate":"not-a-date","departureTime":"08:30","airlineId":1,"destinationId":1,"pilotId":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Departure date must use the YYYY-MM-DD format.", w.Body.String())
}
