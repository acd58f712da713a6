package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
	"airportops/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeTicketRepo struct {
	tickets    []models.Ticket
	lastFilter filters.TicketSearchFilter
}

func (r *fakeTicketRepo) Count(ctx context.Context) (int, error) { return len(r.tickets), nil }

func (r *fakeTicketRepo) CountFiltered(ctx context.Context, f filters.TicketSearchFilter) (int, error) {
	return len(r.tickets), nil
}

func (r *fakeTicketRepo) GetPage(ctx context.Context, page, pageSize int) ([]models.Ticket, error) {
	return slicePage(r.tickets, page, pageSize), nil
}

func (r *fakeTicketRepo) GetByFilter(ctx context.Context, f filters.TicketSearchFilter, page, pageSize int) ([]models.Ticket, error) {
	r.lastFilter = f
	return slicePage(r.tickets, page, pageSize), nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id int64) (models.Ticket, error) {
	for _, t := range r.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, domain.NotFoundError{Resource: "Ticket"}
}

func (r *fakeTicketRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *fakeTicketRepo) Create(ctx context.Context, t models.Ticket) (int64, error) { return 1, nil }

func (r *fakeTicketRepo) Update(ctx context.Context, t models.Ticket) error { return nil }

func (r *fakeTicketRepo) Delete(ctx context.Context, id int64) (bool, error) { return true, nil }

func ticketRouter(repo *fakeTicketRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := TicketHandler{Repo: repo, Pager: pagination.Validator{MaxPageSize: 50}}
	r := gin.New()
	r.GET("/api/tickets/search", h.Search)
	r.POST("/api/tickets", h.Create)
	return r
}

func TestTicketSearchRequiresAtLeastOnePrice(t *testing.T) {
	r := ticketRouter(&fakeTicketRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets/search", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Both minimum and maximum price are missing in the request.", w.Body.String())
}

func TestTicketSearchAcceptsSingleBound(t *testing.T) {
	repo := &fakeTicketRepo{tickets: []models.Ticket{
		{ID: 1, Price: 250, PurchaseDate: "2024-04-01", SeatNumber: 12, PassengerID: 1, TravelClassID: 1, FlightID: 1},
	}}
	r := ticketRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets/search?maxPrice=300", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, repo.lastFilter.MinPrice)
	require.NotNil(t, repo.lastFilter.MaxPrice)
	require.Equal(t, 300.0, *repo.lastFilter.MaxPrice)
}

func TestTicketSearchRejectsNonNumericPrice(t *testing.T) {
	r := ticketRouter(&fakeTicketRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets/search?minPrice=cheap", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Prices must be numeric.", w.Body.String())
}

func TestTicketCreateValidatesReferences(t *testing.T) {
	r := ticketRouter(&fakeTicketRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tickets",
		jsonBody(`{"price":100,"purchaseDate":"2024-04-01","seatNumber":3,"passengerId":0,"travelClassId":1,"flightId":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Passenger, travel class and flight ids are required.", w.Body.String())
}
