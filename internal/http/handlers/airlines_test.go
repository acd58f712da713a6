package handlers

import (
	"context"
	"fmt"
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

// fakeAirlineRepo keeps airlines in a slice ordered by id, mirroring the
// ORDER BY id the real repository applies.
type fakeAirlineRepo struct {
	airlines   []models.Airline
	referenced map[int64]bool
}

func (r *fakeAirlineRepo) Count(ctx context.Context) (int, error) {
	return len(r.airlines), nil
}

func (r *fakeAirlineRepo) CountFiltered(ctx context.Context, f filters.AirlineSearchFilter) (int, error) {
	return len(r.filtered(f)), nil
}

func (r *fakeAirlineRepo) GetPage(ctx context.Context, page, pageSize int) ([]models.Airline, error) {
	return slicePage(r.airlines, page, pageSize), nil
}

func (r *fakeAirlineRepo) GetByFilter(ctx context.Context, f filters.AirlineSearchFilter, page, pageSize int) ([]models.Airline, error) {
	return slicePage(r.filtered(f), page, pageSize), nil
}

func (r *fakeAirlineRepo) GetByID(ctx context.Context, id int64) (models.Airline, error) {
	for _, a := range r.airlines {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Airline{}, errNotFoundAirline
}

func (r *fakeAirlineRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *fakeAirlineRepo) Create(ctx context.Context, a models.Airline) (int64, error) {
	id := int64(len(r.airlines) + 1)
	a.ID = id
	r.airlines = append(r.airlines, a)
	return id, nil
}

func (r *fakeAirlineRepo) Update(ctx context.Context, a models.Airline) error {
	for i := range r.airlines {
		if r.airlines[i].ID == a.ID {
			r.airlines[i] = a
			return nil
		}
	}
	return errNotFoundAirline
}

func (r *fakeAirlineRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if r.referenced[id] {
		return false, nil
	}
	for i, a := range r.airlines {
		if a.ID == id {
			r.airlines = append(r.airlines[:i], r.airlines[i+1:]...)
			return true, nil
		}
	}
	return true, nil
}

func (r *fakeAirlineRepo) filtered(f filters.AirlineSearchFilter) []models.Airline {
	if f.Name == nil {
		return r.airlines
	}
	var out []models.Airline
	for _, a := range r.airlines {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(*f.Name)) {
			out = append(out, a)
		}
	}
	return out
}

func slicePage[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

var errNotFoundAirline = domain.NotFoundError{Resource: "Airline"}

func seededAirlines(n int) []models.Airline {
	out := make([]models.Airline, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Airline{ID: int64(i), Name: fmt.Sprintf("Airline %02d", i)})
	}
	return out
}

func airlineRouter(repo *fakeAirlineRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := AirlineHandler{Repo: repo, Pager: pagination.Validator{MaxPageSize: 50}}
	r := gin.New()
	r.GET("/api/airlines", h.List)
	r.GET("/api/airlines/search", h.Search)
	r.GET("/api/airlines/:id", h.GetByID)
	r.DELETE("/api/airlines/:id", h.Delete)
	r.GET("/api/airlines/export/excel", h.ExportExcel)
	return r
}

func TestAirlineListSecondPage(t *testing.T) {
	repo := &fakeAirlineRepo{airlines: seededAirlines(10)}
	r := airlineRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/airlines?page=2&pageSize=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `"pageNumber":2`)
	require.Contains(t, body, `"pageSize":5`)
	require.Contains(t, body, `"totalCount":10`)
	require.Contains(t, body, "Airline 06")
	require.Contains(t, body, "Airline 10")
	require.NotContains(t, body, "Airline 05")
}

func TestAirlineListRejectsBadPagination(t *testing.T) {
	r := airlineRouter(&fakeAirlineRepo{airlines: seededAirlines(3)})

	for _, q := range []string{"page=0", "pageSize=0", "page=abc", "pageSize=-1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/airlines?"+q, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, q)
		require.Equal(t, "Invalid pagination parameters.", w.Body.String(), q)
	}
}

func TestAirlineListEmptyPageAnswersNoContent(t *testing.T) {
	r := airlineRouter(&fakeAirlineRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/airlines", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestAirlineSearchRequiresName(t *testing.T) {
	r := airlineRouter(&fakeAirlineRepo{airlines: seededAirlines(3)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/airlines/search", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Airline name is missing in the request.", w.Body.String())
}

func TestAirlineDeleteConflict(t *testing.T) {
	repo := &fakeAirlineRepo{
		airlines:   seededAirlines(2),
		referenced: map[int64]bool{1: true},
	}
	r := airlineRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/airlines/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Airline cannot be deleted because it is being referenced by other entities.", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/airlines/2", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/airlines/99", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAirlineExportExcelHeaders(t *testing.T) {
	r := airlineRouter(&fakeAirlineRepo{airlines: seededAirlines(3)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/airlines/export/excel", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	require.NotEmpty(t, w.Body.Bytes())
}

func TestAirlineExportExcelEmpty(t *testing.T) {
	r := airlineRouter(&fakeAirlineRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/airlines/export/excel", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No data to export.", w.Body.String())
}
