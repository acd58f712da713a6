package repositories

import (
	"context"
	"testing"

	"airportops/internal/domain"
	"airportops/internal/filters"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestAirlineGetPageUsesLimitOffset(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM airlines ORDER BY id LIMIT \\? OFFSET \\?").
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(6, "Aurora Wings").
			AddRow(7, "Meridian"))

	repo := AirlineRepository{DB: db}
	items, err := repo.GetPage(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("GetPage error: %v", err)
	}
	if len(items) != 2 || items[0].ID != 6 || items[1].Name != "Meridian" {
		t.Fatalf("unexpected page contents: %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAirlineGetByFilterBuildsLikeCondition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	name := "Aur"
	mock.ExpectQuery("SELECT id, name FROM airlines WHERE name LIKE \\?").
		WithArgs("%Aur%", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Aurora Wings"))

	repo := AirlineRepository{DB: db}
	items, err := repo.GetByFilter(context.Background(), filters.AirlineSearchFilter{Name: &name}, 1, 10)
	if err != nil {
		t.Fatalf("GetByFilter error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Aurora Wings" {
		t.Fatalf("unexpected filter results: %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAirlineCountFilteredMatchesFilterShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	name := "Aur"
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM airlines WHERE name LIKE \\?").
		WithArgs("%Aur%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := AirlineRepository{DB: db}
	n, err := repo.CountFiltered(context.Background(), filters.AirlineSearchFilter{Name: &name})
	if err != nil {
		t.Fatalf("CountFiltered error: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestAirlineGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM airlines WHERE id = \\?").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	repo := AirlineRepository{DB: db}
	_, err = repo.GetByID(context.Background(), 42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAirlineDeleteTranslatesForeignKeyError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM airlines WHERE id = \\?").
		WithArgs(int64(1)).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "a foreign key constraint fails"})

	repo := AirlineRepository{DB: db}
	ok, err := repo.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("FK conflict should not surface as an error, got %v", err)
	}
	if ok {
		t.Fatalf("FK conflict should report the row as not deleted")
	}
}

func TestAirlineDeleteSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM airlines WHERE id = \\?").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := AirlineRepository{DB: db}
	ok, err := repo.Delete(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", ok, err)
	}
}
