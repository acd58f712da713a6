package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type AirlineRepository struct {
	DB *sql.DB
}

func (r AirlineRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM airlines`).Scan(&n)
	return n, err
}

func (r AirlineRepository) CountFiltered(ctx context.Context, f filters.AirlineSearchFilter) (int, error) {
	where, args := airlineWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM airlines`+where, args...).Scan(&n)
	return n, err
}

func (r AirlineRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Airline, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name FROM airlines ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAirlines(rows)
}

func (r AirlineRepository) GetByFilter(ctx context.Context, f filters.AirlineSearchFilter, page, pageSize int) ([]models.Airline, error) {
	where, args := airlineWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name FROM airlines`+where+` ORDER BY id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAirlines(rows)
}

func (r AirlineRepository) GetByID(ctx context.Context, id int64) (models.Airline, error) {
	var a models.Airline
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM airlines WHERE id = ?`, id).
		Scan(&a.ID, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return a, domain.NotFoundError{Resource: "Airline", Err: err}
	}
	return a, err
}

func (r AirlineRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM airlines WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r AirlineRepository) Create(ctx context.Context, a models.Airline) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `INSERT INTO airlines (name) VALUES (?)`, a.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r AirlineRepository) Update(ctx context.Context, a models.Airline) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE airlines SET name = ? WHERE id = ?`, a.Name, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Airline"}
	}
	return nil
}

// Delete returns (false, nil) when the airline is still referenced by a
// flight and cannot be removed.
func (r AirlineRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM airlines WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func airlineWhere(f filters.AirlineSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Name != nil && *f.Name != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, likePattern(*f.Name))
	}
	return whereClause(conds), args
}

func scanAirlines(rows *sql.Rows) ([]models.Airline, error) {
	out := []models.Airline{}
	for rows.Next() {
		var a models.Airline
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
