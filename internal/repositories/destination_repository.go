package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n)
	return n, err
}

func (r DestinationRepository) CountFiltered(ctx context.Context, f filters.DestinationSearchFilter) (int, error) {
	where, args := destinationWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`+where, args...).Scan(&n)
	return n, err
}

func (r DestinationRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Destination, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, city, airport FROM destinations ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDestinations(rows)
}

func (r DestinationRepository) GetByFilter(ctx context.Context, f filters.DestinationSearchFilter, page, pageSize int) ([]models.Destination, error) {
	where, args := destinationWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, city, airport FROM destinations`+where+` ORDER BY id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDestinations(rows)
}

func (r DestinationRepository) GetByID(ctx context.Context, id int64) (models.Destination, error) {
	var d models.Destination
	err := r.DB.QueryRowContext(ctx, `SELECT id, city, airport FROM destinations WHERE id = ?`, id).
		Scan(&d.ID, &d.City, &d.Airport)
	if errors.Is(err, sql.ErrNoRows) {
		return d, domain.NotFoundError{Resource: "Destination", Err: err}
	}
	return d, err
}

func (r DestinationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM destinations WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r DestinationRepository) Create(ctx context.Context, d models.Destination) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO destinations (city, airport) VALUES (?, ?)`, d.City, d.Airport)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r DestinationRepository) Update(ctx context.Context, d models.Destination) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE destinations SET city = ?, airport = ? WHERE id = ?`, d.City, d.Airport, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Destination"}
	}
	return nil
}

func (r DestinationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM destinations WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func destinationWhere(f filters.DestinationSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.City != nil && *f.City != "" {
		conds = append(conds, "city LIKE ?")
		args = append(args, likePattern(*f.City))
	}
	if f.Airport != nil && *f.Airport != "" {
		conds = append(conds, "airport LIKE ?")
		args = append(args, likePattern(*f.Airport))
	}
	return whereClause(conds), args
}

func scanDestinations(rows *sql.Rows) ([]models.Destination, error) {
	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.City, &d.Airport); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
