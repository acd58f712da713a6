package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type TravelClassRepository struct {
	DB *sql.DB
}

func (r TravelClassRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM travel_classes`).Scan(&n)
	return n, err
}

func (r TravelClassRepository) CountFiltered(ctx context.Context, f filters.TravelClassSearchFilter) (int, error) {
	where, args := travelClassWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM travel_classes`+where, args...).Scan(&n)
	return n, err
}

func (r TravelClassRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.TravelClass, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, type FROM travel_classes ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTravelClasses(rows)
}

func (r TravelClassRepository) GetByFilter(ctx context.Context, f filters.TravelClassSearchFilter, page, pageSize int) ([]models.TravelClass, error) {
	where, args := travelClassWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, type FROM travel_classes`+where+` ORDER BY id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTravelClasses(rows)
}

func (r TravelClassRepository) GetByID(ctx context.Context, id int64) (models.TravelClass, error) {
	var tc models.TravelClass
	err := r.DB.QueryRowContext(ctx, `SELECT id, type FROM travel_classes WHERE id = ?`, id).
		Scan(&tc.ID, &tc.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return tc, domain.NotFoundError{Resource: "Travel class", Err: err}
	}
	return tc, err
}

func (r TravelClassRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM travel_classes WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r TravelClassRepository) Create(ctx context.Context, tc models.TravelClass) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `INSERT INTO travel_classes (type) VALUES (?)`, tc.Type)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TravelClassRepository) Update(ctx context.Context, tc models.TravelClass) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE travel_classes SET type = ? WHERE id = ?`, tc.Type, tc.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Travel class"}
	}
	return nil
}

func (r TravelClassRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM travel_classes WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func travelClassWhere(f filters.TravelClassSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Type != nil && *f.Type != "" {
		conds = append(conds, "type LIKE ?")
		args = append(args, likePattern(*f.Type))
	}
	return whereClause(conds), args
}

func scanTravelClasses(rows *sql.Rows) ([]models.TravelClass, error) {
	out := []models.TravelClass{}
	for rows.Next() {
		var tc models.TravelClass
		if err := rows.Scan(&tc.ID, &tc.Type); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
