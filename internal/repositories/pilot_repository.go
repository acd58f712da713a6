package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type PilotRepository struct {
	DB *sql.DB
}

func (r PilotRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM pilots`).Scan(&n)
	return n, err
}

func (r PilotRepository) CountFiltered(ctx context.Context, f filters.PilotSearchFilter) (int, error) {
	where, args := pilotWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM pilots`+where, args...).Scan(&n)
	return n, err
}

func (r PilotRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Pilot, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, first_name, last_name, uprn, flying_hours FROM pilots ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPilots(rows)
}

func (r PilotRepository) GetByFilter(ctx context.Context, f filters.PilotSearchFilter, page, pageSize int) ([]models.Pilot, error) {
	where, args := pilotWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, first_name, last_name, uprn, flying_hours FROM pilots`+where+` ORDER BY id LIMIT ? OFFSET ?`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPilots(rows)
}

func (r PilotRepository) GetByID(ctx context.Context, id int64) (models.Pilot, error) {
	var p models.Pilot
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, uprn, flying_hours FROM pilots WHERE id = ?`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.UPRN, &p.FlyingHours)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.NotFoundError{Resource: "Pilot", Err: err}
	}
	return p, err
}

func (r PilotRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM pilots WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r PilotRepository) Create(ctx context.Context, p models.Pilot) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO pilots (first_name, last_name, uprn, flying_hours) VALUES (?, ?, ?, ?)`,
		p.FirstName, p.LastName, p.UPRN, p.FlyingHours)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PilotRepository) Update(ctx context.Context, p models.Pilot) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE pilots SET first_name = ?, last_name = ?, uprn = ?, flying_hours = ? WHERE id = ?`,
		p.FirstName, p.LastName, p.UPRN, p.FlyingHours, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Pilot"}
	}
	return nil
}

func (r PilotRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM pilots WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func pilotWhere(f filters.PilotSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.FirstName != nil && *f.FirstName != "" {
		conds = append(conds, "first_name LIKE ?")
		args = append(args, likePattern(*f.FirstName))
	}
	if f.LastName != nil && *f.LastName != "" {
		conds = append(conds, "last_name LIKE ?")
		args = append(args, likePattern(*f.LastName))
	}
	if f.UPRN != nil && *f.UPRN != "" {
		conds = append(conds, "uprn = ?")
		args = append(args, *f.UPRN)
	}
	if f.FlyingHoursMin != nil {
		conds = append(conds, "flying_hours >= ?")
		args = append(args, *f.FlyingHoursMin)
	}
	if f.FlyingHoursMax != nil {
		conds = append(conds, "flying_hours <= ?")
		args = append(args, *f.FlyingHoursMax)
	}
	return whereClause(conds), args
}

func scanPilots(rows *sql.Rows) ([]models.Pilot, error) {
	out := []models.Pilot{}
	for rows.Next() {
		var p models.Pilot
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.UPRN, &p.FlyingHours); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
