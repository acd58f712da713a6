package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type PassengerRepository struct {
	DB *sql.DB
}

const passengerSelect = `SELECT id, first_name, last_name, uprn, passport, nationality, address FROM passengers`

func (r PassengerRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&n)
	return n, err
}

func (r PassengerRepository) CountFiltered(ctx context.Context, f filters.PassengerSearchFilter) (int, error) {
	where, args := passengerWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers`+where, args...).Scan(&n)
	return n, err
}

func (r PassengerRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Passenger, error) {
	rows, err := r.DB.QueryContext(ctx,
		passengerSelect+` ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPassengers(rows)
}

func (r PassengerRepository) GetByFilter(ctx context.Context, f filters.PassengerSearchFilter, page, pageSize int) ([]models.Passenger, error) {
	where, args := passengerWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		passengerSelect+where+` ORDER BY id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPassengers(rows)
}

func (r PassengerRepository) GetByID(ctx context.Context, id int64) (models.Passenger, error) {
	var p models.Passenger
	err := r.DB.QueryRowContext(ctx, passengerSelect+` WHERE id = ?`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.UPRN, &p.Passport, &p.Nationality, &p.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.NotFoundError{Resource: "Passenger", Err: err}
	}
	return p, err
}

func (r PassengerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM passengers WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r PassengerRepository) Create(ctx context.Context, p models.Passenger) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO passengers (first_name, last_name, uprn, passport, nationality, address)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.FirstName, p.LastName, p.UPRN, p.Passport, p.Nationality, p.Address)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PassengerRepository) Update(ctx context.Context, p models.Passenger) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE passengers SET first_name = ?, last_name = ?, uprn = ?, passport = ?, nationality = ?, address = ?
		 WHERE id = ?`,
		p.FirstName, p.LastName, p.UPRN, p.Passport, p.Nationality, p.Address, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Passenger"}
	}
	return nil
}

func (r PassengerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM passengers WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func passengerWhere(f filters.PassengerSearchFilter) (string, []any) {
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
	if f.Passport != nil && *f.Passport != "" {
		conds = append(conds, "passport = ?")
		args = append(args, *f.Passport)
	}
	if f.Nationality != nil && *f.Nationality != "" {
		conds = append(conds, "nationality LIKE ?")
		args = append(args, likePattern(*f.Nationality))
	}
	if f.Address != nil && *f.Address != "" {
		conds = append(conds, "address LIKE ?")
		args = append(args, likePattern(*f.Address))
	}
	return whereClause(conds), args
}

func scanPassengers(rows *sql.Rows) ([]models.Passenger, error) {
	out := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.UPRN, &p.Passport, &p.Nationality, &p.Address); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
