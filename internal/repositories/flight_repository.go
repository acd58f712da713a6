package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type FlightRepository struct {
	DB *sql.DB
}

// flightSelect joins in the display names the admin console and the PDF
// export both need. Date and time columns are formatted in SQL so the rows
// scan into plain strings regardless of the driver's parseTime setting.
const flightSelect = `
SELECT f.id,
       DATE_FORMAT(f.departure_date, '%Y-%m-%d'),
       TIME_FORMAT(f.departure_time, '%H:%i'),
       f.airline_id, f.destination_id, f.pilot_id,
       a.name,
       CONCAT(d.city, ' (', d.airport, ')'),
       CONCAT(p.first_name, ' ', p.last_name)
FROM flights f
JOIN airlines a ON a.id = f.airline_id
JOIN destinations d ON d.id = f.destination_id
JOIN pilots p ON p.id = f.pilot_id`

func (r FlightRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights f`).Scan(&n)
	return n, err
}

func (r FlightRepository) CountFiltered(ctx context.Context, f filters.FlightSearchFilter) (int, error) {
	where, args := flightWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights f`+where, args...).Scan(&n)
	return n, err
}

func (r FlightRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.FlightDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		flightSelect+` ORDER BY f.id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r FlightRepository) GetByFilter(ctx context.Context, f filters.FlightSearchFilter, page, pageSize int) ([]models.FlightDetail, error) {
	where, args := flightWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		flightSelect+where+` ORDER BY f.id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r FlightRepository) GetByID(ctx context.Context, id int64) (models.FlightDetail, error) {
	row := r.DB.QueryRowContext(ctx, flightSelect+` WHERE f.id = ?`, id)
	var fl models.FlightDetail
	err := row.Scan(&fl.ID, &fl.DepartureDate, &fl.DepartureTime,
		&fl.AirlineID, &fl.DestinationID, &fl.PilotID,
		&fl.AirlineName, &fl.DestinationName, &fl.PilotName)
	if errors.Is(err, sql.ErrNoRows) {
		return fl, domain.NotFoundError{Resource: "Flight", Err: err}
	}
	return fl, err
}

func (r FlightRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM flights WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r FlightRepository) Create(ctx context.Context, f models.Flight) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO flights (departure_date, departure_time, airline_id, destination_id, pilot_id)
		 VALUES (?, ?, ?, ?, ?)`,
		f.DepartureDate, f.DepartureTime, f.AirlineID, f.DestinationID, f.PilotID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r FlightRepository) Update(ctx context.Context, f models.Flight) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE flights SET departure_date = ?, departure_time = ?, airline_id = ?, destination_id = ?, pilot_id = ?
		 WHERE id = ?`,
		f.DepartureDate, f.DepartureTime, f.AirlineID, f.DestinationID, f.PilotID, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Flight"}
	}
	return nil
}

func (r FlightRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM flights WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func flightWhere(f filters.FlightSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.StartDate != nil && *f.StartDate != "" {
		conds = append(conds, "f.departure_date >= ?")
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil && *f.EndDate != "" {
		conds = append(conds, "f.departure_date <= ?")
		args = append(args, *f.EndDate)
	}
	if f.AirlineID != nil {
		conds = append(conds, "f.airline_id = ?")
		args = append(args, *f.AirlineID)
	}
	if f.DestinationID != nil {
		conds = append(conds, "f.destination_id = ?")
		args = append(args, *f.DestinationID)
	}
	if f.PilotID != nil {
		conds = append(conds, "f.pilot_id = ?")
		args = append(args, *f.PilotID)
	}
	return whereClause(conds), args
}

func scanFlights(rows *sql.Rows) ([]models.FlightDetail, error) {
	out := []models.FlightDetail{}
	for rows.Next() {
		var fl models.FlightDetail
		if err := rows.Scan(&fl.ID, &fl.DepartureDate, &fl.DepartureTime,
			&fl.AirlineID, &fl.DestinationID, &fl.PilotID,
			&fl.AirlineName, &fl.DestinationName, &fl.PilotName); err != nil {
			return nil, err
		}
		out = append(out, fl)
	}
	return out, rows.Err()
}
