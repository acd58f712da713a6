package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type TicketRepository struct {
	DB *sql.DB
}

const ticketSelect = `
SELECT id, price, DATE_FORMAT(purchase_date, '%Y-%m-%d'), seat_number,
       passenger_id, travel_class_id, flight_id
FROM tickets`

func (r TicketRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&n)
	return n, err
}

func (r TicketRepository) CountFiltered(ctx context.Context, f filters.TicketSearchFilter) (int, error) {
	where, args := ticketWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`+where, args...).Scan(&n)
	return n, err
}

func (r TicketRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Ticket, error) {
	rows, err := r.DB.QueryContext(ctx,
		ticketSelect+` ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r TicketRepository) GetByFilter(ctx context.Context, f filters.TicketSearchFilter, page, pageSize int) ([]models.Ticket, error) {
	where, args := ticketWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		ticketSelect+where+` ORDER BY id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r TicketRepository) GetByID(ctx context.Context, id int64) (models.Ticket, error) {
	var t models.Ticket
	err := r.DB.QueryRowContext(ctx, ticketSelect+` WHERE id = ?`, id).
		Scan(&t.ID, &t.Price, &t.PurchaseDate, &t.SeatNumber, &t.PassengerID, &t.TravelClassID, &t.FlightID)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "Ticket", Err: err}
	}
	return t, err
}

func (r TicketRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM tickets WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r TicketRepository) Create(ctx context.Context, t models.Ticket) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO tickets (price, purchase_date, seat_number, passenger_id, travel_class_id, flight_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.Price, t.PurchaseDate, t.SeatNumber, t.PassengerID, t.TravelClassID, t.FlightID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TicketRepository) Update(ctx context.Context, t models.Ticket) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE tickets SET price = ?, purchase_date = ?, seat_number = ?, passenger_id = ?, travel_class_id = ?, flight_id = ?
		 WHERE id = ?`,
		t.Price, t.PurchaseDate, t.SeatNumber, t.PassengerID, t.TravelClassID, t.FlightID, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Ticket"}
	}
	return nil
}

// Tickets are leaf rows; nothing references them, so a delete either
// removes the row or the row was already gone.
func (r TicketRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func ticketWhere(f filters.TicketSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.MinPrice != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.PurchaseDate != nil && *f.PurchaseDate != "" {
		conds = append(conds, "purchase_date = ?")
		args = append(args, *f.PurchaseDate)
	}
	if f.SeatNumber != nil {
		conds = append(conds, "seat_number = ?")
		args = append(args, *f.SeatNumber)
	}
	return whereClause(conds), args
}

func scanTickets(rows *sql.Rows) ([]models.Ticket, error) {
	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.Price, &t.PurchaseDate, &t.SeatNumber,
			&t.PassengerID, &t.TravelClassID, &t.FlightID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
