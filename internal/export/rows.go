package export

import "airportops/internal/domain/models"

// Flat row shapes fed into the exporters. Field order here is the column
// order in the generated files.

type AirlineRow struct {
	ID   int64
	Name string
}

type DestinationRow struct {
	ID      int64
	City    string
	Airport string
}

type PilotRow struct {
	ID          int64
	FirstName   string
	LastName    string
	UPRN        string
	FlyingHours int
}

type TravelClassRow struct {
	ID   int64
	Type string
}

// FlightRow carries the joined airline/destination/pilot display names; the
// raw foreign keys are useless in a printed report.
type FlightRow struct {
	ID            int64
	DepartureDate string
	DepartureTime string
	Airline       string
	Destination   string
	Pilot         string
}

type PassengerRow struct {
	ID          int64
	FirstName   string
	LastName    string
	UPRN        string
	Passport    string
	Nationality string
	Address     string
}

type TicketRow struct {
	ID            int64
	Price         float64
	PurchaseDate  string
	SeatNumber    int
	PassengerID   int64
	TravelClassID int64
	FlightID      int64
}

func AirlineRows(items []models.Airline) []AirlineRow {
	rows := make([]AirlineRow, 0, len(items))
	for _, a := range items {
		rows = append(rows, AirlineRow{ID: a.ID, Name: a.Name})
	}
	return rows
}

func DestinationRows(items []models.Destination) []DestinationRow {
	rows := make([]DestinationRow, 0, len(items))
	for _, d := range items {
		rows = append(rows, DestinationRow{ID: d.ID, City: d.City, Airport: d.Airport})
	}
	return rows
}

func PilotRows(items []models.Pilot) []PilotRow {
	rows := make([]PilotRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, PilotRow{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			UPRN:        p.UPRN,
			FlyingHours: p.FlyingHours,
		})
	}
	return rows
}

func TravelClassRows(items []models.TravelClass) []TravelClassRow {
	rows := make([]TravelClassRow, 0, len(items))
	for _, tc := range items {
		rows = append(rows, TravelClassRow{ID: tc.ID, Type: tc.Type})
	}
	return rows
}

func FlightRows(items []models.FlightDetail) []FlightRow {
	rows := make([]FlightRow, 0, len(items))
	for _, f := range items {
		rows = append(rows, FlightRow{
			ID:            f.ID,
			DepartureDate: f.DepartureDate,
			DepartureTime: f.DepartureTime,
			Airline:       f.AirlineName,
			Destination:   f.DestinationName,
			Pilot:         f.PilotName,
		})
	}
	return rows
}

func PassengerRows(items []models.Passenger) []PassengerRow {
	rows := make([]PassengerRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, PassengerRow{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			UPRN:        p.UPRN,
			Passport:    p.Passport,
			Nationality: p.Nationality,
			Address:     p.Address,
		})
	}
	return rows
}

func TicketRows(items []models.Ticket) []TicketRow {
	rows := make([]TicketRow, 0, len(items))
	for _, tk := range items {
		rows = append(rows, TicketRow{
			ID:            tk.ID,
			Price:         tk.Price,
			PurchaseDate:  tk.PurchaseDate,
			SeatNumber:    tk.SeatNumber,
			PassengerID:   tk.PassengerID,
			TravelClassID: tk.TravelClassID,
			FlightID:      tk.FlightID,
		})
	}
	return rows
}
