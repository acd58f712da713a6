package models

// Master data entities managed by the admin console. Dates and times are
// kept as strings in the wire formats MySQL returns them in ("2006-01-02",
// "15:04"), matching the column types.

type Airline struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Destination struct {
	ID      int64  `json:"id"`
	City    string `json:"city"`
	Airport string `json:"airport"`
}

type Pilot struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UPRN        string `json:"uprn"`
	FlyingHours int    `json:"flyingHours"`
}

type TravelClass struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type Flight struct {
	ID            int64  `json:"id"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	AirlineID     int64  `json:"airlineId"`
	DestinationID int64  `json:"destinationId"`
	PilotID       int64  `json:"pilotId"`
}

// FlightDetail carries the joined display names needed by the PDF export.
type FlightDetail struct {
	Flight
	AirlineName     string `json:"airlineName"`
	DestinationName string `json:"destinationName"`
	PilotName       string `json:"pilotName"`
}

type Passenger struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UPRN        string `json:"uprn"`
	Passport    string `json:"passport"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}

type Ticket struct {
	ID            int64   `json:"id"`
	Price         float64 `json:"price"`
	PurchaseDate  string  `json:"purchaseDate"`
	SeatNumber    int     `json:"seatNumber"`
	PassengerID   int64   `json:"passengerId"`
	TravelClassID int64   `json:"travelClassId"`
	FlightID      int64   `json:"flightId"`
}

type ApiUser struct {
	ID           int64  `json:"apiUserId"`
	UserName     string `json:"userName"`
	PasswordHash string `json:"-"`
	Role         string `json:"roles"`
}
