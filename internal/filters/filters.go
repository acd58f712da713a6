package filters

// Per-entity search filters. Every field is optional; nil (or, for strings,
// empty after binding) means the criterion is absent. Endpoints that accept
// a filter object must reject an empty one before querying.

// MsgEmptyFilter is the plain-text body returned when a filter-object
// endpoint receives no criteria at all.
const MsgEmptyFilter = "At least one filter criterion must be provided."

type AirlineSearchFilter struct {
	Name *string `form:"name"`
}

func (f AirlineSearchFilter) IsEmpty() bool {
	return !hasString(f.Name)
}

type DestinationSearchFilter struct {
	City    *string `form:"city"`
	Airport *string `form:"airport"`
}

func (f DestinationSearchFilter) IsEmpty() bool {
	return !hasString(f.City) && !hasString(f.Airport)
}

type PilotSearchFilter struct {
	FirstName      *string `form:"firstName"`
	LastName       *string `form:"lastName"`
	UPRN           *string `form:"uprn"`
	FlyingHoursMin *int    `form:"flyingHoursMin"`
	FlyingHoursMax *int    `form:"flyingHoursMax"`
}

func (f PilotSearchFilter) IsEmpty() bool {
	return !hasString(f.FirstName) && !hasString(f.LastName) && !hasString(f.UPRN) &&
		f.FlyingHoursMin == nil && f.FlyingHoursMax == nil
}

type TravelClassSearchFilter struct {
	Type *string `form:"type"`
}

func (f TravelClassSearchFilter) IsEmpty() bool {
	return !hasString(f.Type)
}

type FlightSearchFilter struct {
	StartDate     *string `form:"startDate"`
	EndDate       *string `form:"endDate"`
	AirlineID     *int64  `form:"airlineId"`
	DestinationID *int64  `form:"destinationId"`
	PilotID       *int64  `form:"pilotId"`
}

func (f FlightSearchFilter) IsEmpty() bool {
	return !hasString(f.StartDate) && !hasString(f.EndDate) &&
		f.AirlineID == nil && f.DestinationID == nil && f.PilotID == nil
}

type PassengerSearchFilter struct {
	FirstName   *string `form:"firstName"`
	LastName    *string `form:"lastName"`
	UPRN        *string `form:"uprn"`
	Passport    *string `form:"passport"`
	Nationality *string `form:"nationality"`
	Address     *string `form:"address"`
}

func (f PassengerSearchFilter) IsEmpty() bool {
	return !hasString(f.FirstName) && !hasString(f.LastName) && !hasString(f.UPRN) &&
		!hasString(f.Passport) && !hasString(f.Nationality) && !hasString(f.Address)
}

type TicketSearchFilter struct {
	MinPrice     *float64 `form:"minPrice"`
	MaxPrice     *float64 `form:"maxPrice"`
	PurchaseDate *string  `form:"purchaseDate"`
	SeatNumber   *int     `form:"seatNumber"`
}

func (f TicketSearchFilter) IsEmpty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil &&
		!hasString(f.PurchaseDate) && f.SeatNumber == nil
}

type ApiUserSearchFilter struct {
	UserName *string `form:"userName"`
	Role     *string `form:"role"`
}

func (f ApiUserSearchFilter) IsEmpty() bool {
	return !hasString(f.UserName) && !hasString(f.Role)
}

// hasString treats a nil pointer and an empty string the same way: absent.
func hasString(s *string) bool {
	return s != nil && *s != ""
}
