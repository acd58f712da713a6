package export

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"

	"github.com/phpdave11/gofpdf"
)

// DocumentContentType is the MIME type for generated PDF reports.
const DocumentContentType = "application/pdf"

// ToDocument renders records as a tabular PDF report. The layout differs per
// entity (flights print joined airline/destination/pilot names, tickets show
// prices right-aligned, and so on), so dispatch is over a closed set of row
// types rather than field reflection. Unknown types are rejected.
func ToDocument(title string, records any) ([]byte, error) {
	if emptyCollection(records) {
		return nil, ErrNoData
	}

	switch rows := records.(type) {
	case []AirlineRow:
		return renderTable(title, "P",
			[]string{"ID", "Name"},
			[]float64{20, 150},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{itoa(r.ID), r.Name})
				}
				return out
			}())
	case []DestinationRow:
		return renderTable(title, "P",
			[]string{"ID", "City", "Airport"},
			[]float64{20, 70, 100},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{itoa(r.ID), r.City, r.Airport})
				}
				return out
			}())
	case []PilotRow:
		return renderTable(title, "P",
			[]string{"ID", "First Name", "Last Name", "UPRN", "Flying Hours"},
			[]float64{15, 45, 45, 50, 35},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{
						itoa(r.ID), r.FirstName, r.LastName, r.UPRN,
						strconv.Itoa(r.FlyingHours),
					})
				}
				return out
			}())
	case []TravelClassRow:
		return renderTable(title, "P",
			[]string{"ID", "Type"},
			[]float64{20, 150},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{itoa(r.ID), r.Type})
				}
				return out
			}())
	case []FlightRow:
		return renderTable(title, "L",
			[]string{"ID", "Departure Date", "Departure Time", "Airline", "Destination", "Pilot"},
			[]float64{15, 40, 40, 60, 60, 60},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{
						itoa(r.ID), r.DepartureDate, r.DepartureTime,
						r.Airline, r.Destination, r.Pilot,
					})
				}
				return out
			}())
	case []PassengerRow:
		return renderTable(title, "L",
			[]string{"ID", "First Name", "Last Name", "UPRN", "Passport", "Nationality", "Address"},
			[]float64{15, 35, 35, 40, 40, 35, 75},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{
						itoa(r.ID), r.FirstName, r.LastName, r.UPRN,
						r.Passport, r.Nationality, r.Address,
					})
				}
				return out
			}())
	case []TicketRow:
		return renderTable(title, "L",
			[]string{"ID", "Price", "Purchase Date", "Seat", "Passenger ID", "Class ID", "Flight ID"},
			[]float64{15, 35, 45, 25, 40, 35, 35},
			func() [][]string {
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{
						itoa(r.ID),
						strconv.FormatFloat(r.Price, 'f', 2, 64),
						r.PurchaseDate,
						strconv.Itoa(r.SeatNumber),
						itoa(r.PassengerID), itoa(r.TravelClassID), itoa(r.FlightID),
					})
				}
				return out
			}())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, records)
	}
}

func renderTable(title, orientation string, headers []string, widths []float64, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func emptyCollection(records any) bool {
	if records == nil {
		return true
	}
	v := reflect.ValueOf(records)
	return v.Kind() == reflect.Slice && v.Len() == 0
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
