package export

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDocumentRejectsEmptyInput(t *testing.T) {
	_, err := ToDocument("Flights", nil)
	require.ErrorIs(t, err, ErrNoData)

	_, err = ToDocument("Flights", []FlightRow{})
	require.ErrorIs(t, err, ErrNoData)
}

func TestToDocumentRejectsUnknownRecordType(t *testing.T) {
	type mysteryRow struct{ X int }

	_, err := ToDocument("Mystery", []mysteryRow{{X: 1}})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestToDocumentRendersFlightReport(t *testing.T) {
	rows := []FlightRow{
		{ID: 1, DepartureDate: "2024-05-01", DepartureTime: "08:30", Airline: "Aurora Wings", Destination: "London (LHR)", Pilot: "Ada Novak"},
		{ID: 2, DepartureDate: "2024-05-02", DepartureTime: "12:15", Airline: "Meridian", Destination: "Oslo (OSL)", Pilot: "Jon Berg"},
	}

	data, err := ToDocument("Flights", rows)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}

func TestExportersAreSafeForConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			rows := []AirlineRow{{ID: int64(n), Name: "Airline"}}
			if _, err := ToSpreadsheet("Airlines", rows); err != nil {
				t.Errorf("spreadsheet export failed: %v", err)
			}
			if _, err := ToDocument("Airlines", rows); err != nil {
				t.Errorf("document export failed: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
