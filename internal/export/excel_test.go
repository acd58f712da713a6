package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sampleItem struct {
	Id       int64
	Name     string
	IsActive bool
}

func TestToSpreadsheetRejectsEmptyInput(t *testing.T) {
	_, err := ToSpreadsheet[sampleItem]("Items", nil)
	require.ErrorIs(t, err, ErrNoData)
	require.EqualError(t, err, "No data to export.")

	_, err = ToSpreadsheet("Items", []sampleItem{})
	require.ErrorIs(t, err, ErrNoData)
}

func TestToSpreadsheetWritesHeaderAndRows(t *testing.T) {
	data, err := ToSpreadsheet("Items", []sampleItem{
		{Id: 1, Name: "Item A", IsActive: true},
		{Id: 2, Name: "Item B", IsActive: false},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{"Items"}, f.GetSheetList())

	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Id", "Name", "IsActive"}, rows[0])
	require.Equal(t, []string{"1", "Item A", "True"}, rows[1])
	require.Equal(t, []string{"2", "Item B", "False"}, rows[2])
}

func TestToSpreadsheetKeepsInputOrder(t *testing.T) {
	records := []AirlineRow{
		{ID: 9, Name: "Zephyr Air"},
		{ID: 1, Name: "Aurora Wings"},
		{ID: 5, Name: "Meridian"},
	}
	data, err := ToSpreadsheet("Airlines", records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Airlines")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "Zephyr Air", rows[1][1])
	require.Equal(t, "Aurora Wings", rows[2][1])
	require.Equal(t, "Meridian", rows[3][1])
}
