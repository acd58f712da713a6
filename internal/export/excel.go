package export

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetContentType is the MIME type for generated .xlsx files.
const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ToSpreadsheet renders records as a single-sheet workbook. The header row
// lists the exported field names of T in declaration order; each following
// row holds the stringified fields of one record, in input order.
func ToSpreadsheet[T any](sheetName string, records []T) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var zero T
	sch, err := schemaFor(reflect.TypeOf(zero))
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, col := range sch.columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return nil, err
		}
	}

	for r, rec := range records {
		rv := reflect.ValueOf(rec)
		for i, col := range sch.columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, formatValue(rv.Field(col.index))); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
