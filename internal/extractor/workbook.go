package extractor

import (
	"bytes"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"docqa/internal/domain"
)

func extractXLSX(data []byte) (*domain.ExtractedContent, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonUnparsableSpreadsheet, Err: err}
	}
	defer func() { _ = f.Close() }()

	tables := &domain.TableSet{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &domain.ExtractionError{Reason: domain.ReasonUnparsableSpreadsheet, Err: err}
		}
		tables.Sheets = append(tables.Sheets, domain.Sheet{Name: name, Rows: rectangularize(rows)})
	}

	return domain.NewTableContent(tables), nil
}

func extractXLS(data []byte) (*domain.ExtractedContent, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil || wb == nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonUnparsableSpreadsheet, Err: err}
	}

	tables := &domain.TableSet{}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, []string{})
				continue
			}
			var cells []string
			for c := 0; c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		tables.Sheets = append(tables.Sheets, domain.Sheet{Name: sheet.Name, Rows: rectangularize(rows)})
	}

	return domain.NewTableContent(tables), nil
}

// rectangularize pads ragged rows with empty strings so every row in a sheet
// has the same number of columns. Rows stay positional; no header row is
// interpreted.
func rectangularize(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	grid := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		grid[i] = padded
	}
	return grid
}
