package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/docreader-go/pkg/docreader/models"
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// SheetRows holds the retained rows of one sheet.
type SheetRows struct {
	// Rows contains rows with at least one non-empty cell, in sheet order.
	Rows []models.Row
	// Range is the A1-style bounding box of the non-empty cells, or "".
	Range string
}

// ExtractRows reads a sheet and returns its non-empty rows as typed values.
// Formula cells yield their cached result. Every row is padded with empty
// values to the sheet's used width, so gaps and trailing blanks keep their
// column positions.
func ExtractRows(f *excelize.File, sheetName string) (*SheetRows, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	result := &SheetRows{Rows: []models.Row{}}
	var b bounds
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		values := make(models.Row, width)
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := cellValue(f, sheetName, cellName, raw, date1904)
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
			b.add(rowNum, colIdx+1)
		}

		if values.IsEmpty() {
			continue
		}
		result.Rows = append(result.Rows, values)
	}

	result.Range, err = b.rangeRef()
	if err != nil {
		return nil, err
	}
	return result, nil
}

// cellValue converts the raw stored value of a cell into a typed value.
func cellValue(f *excelize.File, sheetName, cellName, raw string, date1904 bool) (models.Value, error) {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Value{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.String(raw), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return models.Timestamp(t), nil
		}
		if t, err := time.Parse("2006-01-02T15:04:05.999999999", raw); err == nil {
			return models.Timestamp(t), nil
		}
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.String(raw), nil
	}

	dated := cellType == excelize.CellTypeDate
	if !dated {
		if dated, err = isDateFormatted(f, sheetName, cellName); err != nil {
			return models.Value{}, err
		}
	}
	if dated {
		if t, err := excelize.ExcelDateToTime(n, date1904); err == nil {
			return models.Timestamp(t), nil
		}
	}
	return models.Number(n), nil
}

// builtInDateFormats lists the built-in number format IDs that render dates
// or times, including the East Asian locale variants.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormatted reports whether the cell style applies a date or time format.
func isDateFormatted(f *excelize.File, sheetName, cellName string) (bool, error) {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false, err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	if builtInDateFormats[style.NumFmt] {
		return true, nil
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt), nil
	}
	return false, nil
}

// isDateFormatCode reports whether a custom number format renders a date
// or time. Only the first (positive) section is inspected.
func isDateFormatCode(code string) bool {
	p := nfp.NumberFormatParser()
	sections := p.Parse(code)
	if len(sections) == 0 {
		return false
	}
	for _, token := range sections[0].Items {
		if token.TType == nfp.TokenTypeDateTimes || token.TType == nfp.TokenTypeElapsedDateTimes {
			return true
		}
	}
	return false
}
