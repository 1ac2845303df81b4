package docreader

import (
	"github.com/ukaji3/docreader-go/pkg/docreader/models"
	"github.com/ukaji3/docreader-go/pkg/docreader/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadXLSX extracts the retained rows of every sheet using default options.
func ReadXLSX(path string) (*models.SheetMap, error) {
	return New(DefaultOptions()).ReadXLSX(path)
}

// ExtractSheets extracts every sheet with metadata using default options.
func ExtractSheets(path string) ([]models.Sheet, error) {
	return New(DefaultOptions()).ExtractSheets(path)
}

// ReadXLSX returns sheet name to retained rows, in sheet declaration order.
func (e *Extractor) ReadXLSX(path string) (*models.SheetMap, error) {
	sheets, err := e.ExtractSheets(path)
	if err != nil {
		return nil, err
	}

	result := models.NewSheetMap()
	for _, s := range sheets {
		result.Set(s.Name, s.Data)
	}
	return result, nil
}

// ExtractSheets returns one Sheet per worksheet in declaration order.
func (e *Extractor) ExtractSheets(path string) ([]models.Sheet, error) {
	if err := checkExists(FormatExcel, path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path, excelize.Options{Password: e.opts.Password})
	if err != nil {
		return nil, NewExtractionError(FormatExcel, path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make([]models.Sheet, 0, len(sheetList))
	for _, sheetName := range sheetList {
		rows, err := parser.ExtractRows(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(FormatExcel, path, err)
		}

		sheet := models.NewSheet(sheetName, rows.Rows)
		sheet.Range = rows.Range
		sheets = append(sheets, sheet)

		e.log.Debug("extracted sheet",
			zap.String("path", path),
			zap.String("sheet", sheetName),
			zap.Int("rows", sheet.Rows),
			zap.Int("columns", sheet.Columns))
	}
	return sheets, nil
}
