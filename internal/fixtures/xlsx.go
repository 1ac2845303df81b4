package fixtures

import (
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// SampleWorkbook describes the showcase workbook: sheet names in order and
// the rows written to each, starting at A1.
var SampleWorkbook = []struct {
	Name string
	Rows [][]interface{}
}{
	{
		Name: "Employees",
		Rows: [][]interface{}{
			{"ID", "Name", "Department", "Salary", "Start Date"},
			{1, "Alice Smith", "Engineering", 95000, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
			{2, "Bob Johnson", "Marketing", 72000, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)},
			{3, "Carol White", "Engineering", 105000, time.Date(2018, 3, 20, 0, 0, 0, 0, time.UTC)},
			{4, "David Brown", "Sales", 68000, time.Date(2021, 9, 10, 0, 0, 0, 0, time.UTC)},
		},
	},
	{
		Name: "Projects",
		Rows: [][]interface{}{
			{"Project", "Lead", "Status", "Budget"},
			{"Apollo", "Alice Smith", "Active", 250000},
			{"Hermes", "Bob Johnson", "Planning", 80000},
			{"Zeus", "Carol White", "Completed", 410000.5},
		},
	},
	{
		Name: "Summary",
		Rows: [][]interface{}{
			{"Metric", "Value"},
			{"Total Employees", 4},
			{"Active Projects", 1},
			{"Total Budget", 740000.5},
		},
	},
}

// WriteSampleWorkbook saves SampleWorkbook to dir/name and returns the path.
func WriteSampleWorkbook(dir, name string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range SampleWorkbook {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return "", err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return "", err
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return "", err
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return "", err
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
