package models

// Sheet represents one worksheet with metadata and its retained rows.
type Sheet struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Rows is the number of retained (non-empty) rows.
	Rows int `json:"rows" yaml:"rows"`
	// Columns is the width of the first retained row, or 0 without rows.
	// Later rows may be wider or narrower; they are not reconciled.
	Columns int `json:"columns" yaml:"columns"`
	// Data contains the retained rows in sheet order.
	Data []Row `json:"data" yaml:"data"`
	// Range is the A1-style bounding box of non-empty cells (e.g. "A1:E5").
	Range string `json:"range,omitempty" yaml:"range,omitempty"`
}

// NewSheet builds a Sheet from its retained rows.
func NewSheet(name string, data []Row) Sheet {
	if data == nil {
		data = []Row{}
	}
	columns := 0
	if len(data) > 0 {
		columns = len(data[0])
	}
	return Sheet{
		Name:    name,
		Rows:    len(data),
		Columns: columns,
		Data:    data,
	}
}
