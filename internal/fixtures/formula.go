package fixtures

import (
	"archive/zip"
	"os"
	"path/filepath"
)

// formulaWorkbookParts is a one-sheet workbook ("Calc") whose formula cells
// carry cached results: A1=2, B1=3, C1=A1*B1 (6), D1 a string formula
// ("total: 6") and E1 a boolean formula (TRUE). excelize does not write
// cached values for formulas, so the parts are spelled out directly.
var formulaWorkbookParts = []struct {
	name string
	body string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`},
	{"xl/workbook.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="Calc" sheetId="1" r:id="rId1"/></sheets>
</workbook>`},
	{"xl/_rels/workbook.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`},
	{"xl/worksheets/sheet1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData>
<row r="1">
<c r="A1"><v>2</v></c>
<c r="B1"><v>3</v></c>
<c r="C1"><f>A1*B1</f><v>6</v></c>
<c r="D1" t="str"><f>"total: "&amp;C1</f><v>total: 6</v></c>
<c r="E1" t="b"><f>C1&gt;5</f><v>1</v></c>
</row>
</sheetData>
</worksheet>`},
}

// WriteFormulaWorkbook saves the formula workbook to dir/name and returns the path.
func WriteFormulaWorkbook(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, part := range formulaWorkbookParts {
		w, err := zw.Create(part.name)
		if err != nil {
			return "", err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return "", err
		}
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return path, out.Close()
}
