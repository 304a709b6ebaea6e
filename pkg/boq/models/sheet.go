package models

// Sheet represents the first worksheet of an input workbook.
type Sheet struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// Rows contains the cell text of every row, including empty ones.
	Rows RawGrid `json:"rows"`
}
