package models

// Page is one sheet's worth of records, as a half-open range over the
// exported collection.
type Page struct {
	// Index is the 0-based sheet index.
	Index int `json:"index"`
	// From is the first record index (inclusive).
	From int `json:"from"`
	// To is the last record index (exclusive).
	To int `json:"to"`
	// RowOffset is the sheet row receiving the first record.
	RowOffset int `json:"row_offset"`
}

// Len returns the number of records on the page.
func (p Page) Len() int {
	return p.To - p.From
}
