package models

// ValidationDescriptor describes a dropdown constraint on one column.
type ValidationDescriptor struct {
	// Column is the 0-based column index.
	Column int `json:"column"`
	// AllowedValues is the ordered, distinct set of permitted values.
	AllowedValues []string `json:"allowed_values"`
	// RowFrom is the first constrained row (0-based, inclusive).
	RowFrom int `json:"row_from"`
	// RowTo is the last constrained row (0-based, inclusive).
	RowTo int `json:"row_to"`
}
