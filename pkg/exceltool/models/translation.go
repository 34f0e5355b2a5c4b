package models

// TranslationTable maps an export column position to a lookup table from
// the raw value's string form to the display value written to the sheet.
type TranslationTable map[int]map[string]string

// Lookup returns the display value for raw in column col.
func (t TranslationTable) Lookup(col int, raw string) (string, bool) {
	if t == nil {
		return "", false
	}
	m, ok := t[col]
	if !ok {
		return "", false
	}
	v, ok := m[raw]
	return v, ok
}
