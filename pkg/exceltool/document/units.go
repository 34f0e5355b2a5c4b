package document

// widthUnitScale converts a width hint to 1/256 character units.
const widthUnitScale = 20

// maxColumnWidth is the widest column a sheet accepts, in characters.
const maxColumnWidth = 255

// WidthToChars converts a width hint to a column width in characters.
// A hint of 100 yields a little under eight characters.
func WidthToChars(units int) float64 {
	w := float64(units*widthUnitScale) / 256
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	if w < 0 {
		return 0
	}
	return w
}
