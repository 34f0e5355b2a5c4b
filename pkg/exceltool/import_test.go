package exceltool

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingEric/exceltool/pkg/exceltool/document"
	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
)

// sheetWith builds a one-sheet workbook holding rows of text from the
// first data row on.
func sheetWith(t *testing.T, rows ...[]string) *document.Workbook {
	t.Helper()
	wb := document.New("")
	t.Cleanup(func() { wb.Close() })
	_, err := wb.NewSheet()
	require.NoError(t, err)
	for i, texts := range rows {
		row := models.Row{Index: 2 + i, Cells: make([]models.CellValue, len(texts))}
		for j, s := range texts {
			row.Cells[j] = models.Text(s)
		}
		require.NoError(t, wb.SetRow(0, row))
	}
	return wb
}

func TestRoundTrip(t *testing.T) {
	s := personSchema(t)
	records := []person{{"Ann", 20}, {"007", -3}, {"", 0}, {"Zoë, Jr.", 1 << 40}}

	var buf bytes.Buffer
	require.NoError(t, ExportWrite(&buf, records, s, quietOptions()))

	got, err := ImportReader(&buf, 0, s, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRoundTripBlankRecord(t *testing.T) {
	type note struct {
		Name string
		Note string
	}
	s, err := schema.Build(schema.Definition[note]{
		Export: true,
		Fields: []schema.Field[note]{
			schema.Bind(func(n *note) *string { return &n.Name }).Export("name").ImportAt(0),
			schema.Bind(func(n *note) *string { return &n.Note }).Export("note").ImportAt(1),
		},
	})
	require.NoError(t, err)
	records := []note{{"Ann", "a"}, {"", ""}, {"Cy", "c"}}

	var buf bytes.Buffer
	require.NoError(t, ExportWrite(&buf, records, s, quietOptions()))

	got, err := ImportReader(&buf, 0, s, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRoundTripFile(t *testing.T) {
	s := personSchema(t)
	records := []person{{"Ann", 20}, {"Bo", 19}, {"Cy", 21}}
	opts := quietOptions()
	opts.PageCapacity = 2

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, ExportFile(path, records, s, opts))

	first, err := ImportFile(path, 0, s, opts)
	require.NoError(t, err)
	assert.Equal(t, records[:2], first)

	second, err := ImportFile(path, 1, s, opts)
	require.NoError(t, err)
	assert.Equal(t, records[2:], second)
}

func TestImportMissingCells(t *testing.T) {
	wb := sheetWith(t, []string{"Ann"}, []string{"Bo", "19"})

	got, err := Import(wb, 0, personSchema(t), quietOptions())
	require.NoError(t, err)
	assert.Equal(t, []person{{"Ann", 0}, {"Bo", 19}}, got)
}

func TestImportFailFast(t *testing.T) {
	wb := sheetWith(t, []string{"Ann", "20"}, []string{"Bo", "abc"}, []string{"Cy", "21"})

	_, err := Import(wb, 0, personSchema(t), quietOptions())
	var rowErr *RowDecodeError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Row)
	assert.Equal(t, 1, rowErr.Column)
	assert.Equal(t, "abc", rowErr.Raw)

	var coercionErr *CoercionError
	assert.ErrorAs(t, err, &coercionErr)
}

func TestImportSkipInvalid(t *testing.T) {
	wb := sheetWith(t, []string{"Ann", "20"}, []string{"Bo", "abc"}, []string{"Cy", "21"})

	var skipped []error
	opts := quietOptions()
	opts.Policy = SkipInvalid
	opts.OnSkip = func(err error) { skipped = append(skipped, err) }

	got, err := Import(wb, 0, personSchema(t), opts)
	require.NoError(t, err)
	assert.Equal(t, []person{{"Ann", 20}, {"Cy", 21}}, got)
	require.Len(t, skipped, 1)
	assert.ErrorAs(t, skipped[0], new(*RowDecodeError))
}

func TestImportStopsAtAbsentRow(t *testing.T) {
	wb := sheetWith(t, []string{"Ann", "20"})
	require.NoError(t, wb.SetRow(0, models.Row{Index: 5, Cells: []models.CellValue{models.Text("Late")}}))

	got, err := Import(wb, 0, personSchema(t), quietOptions())
	require.NoError(t, err)
	assert.Equal(t, []person{{"Ann", 20}}, got)
}

func TestImportUnconstructible(t *testing.T) {
	type shape interface{ Area() float64 }
	s, err := schema.Build(schema.Definition[shape]{})
	require.NoError(t, err)

	_, err = Import(sheetWith(t), 0, s, quietOptions())
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.ErrorIs(t, err, schema.ErrNotConstructible)
}

func TestImportSheetNotFound(t *testing.T) {
	_, err := Import(sheetWith(t), 3, personSchema(t), quietOptions())
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestImportFileNotFound(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "missing.xlsx"), 0, personSchema(t), quietOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestImportReaderInvalid(t *testing.T) {
	_, err := ImportReader(bytes.NewReader([]byte("not a workbook")), 0, personSchema(t), quietOptions())
	var ioErr *DocumentIOError
	assert.ErrorAs(t, err, &ioErr)
}
