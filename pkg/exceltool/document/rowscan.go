package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// presentRows returns, for the given sheet, the 0-based indexes of every
// row element stored in the sheet. A row that holds only empty cells is
// still present; excelize drops it from GetRows.
func (w *Workbook) presentRows(sheet int) (map[int]struct{}, error) {
	name, err := w.SheetName(sheet)
	if err != nil {
		return nil, err
	}
	if w.present == nil {
		if w.present, err = w.scanRows(); err != nil {
			return nil, err
		}
	}
	return w.present[name], nil
}

// scanRows serializes the workbook and lists the row elements of every
// worksheet, keyed by sheet name.
func (w *Workbook) scanRows() (map[string]map[int]struct{}, error) {
	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, &IOError{Op: "scan", Err: err}
	}
	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, &IOError{Op: "scan", Err: err}
	}

	wbXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return nil, &IOError{Op: "scan", Err: err}
	}
	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, &IOError{Op: "scan", Err: err}
	}

	out := make(map[string]map[int]struct{})
	for name, path := range worksheetPaths(wbXML, relsXML) {
		data, err := readZipFile(r, path)
		if err != nil {
			return nil, &IOError{Op: "scan", Path: path, Err: err}
		}
		rows, err := rowIndexes(data)
		if err != nil {
			return nil, &IOError{Op: "scan", Path: path, Err: err}
		}
		out[name] = rows
	}
	return out, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s: not in package", name)
}

// worksheetPaths maps sheet names to worksheet part paths using the
// workbook and its relationships.
func worksheetPaths(wbXML, relsXML []byte) map[string]string {
	ids := make(map[string]string) // rId -> sheet name
	forEachElement(wbXML, "sheet", func(se xml.StartElement) {
		var name, id string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				id = attr.Value
			}
		}
		if name != "" && id != "" {
			ids[id] = name
		}
	})

	paths := make(map[string]string)
	forEachElement(relsXML, "Relationship", func(se xml.StartElement) {
		var id, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				id = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		if name, ok := ids[id]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
			paths[name] = partPath(target)
		}
	})
	return paths
}

// partPath resolves a relationship target relative to xl/.
func partPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	for strings.HasPrefix(target, "../") {
		target = strings.TrimPrefix(target, "../")
	}
	return "xl/" + target
}

func forEachElement(data []byte, local string, fn func(xml.StartElement)) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == local {
			fn(se)
		}
	}
}

// rowIndexes lists the 0-based index of every row element in a worksheet.
// Rows without an r attribute follow the previous row.
func rowIndexes(data []byte) (map[int]struct{}, error) {
	rows := make(map[int]struct{})
	decoder := xml.NewDecoder(bytes.NewReader(data))
	last := 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "row" {
			continue
		}
		num := last + 1
		for _, attr := range se.Attr {
			if attr.Name.Local == "r" {
				if n, err := strconv.Atoi(attr.Value); err == nil && n > 0 {
					num = n
				}
			}
		}
		rows[num-1] = struct{}{}
		last = num
	}
}
