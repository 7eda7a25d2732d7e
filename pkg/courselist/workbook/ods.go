package workbook

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OpenDocument namespaces used in content.xml
const (
	nsOffice  = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsTable   = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsText    = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsCalcExt = "urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0"
)

// Sheet size limits shared with the xlsx format. Repeated rows and columns
// beyond these are dropped.
const (
	maxRows = 1048576
	maxCols = 16384
)

// ODS is an OpenDocument spreadsheet, parsed completely on open.
type ODS struct {
	names  []string
	sheets map[string][][]Cell
}

// OpenODS opens and parses an .ods file.
func OpenODS(path string) (*ODS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}

	doc, err := ReadODS(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	return doc, nil
}

// ReadODS parses an OpenDocument spreadsheet from a zip archive.
func ReadODS(r io.ReaderAt, size int64) (*ODS, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	for _, zf := range zr.File {
		if zf.Name != "content.xml" {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return parseContent(rc)
	}

	return nil, errors.New("content.xml not found")
}

// SheetNames returns the table names in document order.
func (o *ODS) SheetNames() []string {
	return o.names
}

// Sheet returns the named table.
func (o *ODS) Sheet(name string) (*Sheet, error) {
	rows, ok := o.sheets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return NewSheet(name, rows), nil
}

// Close is a no-op; the archive is released after parsing.
func (o *ODS) Close() error {
	return nil
}

// tableBuilder collects rows, deferring empty rows until a later row has data
// so trailing filler rows are never materialized.
type tableBuilder struct {
	name        string
	rows        [][]Cell
	pendingRows int
}

func (t *tableBuilder) addRow(cells []Cell, repeat int) {
	if len(cells) == 0 {
		t.pendingRows += repeat
		return
	}
	for ; t.pendingRows > 0 && len(t.rows) < maxRows; t.pendingRows-- {
		t.rows = append(t.rows, nil)
	}
	t.pendingRows = 0
	for i := 0; i < repeat && len(t.rows) < maxRows; i++ {
		t.rows = append(t.rows, cells)
	}
}

// rowBuilder does the same for cells within a row.
type rowBuilder struct {
	cells   []Cell
	pending int
	repeat  int
}

func (r *rowBuilder) addCell(c Cell, repeat int) {
	if c.IsEmpty() {
		r.pending += repeat
		return
	}
	for ; r.pending > 0 && len(r.cells) < maxCols; r.pending-- {
		r.cells = append(r.cells, Empty)
	}
	r.pending = 0
	for i := 0; i < repeat && len(r.cells) < maxCols; i++ {
		r.cells = append(r.cells, c)
	}
}

func parseContent(r io.Reader) (*ODS, error) {
	doc := &ODS{sheets: make(map[string][][]Cell)}
	dec := xml.NewDecoder(r)

	var (
		table *tableBuilder
		row   *rowBuilder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isElement(t.Name, nsTable, "table"):
				table = &tableBuilder{name: attrValue(t, nsTable, "name")}
			case table != nil && isElement(t.Name, nsTable, "table-row"):
				row = &rowBuilder{repeat: repeatCount(t, "number-rows-repeated")}
			case row != nil && (isElement(t.Name, nsTable, "table-cell") || isElement(t.Name, nsTable, "covered-table-cell")):
				cell, err := readCell(dec, t)
				if err != nil {
					return nil, err
				}
				row.addCell(cell, repeatCount(t, "number-columns-repeated"))
			}
		case xml.EndElement:
			switch {
			case row != nil && isElement(t.Name, nsTable, "table-row"):
				table.addRow(row.cells, row.repeat)
				row = nil
			case table != nil && isElement(t.Name, nsTable, "table"):
				if _, dup := doc.sheets[table.name]; !dup {
					doc.names = append(doc.names, table.name)
				}
				doc.sheets[table.name] = table.rows
				table = nil
			}
		}
	}

	return doc, nil
}

// readCell consumes a cell element up to its end tag and returns its value.
func readCell(dec *xml.Decoder, start xml.StartElement) (Cell, error) {
	var (
		text       strings.Builder
		paragraphs int
		inPara     int
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return Empty, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isElement(t.Name, nsOffice, "annotation"):
				if err := dec.Skip(); err != nil {
					return Empty, err
				}
			case isElement(t.Name, nsText, "p"), isElement(t.Name, nsText, "h"):
				if paragraphs > 0 {
					text.WriteByte('\n')
				}
				paragraphs++
				inPara++
			case isElement(t.Name, nsText, "s"):
				n := 1
				if c, err := strconv.Atoi(attrValue(t, nsText, "c")); err == nil && c > 0 {
					n = c
				}
				text.WriteString(strings.Repeat(" ", n))
			case isElement(t.Name, nsText, "tab"):
				text.WriteByte('\t')
			case isElement(t.Name, nsText, "line-break"):
				text.WriteByte('\n')
			}
		case xml.EndElement:
			switch {
			case t.Name == start.Name:
				return cellValue(start, text.String()), nil
			case isElement(t.Name, nsText, "p"), isElement(t.Name, nsText, "h"):
				inPara--
			}
		case xml.CharData:
			if inPara > 0 {
				text.Write(t)
			}
		}
	}
}

// cellValue maps the office:value-type of a cell to a typed Cell.
func cellValue(start xml.StartElement, text string) Cell {
	if attrValue(start, nsCalcExt, "value-type") == "error" {
		return ErrorCell(text)
	}

	switch attrValue(start, nsOffice, "value-type") {
	case "float", "percentage", "currency":
		if f, err := strconv.ParseFloat(attrValue(start, nsOffice, "value"), 64); err == nil {
			return NumberCell(f)
		}
		return StringCell(text)
	case "boolean":
		return BoolCell(attrValue(start, nsOffice, "boolean-value") == "true")
	case "date":
		return StringCell(attrValue(start, nsOffice, "date-value"))
	case "time":
		return StringCell(attrValue(start, nsOffice, "time-value"))
	case "string":
		if v, ok := lookupAttr(start, nsOffice, "string-value"); ok {
			return StringCell(v)
		}
		return StringCell(text)
	default:
		return Empty
	}
}

func isElement(name xml.Name, space, local string) bool {
	return name.Space == space && name.Local == local
}

func lookupAttr(el xml.StartElement, space, local string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func attrValue(el xml.StartElement, space, local string) string {
	v, _ := lookupAttr(el, space, local)
	return v
}

func repeatCount(el xml.StartElement, local string) int {
	n, err := strconv.Atoi(attrValue(el, nsTable, local))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
