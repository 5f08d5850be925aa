package processor

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook holds every parsed sheet of an upload, in workbook order.
type Workbook struct {
	Names   []string
	Sheets  map[string][]Row
	Columns map[string][]string
}

func newWorkbook() *Workbook {
	return &Workbook{
		Sheets:  make(map[string][]Row),
		Columns: make(map[string][]string),
	}
}

func (w *Workbook) add(name string, columns []string, rows []Row) {
	if _, exists := w.Sheets[name]; !exists {
		w.Names = append(w.Names, name)
	}
	if rows == nil {
		rows = []Row{}
	}
	w.Sheets[name] = rows
	w.Columns[name] = columns
}

// Has reports whether the workbook contains a sheet called name.
func (w *Workbook) Has(name string) bool {
	if w == nil || name == "" {
		return false
	}
	_, ok := w.Sheets[name]
	return ok
}

// unzipExpansion bounds how far an upload may inflate past its compressed size.
const unzipExpansion = 40

// UnzipLimit is the decompressed workbook size allowed for an upload of at
// most maxUpload bytes.
func UnzipLimit(maxUpload int64) int64 {
	return maxUpload * unzipExpansion
}

// ParseWorkbook reads an .xlsx stream. The first row of each sheet is the
// header; blank cells become "" and boolean cells become bool. A positive
// unzipLimit caps the total decompressed size of the archive.
func ParseWorkbook(r io.Reader, unzipLimit int64) (*Workbook, error) {
	var opts []excelize.Options
	if unzipLimit > 0 {
		opts = append(opts, excelize.Options{
			UnzipSizeLimit:    unzipLimit,
			UnzipXMLSizeLimit: min(unzipLimit, excelize.StreamChunkSize),
		})
	}

	f, err := excelize.OpenReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	wb := newWorkbook()
	for _, name := range f.GetSheetList() {
		cells, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		headers, rows := toRows(cells, func(col, row int, value string) any {
			if value != "TRUE" && value != "FALSE" {
				return value
			}
			ref, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return value
			}
			if typ, err := f.GetCellType(name, ref); err == nil && typ == excelize.CellTypeBool {
				return value == "TRUE"
			}
			return value
		})
		wb.add(name, headers, rows)
	}
	if len(wb.Names) == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	return wb, nil
}

// toRows converts a sheet grid into header-keyed rows. convert sees the
// zero-based column and grid row of every non-header cell.
func toRows(grid [][]string, convert func(col, row int, value string) any) ([]string, []Row) {
	if len(grid) == 0 {
		return []string{}, []Row{}
	}
	headers := headerNames(grid[0])
	rows := make([]Row, 0, len(grid)-1)
	for i := 1; i < len(grid); i++ {
		cells := grid[i]
		blank := true
		row := make(Row, len(headers))
		for col, header := range headers {
			if col >= len(cells) || cells[col] == "" {
				row[header] = ""
				continue
			}
			blank = false
			row[header] = convert(col, i, cells[col])
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return headers, rows
}

// headerNames trims headers and names empty or repeated ones positionally.
func headerNames(raw []string) []string {
	seen := make(map[string]int, len(raw))
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "__EMPTY"
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = h + "_" + strconv.Itoa(n+1)
		} else {
			seen[h] = 0
		}
		headers[i] = h
	}
	return headers
}

type jsonWorkbook struct {
	Sheets map[string][]Row `json:"sheets"`
	Order  []string         `json:"order"`
}

// DecodeWorkbookJSON reads {"sheets": {name: [row, ...]}, "order": [...]}.
// Without an order, sheets are sorted by name.
func DecodeWorkbookJSON(r io.Reader) (*Workbook, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload jsonWorkbook
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	if len(payload.Sheets) == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	names := make([]string, 0, len(payload.Sheets))
	listed := make(map[string]bool, len(payload.Order))
	for _, name := range payload.Order {
		if _, ok := payload.Sheets[name]; ok && !listed[name] {
			names = append(names, name)
			listed[name] = true
		}
	}
	var rest []string
	for name := range payload.Sheets {
		if !listed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	wb := newWorkbook()
	for _, name := range names {
		rows := payload.Sheets[name]
		wb.add(name, jsonColumns(rows), rows)
	}
	return wb, nil
}

func jsonColumns(rows []Row) []string {
	if len(rows) == 0 {
		return []string{}
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}
