// Package workbook is the external storage boundary of the reconciler: a
// YAML-backed workbook holding the three input sheets (HR feed, insurer
// feed, Genome active roster) and the three output collections (add, edit,
// offboard). It stands in for the hosted spreadsheet the production workflow
// reads and rewrites; the engine itself never touches storage.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/endorecon/pkg/constants"
	"github.com/agentstation/endorecon/pkg/errors"
	"github.com/agentstation/endorecon/pkg/records"
)

// Sheet holds one named sheet's rows in workbook order.
type Sheet struct {
	Name string        `yaml:"name"`
	Slug string        `yaml:"slug"`
	Rows []records.Row `yaml:"rows"`
}

// Clear removes all rows from the sheet.
func (s *Sheet) Clear() {
	s.Rows = []records.Row{}
}

// Insert appends rows to the sheet.
func (s *Sheet) Insert(rows ...records.Row) {
	s.Rows = append(s.Rows, rows...)
}

// Len returns the number of rows in the sheet.
func (s *Sheet) Len() int {
	return len(s.Rows)
}

// Workbook is an ordered collection of sheets.
type Workbook struct {
	sheets []*Sheet
	bySlug map[string]*Sheet
}

// New creates a workbook with the blueprint's six sheets, all empty.
func New() *Workbook {
	wb := &Workbook{bySlug: make(map[string]*Sheet)}
	for _, def := range Blueprint() {
		wb.add(&Sheet{Name: def.Name, Slug: def.Slug, Rows: []records.Row{}})
	}
	return wb
}

// add registers a sheet, replacing any earlier sheet with the same slug.
func (wb *Workbook) add(sheet *Sheet) {
	if _, exists := wb.bySlug[sheet.Slug]; !exists {
		wb.sheets = append(wb.sheets, sheet)
	} else {
		for i, s := range wb.sheets {
			if s.Slug == sheet.Slug {
				wb.sheets[i] = sheet
				break
			}
		}
	}
	wb.bySlug[sheet.Slug] = sheet
}

// Sheet returns the sheet with the given slug, if present.
func (wb *Workbook) Sheet(slug string) (*Sheet, bool) {
	s, ok := wb.bySlug[slug]
	return s, ok
}

// Sheets returns the sheets in workbook order.
func (wb *Workbook) Sheets() []*Sheet {
	out := make([]*Sheet, len(wb.sheets))
	copy(out, wb.sheets)
	return out
}

// Rows returns the rows of the named sheet, or nil when the sheet is absent
// (an absent HR sheet is a legitimate input state).
func (wb *Workbook) Rows(slug string) []records.Row {
	if s, ok := wb.bySlug[slug]; ok {
		return s.Rows
	}
	return nil
}

// yamlWorkbook is the on-disk shape.
type yamlWorkbook struct {
	Sheets []yamlSheet `yaml:"sheets"`
}

// yamlSheet carries rows with loosely typed cell values so numeric and
// boolean YAML scalars load without error.
type yamlSheet struct {
	Name string           `yaml:"name"`
	Slug string           `yaml:"slug"`
	Rows []map[string]any `yaml:"rows"`
}

// Load reads a workbook from a YAML file.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var raw yamlWorkbook
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	wb := &Workbook{bySlug: make(map[string]*Sheet)}
	for _, rs := range raw.Sheets {
		sheet := &Sheet{Name: rs.Name, Slug: rs.Slug, Rows: make([]records.Row, 0, len(rs.Rows))}
		for _, rawRow := range rs.Rows {
			row := make(records.Row, len(rawRow))
			for key, value := range rawRow {
				row[key] = cellString(value)
			}
			sheet.Rows = append(sheet.Rows, row)
		}
		wb.add(sheet)
	}
	return wb, nil
}

// Save writes the workbook to a YAML file, creating parent directories as
// needed.
func (wb *Workbook) Save(path string) error {
	out := yamlWorkbook{Sheets: make([]yamlSheet, 0, len(wb.sheets))}
	for _, sheet := range wb.sheets {
		ys := yamlSheet{Name: sheet.Name, Slug: sheet.Slug, Rows: make([]map[string]any, 0, len(sheet.Rows))}
		for _, row := range sheet.Rows {
			raw := make(map[string]any, len(row))
			for key, value := range row {
				raw[key] = value
			}
			ys.Rows = append(ys.Rows, raw)
		}
		out.Sheets = append(out.Sheets, ys)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// cellString renders a loosely typed YAML cell value as the string the
// normalizer expects. Nil cells are empty.
func cellString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case uint64:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		// Whole-number floats are spreadsheet numerics; keep them integral.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
