package processor

import (
	"errors"
	"fmt"

	"storedash-be/internal/models"
)

var ErrSheetNotFound = errors.New("sheet not found in workbook")

// Default sheet names tried, in order, when the operator left a role unmapped.
var (
	DefaultSalesSheets   = []string{"BDC Sales", "Sales", "sales"}
	DefaultBDCSheets     = []string{"BDC_Agent_Tracking", "BDC", "bdc"}
	DefaultApptSheets    = []string{"Appt Act", "appt act"}
	DefaultDetailsSheets = []string{"User Act", "Details", "details", "Person Details"}
	DefaultCallsSheets   = []string{"Call Sheets", "call sheets", "Calls"}
)

// Sheets are the rows feeding each logical role of one upload.
type Sheets struct {
	Sales   []Row
	BDC     []Row
	Appt    []Row
	Details []Row
	Calls   []Row
}

// Resolve picks the rows for each role: the mapped sheet if the workbook has
// it, else the first default present, else no rows.
func Resolve(wb *Workbook, m models.SheetMapping) Sheets {
	return Sheets{
		Sales:   pick(wb, m.Sales, DefaultSalesSheets),
		BDC:     pick(wb, m.BDC, DefaultBDCSheets),
		Appt:    pick(wb, m.Appt, DefaultApptSheets),
		Details: pick(wb, m.Details, DefaultDetailsSheets),
		Calls:   pick(wb, m.Calls, DefaultCallsSheets),
	}
}

// SuggestMapping preselects the default sheet names present in wb.
func SuggestMapping(wb *Workbook) models.SheetMapping {
	return models.SheetMapping{
		Sales:   firstPresent(wb, DefaultSalesSheets),
		BDC:     firstPresent(wb, DefaultBDCSheets),
		Appt:    firstPresent(wb, DefaultApptSheets),
		Details: firstPresent(wb, DefaultDetailsSheets),
		Calls:   firstPresent(wb, DefaultCallsSheets),
	}
}

// ValidateMapping requires sales, bdc and appointment sheets to be resolvable,
// and every explicitly mapped sheet to exist.
func ValidateMapping(wb *Workbook, m models.SheetMapping) error {
	explicit := []struct {
		role, sheet string
	}{
		{"sales", m.Sales}, {"bdc", m.BDC}, {"appt", m.Appt},
		{"details", m.Details}, {"calls", m.Calls},
	}
	for _, e := range explicit {
		if e.sheet != "" && !wb.Has(e.sheet) {
			return fmt.Errorf("%w: %s sheet %q", ErrSheetNotFound, e.role, e.sheet)
		}
	}

	required := []struct {
		role     string
		sheet    string
		defaults []string
	}{
		{"sales", m.Sales, DefaultSalesSheets},
		{"bdc", m.BDC, DefaultBDCSheets},
		{"appt", m.Appt, DefaultApptSheets},
	}
	for _, r := range required {
		if r.sheet == "" && firstPresent(wb, r.defaults) == "" {
			return fmt.Errorf("%w: no %s sheet selected", ErrSheetNotFound, r.role)
		}
	}
	return nil
}

func pick(wb *Workbook, mapped string, defaults []string) []Row {
	if wb.Has(mapped) {
		return wb.Sheets[mapped]
	}
	if name := firstPresent(wb, defaults); name != "" {
		return wb.Sheets[name]
	}
	return nil
}

func firstPresent(wb *Workbook, names []string) string {
	for _, name := range names {
		if wb.Has(name) {
			return name
		}
	}
	return ""
}
