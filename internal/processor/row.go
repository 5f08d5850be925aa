// Package processor turns uploaded spreadsheet sheets into leaderboard,
// person detail and call sheet records.
package processor

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Row is one spreadsheet row keyed by header text. Values are strings,
// bools (boolean cells) or json.Number/float64 when decoded from JSON.
type Row map[string]any

// Field is a logical column that may appear under several header spellings.
type Field int

const (
	FieldName Field = iota
	FieldSalesName
	FieldBDCName
	FieldCreated
	FieldShown
	FieldSales
	FieldCalls
	FieldTexts
	FieldShows

	FieldType
	FieldWorkingDays
	FieldCallsMTD
	FieldSalesMTD
	FieldTextsMTD
	FieldShownMTD
	FieldCreatedMTD
	FieldLeadsInNameMTD
	FieldAvgTalk
	FieldLastWorkDay
	FieldLastDayCalls
	FieldLastDaySales
	FieldLastDayAvgTalk
	FieldPRNotesWins
	FieldPRNotesOpportunities

	FieldAssignedTo
	FieldCustomer
	FieldPhone
	FieldEmail
	FieldSalesPerson
	FieldBDCAgent
	FieldSource
	FieldDateIn
	FieldLeadAge
	FieldDaysSince
	FieldBucket
	FieldStatus
	FieldReason
	FieldLink
	FieldCalledLastWorkDay
)

// aliases lists accepted headers per field in priority order.
var aliases = map[Field][]string{
	FieldName:      {"Name", "name"},
	FieldSalesName: {"Name", "name", "Sales Person"},
	FieldBDCName:   {"Name", "name", "BDC Agent"},
	FieldCreated:   {"Created", "created"},
	FieldShown:     {"Shown", "shown"},
	FieldSales:     {"Sales", "sales", "Sales Count"},
	FieldCalls:     {"Calls", "calls"},
	FieldTexts:     {"Texts", "texts"},
	FieldShows:     {"Shows", "shows", "Appointments Shown"},

	FieldType:                 {"Type", "type"},
	FieldWorkingDays:          {"Working Days", "working_days"},
	FieldCallsMTD:             {"Calls MTD", "calls_mtd"},
	FieldSalesMTD:             {"Sales MTD", "sales_mtd"},
	FieldTextsMTD:             {"Texts MTD", "texts_mtd"},
	FieldShownMTD:             {"Shown MTD", "shown_mtd"},
	FieldCreatedMTD:           {"Created MTD", "created_mtd"},
	FieldLeadsInNameMTD:       {"Leads In Name MTD", "leads_in_name_mtd"},
	FieldAvgTalk:              {"Avg Talk", "avg_talk"},
	FieldLastWorkDay:          {"Last Work Day", "last_work_day"},
	FieldLastDayCalls:         {"Last Day Calls", "last_day_calls"},
	FieldLastDaySales:         {"Last Day Sales", "last_day_sales"},
	FieldLastDayAvgTalk:       {"Last Day Avg Talk", "last_day_avg_talk"},
	FieldPRNotesWins:          {"PR Notes Wins", "pr_notes_wins", "Wins"},
	FieldPRNotesOpportunities: {"PR Notes Opportunities", "pr_notes_opportunities", "Opportunities"},

	FieldAssignedTo:        {"Assigned To", "assigned_to", "Sales Person"},
	FieldCustomer:          {"Customer", "customer", "Customer Name"},
	FieldPhone:             {"Phone", "phone"},
	FieldEmail:             {"Email", "email"},
	FieldSalesPerson:       {"Sales Person", "sales_person"},
	FieldBDCAgent:          {"BDC Agent", "bdc_agent"},
	FieldSource:            {"Source", "source"},
	FieldDateIn:            {"Date In", "date_in", "Date"},
	FieldLeadAge:           {"Lead Age", "lead_age"},
	FieldDaysSince:         {"Days Since", "days_since", "Days Since Contact"},
	FieldBucket:            {"Bucket", "bucket", "Priority Bucket"},
	FieldStatus:            {"Status", "status"},
	FieldReason:            {"Reason", "reason", "Priority Reason"},
	FieldLink:              {"Link", "link", "URL"},
	FieldCalledLastWorkDay: {"Called Last Work Day", "called_last_work_day"},
}

// Value returns the first non-empty value among f's aliases.
func (r Row) Value(f Field) (any, bool) {
	for _, key := range aliases[f] {
		if v, ok := r[key]; ok && present(v) {
			return v, true
		}
	}
	return nil, false
}

// String returns the field as text, or "" when absent.
func (r Row) String(f Field) string {
	v, ok := r.Value(f)
	if !ok {
		return ""
	}
	return stringify(v)
}

// StringOr returns the field as text, or def when absent.
func (r Row) StringOr(f Field, def string) string {
	if s := r.String(f); s != "" {
		return s
	}
	return def
}

// Name returns the trimmed field text.
func (r Row) Name(f Field) string {
	return strings.TrimSpace(r.String(f))
}

// Int parses the field as a base-10 integer, 0 when absent or unparseable.
func (r Row) Int(f Field) int {
	v, ok := r.Value(f)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case bool:
		return 0
	}
	return ParseInt(stringify(v))
}

// Affirmative is true only for the literal "Yes" or a boolean true.
func (r Row) Affirmative(f Field) bool {
	for _, key := range aliases[f] {
		switch v := r[key].(type) {
		case bool:
			if v {
				return true
			}
		case string:
			if v == "Yes" {
				return true
			}
		}
	}
	return false
}

// ParseInt reads the leading base-10 integer of s, ignoring digit grouping
// commas. Anything without leading digits is 0.
func ParseInt(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		return x != ""
	}
	return true
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return ""
}
