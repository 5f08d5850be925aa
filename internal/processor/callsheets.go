package processor

import (
	"storedash-be/internal/models"
)

// ExtractCallSheets returns the call sheet rows assigned to name, in sheet order.
func ExtractCallSheets(rows []Row, name string) []models.CallSheetRow {
	target := models.NameKey(name)
	out := []models.CallSheetRow{}
	for _, row := range rows {
		if models.NameKey(row.Name(FieldAssignedTo)) != target {
			continue
		}
		out = append(out, models.CallSheetRow{
			CustomerName:         row.String(FieldCustomer),
			Phone:                row.String(FieldPhone),
			Email:                row.String(FieldEmail),
			SalesPerson:          row.String(FieldSalesPerson),
			BDCAgent:             row.String(FieldBDCAgent),
			Source:               row.String(FieldSource),
			DateIn:               row.String(FieldDateIn),
			LeadAge:              row.Int(FieldLeadAge),
			DaysSince:            row.Int(FieldDaysSince),
			Bucket:               row.String(FieldBucket),
			Status:               row.String(FieldStatus),
			Reason:               row.String(FieldReason),
			Link:                 row.String(FieldLink),
			RepCalledLastWorkDay: row.Affirmative(FieldCalledLastWorkDay),
			LastWorkDay:          row.String(FieldLastWorkDay),
			AssignedTo:           name,
		})
	}
	return out
}
