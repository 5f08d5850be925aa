package processor

import (
	"storedash-be/internal/models"
)

// DefaultPersonDetail is returned for people missing from the details sheet.
func DefaultPersonDetail(name string) models.PersonDetail {
	return models.PersonDetail{
		Name:           name,
		Type:           models.PersonTypeSales,
		AvgTalk:        models.DefaultTalkTime,
		LastDayAvgTalk: models.DefaultTalkTime,
	}
}

// BuildPersonDetail reads the first details row matching name. Later rows for
// the same name are ignored; no match yields DefaultPersonDetail.
func BuildPersonDetail(rows []Row, name string) models.PersonDetail {
	detail := DefaultPersonDetail(name)
	target := models.NameKey(name)

	for _, row := range rows {
		if models.NameKey(row.Name(FieldName)) != target {
			continue
		}
		detail.Type = row.StringOr(FieldType, models.PersonTypeSales)
		detail.WorkingDays = row.Int(FieldWorkingDays)
		detail.CallsMTD = row.Int(FieldCallsMTD)
		detail.SalesMTD = row.Int(FieldSalesMTD)
		detail.TextsMTD = row.Int(FieldTextsMTD)
		detail.ShownMTD = row.Int(FieldShownMTD)
		detail.CreatedMTD = row.Int(FieldCreatedMTD)
		detail.LeadsInNameMTD = row.Int(FieldLeadsInNameMTD)
		detail.AvgTalk = row.StringOr(FieldAvgTalk, models.DefaultTalkTime)
		detail.LastWorkDay = optional(row.String(FieldLastWorkDay))
		detail.LastDayCalls = row.Int(FieldLastDayCalls)
		detail.LastDaySales = row.Int(FieldLastDaySales)
		detail.LastDayAvgTalk = row.StringOr(FieldLastDayAvgTalk, models.DefaultTalkTime)
		detail.PRNotesWins = optional(row.String(FieldPRNotesWins))
		detail.PRNotesOpportunities = optional(row.String(FieldPRNotesOpportunities))
		break
	}
	return detail
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
