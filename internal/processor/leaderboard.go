package processor

import (
	"sort"

	"storedash-be/internal/models"
)

// ApptActivity is the appointment data joined onto sales and BDC rows.
type ApptActivity struct {
	Created int
	Shown   int
}

// BuildApptIndex maps uppercased name to appointment activity. Rows without a
// name are skipped; a repeated name keeps its last row.
func BuildApptIndex(rows []Row) map[string]ApptActivity {
	index := make(map[string]ApptActivity, len(rows))
	for _, row := range rows {
		key := models.NameKey(row.Name(FieldName))
		if key == "" {
			continue
		}
		index[key] = ApptActivity{
			Created: row.Int(FieldCreated),
			Shown:   row.Int(FieldShown),
		}
	}
	return index
}

// BuildLeaderboards joins the sales and BDC sheets with appointment activity
// and ranks them: sales by sales count, bdc by shows, both descending with
// ties kept in sheet order.
func BuildLeaderboards(s Sheets) models.Leaderboards {
	appts := BuildApptIndex(s.Appt)

	sales := make([]models.SalesRecord, 0, len(s.Sales))
	for _, row := range s.Sales {
		name := row.Name(FieldSalesName)
		if name == "" {
			continue
		}
		appt := appts[models.NameKey(name)]
		sales = append(sales, models.SalesRecord{
			Name:    name,
			Sales:   row.Int(FieldSales),
			Calls:   row.Int(FieldCalls),
			Texts:   row.Int(FieldTexts),
			Created: appt.Created,
			Shown:   appt.Shown,
		})
	}

	bdc := make([]models.BdcRecord, 0, len(s.BDC))
	for _, row := range s.BDC {
		name := row.Name(FieldBDCName)
		if name == "" {
			continue
		}
		appt := appts[models.NameKey(name)]
		bdc = append(bdc, models.BdcRecord{
			Name:    name,
			Shows:   row.Int(FieldShows),
			Created: appt.Created,
			Shown:   appt.Shown,
			Calls:   row.Int(FieldCalls),
		})
	}

	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Sales > sales[j].Sales })
	sort.SliceStable(bdc, func(i, j int) bool { return bdc[i].Shows > bdc[j].Shows })

	return models.Leaderboards{Sales: sales, BDC: bdc}
}

// People lists every display name on either leaderboard once, sales first.
func People(lb models.Leaderboards) []string {
	seen := make(map[string]bool, len(lb.Sales)+len(lb.BDC))
	var people []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			people = append(people, name)
		}
	}
	for _, s := range lb.Sales {
		add(s.Name)
	}
	for _, b := range lb.BDC {
		add(b.Name)
	}
	return people
}
