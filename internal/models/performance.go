package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person types as they appear in the details sheet.
const (
	PersonTypeSales = "Sales"
	PersonTypeBDC   = "BDC"
)

// Result provenance for dashboard reads.
const (
	SourceSnapshot = "snapshot"
	SourceLive     = "live"
)

const DefaultTalkTime = "0:00"

// NameKey is the join key used to correlate rows across sheets and tables.
func NameKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// SalesRecord - one salesperson's leaderboard row for a period
type SalesRecord struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Calls   int    `json:"calls"`
	Texts   int    `json:"texts"`
	Created int    `json:"created"`
	Shown   int    `json:"shown"`
	Period  string `json:"period,omitempty"`
}

// BdcRecord - one BDC agent's leaderboard row for a period
type BdcRecord struct {
	Name    string `json:"name"`
	Shows   int    `json:"shows"`
	Created int    `json:"created"`
	Shown   int    `json:"shown"`
	Calls   int    `json:"calls"`
	Period  string `json:"period,omitempty"`
}

// Leaderboards - sales sorted by sales desc, bdc sorted by shows desc
type Leaderboards struct {
	Sales  []SalesRecord `json:"sales"`
	BDC    []BdcRecord   `json:"bdc"`
	Period string        `json:"period,omitempty"`
	Source string        `json:"source,omitempty"`
}

// PersonDetail - month-to-date summary for one person
type PersonDetail struct {
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	WorkingDays          int     `json:"workingDays"`
	CallsMTD             int     `json:"callsMTD"`
	SalesMTD             int     `json:"salesMTD"`
	TextsMTD             int     `json:"textsMTD"`
	ShownMTD             int     `json:"shownMTD"`
	CreatedMTD           int     `json:"createdMTD"`
	LeadsInNameMTD       int     `json:"leadsInNameMTD"`
	AvgTalk              string  `json:"avgTalk"`
	LastWorkDay          *string `json:"lastWorkDay"`
	LastDayCalls         int     `json:"lastDayCalls"`
	LastDaySales         int     `json:"lastDaySales"`
	LastDayAvgTalk       string  `json:"lastDayAvgTalk"`
	PRNotesWins          *string `json:"prNotesWins,omitempty"`
	PRNotesOpportunities *string `json:"prNotesOpportunities,omitempty"`
	Period               string  `json:"period,omitempty"`
}

// CallSheetRow - one lead assigned to a person
type CallSheetRow struct {
	CustomerName         string `json:"customerName"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	SalesPerson          string `json:"salesPerson"`
	BDCAgent             string `json:"bdcAgent"`
	Source               string `json:"source"`
	DateIn               string `json:"dateIn"`
	LeadAge              int    `json:"leadAge"`
	DaysSince            int    `json:"daysSince"`
	Bucket               string `json:"bucket"`
	Status               string `json:"status"`
	Reason               string `json:"reason"`
	Link                 string `json:"link"`
	RepCalledLastWorkDay bool   `json:"repCalledLastWorkDay"`
	LastWorkDay          string `json:"lastWorkDay"`
	AssignedTo           string `json:"assignedTo,omitempty"`
	Period               string `json:"period,omitempty"`
}

// ========== Stored documents ==========

type SalesDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FileID     string             `bson:"file_id"`
	Name       string             `bson:"name"`
	NameKey    string             `bson:"name_key"`
	SalesCount int                `bson:"sales_count"`
	Calls      int                `bson:"calls"`
	Texts      int                `bson:"texts"`
	Created    int                `bson:"created"`
	Shown      int                `bson:"shown"`
	Period     string             `bson:"period"`
	Rank       int                `bson:"rank"` // position within the upload, breaks count ties
	CreatedAt  time.Time          `bson:"created_at"`
}

// NewSalesDocument stamps every document of one upload with the same createdAt
// so ties keep their rank order on read.
func NewSalesDocument(fileID, period string, r SalesRecord, createdAt time.Time) SalesDocument {
	return SalesDocument{
		FileID:     fileID,
		Name:       r.Name,
		NameKey:    NameKey(r.Name),
		SalesCount: r.Sales,
		Calls:      r.Calls,
		Texts:      r.Texts,
		Created:    r.Created,
		Shown:      r.Shown,
		Period:     period,
		CreatedAt:  createdAt,
	}
}

func (d SalesDocument) Record() SalesRecord {
	return SalesRecord{
		Name:    d.Name,
		Sales:   d.SalesCount,
		Calls:   d.Calls,
		Texts:   d.Texts,
		Created: d.Created,
		Shown:   d.Shown,
		Period:  d.Period,
	}
}

type BdcDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FileID    string             `bson:"file_id"`
	Name      string             `bson:"name"`
	NameKey   string             `bson:"name_key"`
	Shows     int                `bson:"shows"`
	Created   int                `bson:"created"`
	Shown     int                `bson:"shown"`
	Calls     int                `bson:"calls"`
	Period    string             `bson:"period"`
	Rank      int                `bson:"rank"`
	CreatedAt time.Time          `bson:"created_at"`
}

func NewBdcDocument(fileID, period string, r BdcRecord, createdAt time.Time) BdcDocument {
	return BdcDocument{
		FileID:    fileID,
		Name:      r.Name,
		NameKey:   NameKey(r.Name),
		Shows:     r.Shows,
		Created:   r.Created,
		Shown:     r.Shown,
		Calls:     r.Calls,
		Period:    period,
		CreatedAt: createdAt,
	}
}

func (d BdcDocument) Record() BdcRecord {
	return BdcRecord{
		Name:    d.Name,
		Shows:   d.Shows,
		Created: d.Created,
		Shown:   d.Shown,
		Calls:   d.Calls,
		Period:  d.Period,
	}
}

type PersonDetailDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	FileID               string             `bson:"file_id"`
	Name                 string             `bson:"name"`
	NameKey              string             `bson:"name_key"`
	Type                 string             `bson:"type"`
	WorkingDays          int                `bson:"working_days"`
	CallsMTD             int                `bson:"calls_mtd"`
	SalesMTD             int                `bson:"sales_mtd"`
	TextsMTD             int                `bson:"texts_mtd"`
	ShownMTD             int                `bson:"shown_mtd"`
	CreatedMTD           int                `bson:"created_mtd"`
	LeadsInNameMTD       int                `bson:"leads_in_name_mtd"`
	AvgTalk              string             `bson:"avg_talk"`
	LastWorkDay          *string            `bson:"last_work_day"`
	LastDayCalls         int                `bson:"last_day_calls"`
	LastDaySales         int                `bson:"last_day_sales"`
	LastDayAvgTalk       string             `bson:"last_day_avg_talk"`
	PRNotesWins          *string            `bson:"pr_notes_wins"`
	PRNotesOpportunities *string            `bson:"pr_notes_opportunities"`
	Period               string             `bson:"period"`
	CreatedAt            time.Time          `bson:"created_at"`
}

func NewPersonDetailDocument(fileID, period string, d PersonDetail) PersonDetailDocument {
	return PersonDetailDocument{
		FileID:               fileID,
		Name:                 d.Name,
		NameKey:              NameKey(d.Name),
		Type:                 d.Type,
		WorkingDays:          d.WorkingDays,
		CallsMTD:             d.CallsMTD,
		SalesMTD:             d.SalesMTD,
		TextsMTD:             d.TextsMTD,
		ShownMTD:             d.ShownMTD,
		CreatedMTD:           d.CreatedMTD,
		LeadsInNameMTD:       d.LeadsInNameMTD,
		AvgTalk:              orDefault(d.AvgTalk, DefaultTalkTime),
		LastWorkDay:          nonEmpty(d.LastWorkDay),
		LastDayCalls:         d.LastDayCalls,
		LastDaySales:         d.LastDaySales,
		LastDayAvgTalk:       orDefault(d.LastDayAvgTalk, DefaultTalkTime),
		PRNotesWins:          nonEmpty(d.PRNotesWins),
		PRNotesOpportunities: nonEmpty(d.PRNotesOpportunities),
		Period:               period,
		CreatedAt:            time.Now(),
	}
}

func (d PersonDetailDocument) Detail() PersonDetail {
	return PersonDetail{
		Name:                 d.Name,
		Type:                 d.Type,
		WorkingDays:          d.WorkingDays,
		CallsMTD:             d.CallsMTD,
		SalesMTD:             d.SalesMTD,
		TextsMTD:             d.TextsMTD,
		ShownMTD:             d.ShownMTD,
		CreatedMTD:           d.CreatedMTD,
		LeadsInNameMTD:       d.LeadsInNameMTD,
		AvgTalk:              d.AvgTalk,
		LastWorkDay:          d.LastWorkDay,
		LastDayCalls:         d.LastDayCalls,
		LastDaySales:         d.LastDaySales,
		LastDayAvgTalk:       d.LastDayAvgTalk,
		PRNotesWins:          d.PRNotesWins,
		PRNotesOpportunities: d.PRNotesOpportunities,
		Period:               d.Period,
	}
}

type CallSheetDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	FileID               string             `bson:"file_id"`
	AssignedTo           string             `bson:"assigned_to"`
	AssignedToKey        string             `bson:"assigned_to_key"`
	CustomerName         string             `bson:"customer_name"`
	Phone                string             `bson:"phone"`
	Email                string             `bson:"email"`
	SalesPerson          string             `bson:"sales_person"`
	BDCAgent             string             `bson:"bdc_agent"`
	Source               string             `bson:"source"`
	DateIn               *string            `bson:"date_in"`
	LeadAge              int                `bson:"lead_age"`
	DaysSince            int                `bson:"days_since"`
	Bucket               string             `bson:"bucket"`
	Status               string             `bson:"status"`
	Reason               string             `bson:"reason"`
	Link                 string             `bson:"link"`
	RepCalledLastWorkDay bool               `bson:"rep_called_last_work_day"`
	LastWorkDay          string             `bson:"last_work_day"`
	Period               string             `bson:"period"`
	Seq                  int                `bson:"seq"`
	CreatedAt            time.Time          `bson:"created_at"`
}

// NewCallSheetDocument stores the row under assignedTo; seq preserves sheet order.
func NewCallSheetDocument(fileID, period, assignedTo string, seq int, r CallSheetRow) CallSheetDocument {
	dateIn := r.DateIn
	return CallSheetDocument{
		FileID:               fileID,
		AssignedTo:           assignedTo,
		AssignedToKey:        NameKey(assignedTo),
		CustomerName:         r.CustomerName,
		Phone:                r.Phone,
		Email:                r.Email,
		SalesPerson:          r.SalesPerson,
		BDCAgent:             r.BDCAgent,
		Source:               r.Source,
		DateIn:               nonEmpty(&dateIn),
		LeadAge:              r.LeadAge,
		DaysSince:            r.DaysSince,
		Bucket:               r.Bucket,
		Status:               r.Status,
		Reason:               r.Reason,
		Link:                 r.Link,
		RepCalledLastWorkDay: r.RepCalledLastWorkDay,
		LastWorkDay:          r.LastWorkDay,
		Period:               period,
		Seq:                  seq,
		CreatedAt:            time.Now(),
	}
}

func (d CallSheetDocument) Row() CallSheetRow {
	row := CallSheetRow{
		CustomerName:         d.CustomerName,
		Phone:                d.Phone,
		Email:                d.Email,
		SalesPerson:          d.SalesPerson,
		BDCAgent:             d.BDCAgent,
		Source:               d.Source,
		LeadAge:              d.LeadAge,
		DaysSince:            d.DaysSince,
		Bucket:               d.Bucket,
		Status:               d.Status,
		Reason:               d.Reason,
		Link:                 d.Link,
		RepCalledLastWorkDay: d.RepCalledLastWorkDay,
		LastWorkDay:          d.LastWorkDay,
		AssignedTo:           d.AssignedTo,
		Period:               d.Period,
	}
	if d.DateIn != nil {
		row.DateIn = *d.DateIn
	}
	return row
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
