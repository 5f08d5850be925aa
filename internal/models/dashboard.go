package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonBlock - headline MTD numbers on the person view
type PersonBlock struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	WorkingDays    int    `json:"workingDays"`
	CallsMTD       int    `json:"callsMTD"`
	SalesMTD       int    `json:"salesMTD"`
	TextsMTD       int    `json:"textsMTD"`
	ShownMTD       int    `json:"shownMTD"`
	CreatedMTD     int    `json:"createdMTD"`
	LeadsInNameMTD int    `json:"leadsInNameMTD"`
	AvgTalk        string `json:"avgTalk"`
}

// LastDay - activity on the person's last work day
type LastDay struct {
	DateKey    *string `json:"dateKey"`
	Calls      int     `json:"calls"`
	AvgTalkMSS string  `json:"avgTalkMSS"`
	Sales      int     `json:"sales"`
}

type PRNotes struct {
	Wins          *string `json:"wins"`
	Opportunities *string `json:"opportunities"`
}

// PersonView - the person details payload, also the shape of a person snapshot
type PersonView struct {
	Block   PersonBlock `json:"block"`
	LastDay LastDay     `json:"lastDay"`
	PRNotes PRNotes     `json:"prNotes"`
	Source  string      `json:"source,omitempty"`
}

// View reshapes a stored detail into the person view payload.
func (d PersonDetail) View() PersonView {
	return PersonView{
		Block: PersonBlock{
			Name:           d.Name,
			Type:           d.Type,
			WorkingDays:    d.WorkingDays,
			CallsMTD:       d.CallsMTD,
			SalesMTD:       d.SalesMTD,
			TextsMTD:       d.TextsMTD,
			ShownMTD:       d.ShownMTD,
			CreatedMTD:     d.CreatedMTD,
			LeadsInNameMTD: d.LeadsInNameMTD,
			AvgTalk:        d.AvgTalk,
		},
		LastDay: LastDay{
			DateKey:    d.LastWorkDay,
			Calls:      d.LastDayCalls,
			AvgTalkMSS: d.LastDayAvgTalk,
			Sales:      d.LastDaySales,
		},
		PRNotes: PRNotes{
			Wins:          d.PRNotesWins,
			Opportunities: d.PRNotesOpportunities,
		},
	}
}

// Snapshot - precomputed JSON written by an external process
type Snapshot struct {
	ID        string    `json:"id" bson:"_id"`
	JSONData  string    `json:"jsonData" bson:"jsonData"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Upload processing states
const (
	UploadStatusProcessing = "processing"
	UploadStatusCompleted  = "completed"
	UploadStatusFailed     = "failed"
)

// UploadedFile - audit record anchoring one upload batch
type UploadedFile struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Filename         string             `json:"filename" bson:"filename"`
	UploadedBy       string             `json:"uploadedBy" bson:"uploaded_by"`
	FileSize         int64              `json:"fileSize" bson:"file_size"`
	ProcessingStatus string             `json:"processingStatus" bson:"processing_status"`
	Period           string             `json:"period" bson:"period"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

// SheetMapping - which workbook sheet feeds which logical role
type SheetMapping struct {
	Sales   string `json:"sales" form:"sales"`
	BDC     string `json:"bdc" form:"bdc"`
	Appt    string `json:"appt" form:"appt"`
	Details string `json:"details" form:"details"`
	Calls   string `json:"calls" form:"calls"`
}

// SheetSummary - what the operator sees before choosing a mapping
type SheetSummary struct {
	Name     string   `json:"name"`
	RowCount int      `json:"rowCount"`
	Columns  []string `json:"columns"`
}

type UploadPreview struct {
	Filename         string         `json:"filename"`
	Sheets           []SheetSummary `json:"sheets"`
	SuggestedMapping SheetMapping   `json:"suggestedMapping"`
}

type UploadResult struct {
	FileID      string `json:"fileId"`
	Period      string `json:"period"`
	SalesCount  int    `json:"salesCount"`
	BDCCount    int    `json:"bdcCount"`
	PeopleCount int    `json:"peopleCount"`
}

// UploadStatus - workflow flags exposed to the client
type UploadStatus struct {
	InProgress bool   `json:"inProgress"`
	Mapping    bool   `json:"mapping"`
	Filename   string `json:"filename,omitempty"`
	Step       string `json:"step,omitempty"`
}

// PersonMatch - a fuzzy search hit over leaderboard names
type PersonMatch struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Score int    `json:"score"`
}
