package models

import "time"

// ReportRow is one printed table line of the PDF export, one per appointment.
type ReportRow struct {
	Student string `json:"student"`
	Faculty string `json:"faculty"`
	Topic   string `json:"topic"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// ReportStats summarizes the exported set by status.
type ReportStats struct {
	Total       int       `json:"total"`
	Approved    int       `json:"approved"`
	Rejected    int       `json:"rejected"`
	Pending     int       `json:"pending"`
	NoResponse  int       `json:"no_response"`
	Cancelled   int       `json:"cancelled"`
	GeneratedAt time.Time `json:"generatedAt"`
}
