package models

import "time"

// MonthCursor identifies the month the calendar is showing.
type MonthCursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// DayCell is one day of the displayed month.
type DayCell struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Selectable bool   `json:"selectable"`
	Reason     string `json:"reason,omitempty"`
}

// Reasons a day cannot be selected.
const (
	DayClosed = "closed"
	DayPast   = "past"
)

// MonthView is the day grid for one month. LeadingBlanks empty cells precede
// day 1 so the grid lines up with Weekdays.
type MonthView struct {
	Cursor        MonthCursor `json:"cursor"`
	Weekdays      []string    `json:"weekdays"`
	LeadingBlanks int         `json:"leadingBlanks"`
	Days          []DayCell   `json:"days"`
	CanGoPrevious bool        `json:"canGoPrevious"`
	Today         string      `json:"today"`
}

// TimeSlotsView lists the bookable appointment times.
type TimeSlotsView struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	All       []string `json:"all"`
}
