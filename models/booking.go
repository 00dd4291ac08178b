package models

// BookingDraft is the name/date/time entered for an appointment before it is
// confirmed. Date is an ISO date (YYYY-MM-DD), Time is HH:MM.
type BookingDraft struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// IsEmpty reports whether nothing has been entered yet.
func (d BookingDraft) IsEmpty() bool {
	return d.Name == "" && d.Date == "" && d.Time == ""
}

// UpdateDraftRequest is the body of PUT /api/booking/draft. Nil fields are left untouched.
type UpdateDraftRequest struct {
	Name *string `json:"name"`
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// DraftView is the draft plus whether it can be submitted with the current cart.
type DraftView struct {
	Draft     BookingDraft `json:"draft"`
	CanSubmit bool         `json:"canSubmit"`
}

// SubmitResult reports the outcome of POST /api/booking/confirm.
type SubmitResult struct {
	Submitted bool   `json:"submitted"`
	Reason    string `json:"reason,omitempty"`
	Order     *Order `json:"order,omitempty"`
}
