package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barbershop/models"
)

// DateLayout is the ISO key used for appointment dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errors.New("calendar: date must be YYYY-MM-DD")
	ErrDateUnavailable = errors.New("calendar: date is not bookable")
	ErrInvalidTime     = errors.New("calendar: time is not one of the offered slots")
)

// Picker computes selectable days and time slots for the appointment calendar.
type Picker struct {
	ClosedWeekday time.Weekday
	FirstWeekday  time.Weekday

	loc    *time.Location
	now    func() time.Time
	shifts []Shift
	slots  []string
}

// NewPicker returns a picker for a shop in loc: closed on Sundays, weeks
// starting on Monday, morning and afternoon shifts.
func NewPicker(loc *time.Location) *Picker {
	if loc == nil {
		loc = time.UTC
	}
	p := &Picker{
		ClosedWeekday: time.Sunday,
		FirstWeekday:  time.Monday,
		loc:           loc,
		now:           time.Now,
		shifts:        DefaultShifts,
	}
	p.slots = buildSlots(p.shifts)
	return p
}

// WithClock replaces the time source.
func (p *Picker) WithClock(now func() time.Time) *Picker {
	p.now = now
	return p
}

// Today is the current calendar date in the shop's timezone, at midnight.
func (p *Picker) Today() time.Time {
	return dateOnly(p.now().In(p.loc))
}

// CurrentMonth is the month containing today.
func (p *Picker) CurrentMonth() models.MonthCursor {
	return CursorFor(p.Today())
}

// CursorFor returns the month containing t.
func CursorFor(t time.Time) models.MonthCursor {
	return models.MonthCursor{Year: t.Year(), Month: t.Month()}
}

func monthIndex(c models.MonthCursor) int {
	return c.Year*12 + int(c.Month) - 1
}

func (p *Picker) firstOfMonth(c models.MonthCursor) time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, p.loc)
}

// DaysIn returns the number of days in the cursor's month.
func (p *Picker) DaysIn(c models.MonthCursor) int {
	return p.firstOfMonth(c).AddDate(0, 1, -1).Day()
}

// LeadingOffset is the number of blank cells before day 1 so that the grid
// starts on FirstWeekday.
func (p *Picker) LeadingOffset(c models.MonthCursor) int {
	wd := int(p.firstOfMonth(c).Weekday())
	return (wd + 7 - int(p.FirstWeekday)) % 7
}

// DayStatus reports whether date can be booked relative to today. Only the
// calendar date is compared.
func (p *Picker) DayStatus(date, today time.Time) (bool, string) {
	d := dateOnly(date.In(p.loc))
	if d.Before(dateOnly(today.In(p.loc))) {
		return false, models.DayPast
	}
	if d.Weekday() == p.ClosedWeekday {
		return false, models.DayClosed
	}
	return true, ""
}

// BuildMonth lays out every day of the cursor's month with its status.
func (p *Picker) BuildMonth(c models.MonthCursor, today time.Time, lang models.Language) models.MonthView {
	first := p.firstOfMonth(c)
	c = CursorFor(first)
	n := p.DaysIn(c)

	view := models.MonthView{
		Cursor:        c,
		Weekdays:      p.weekdayLabels(lang),
		LeadingBlanks: p.LeadingOffset(c),
		Days:          make([]models.DayCell, 0, n),
		CanGoPrevious: p.CanGoPrevious(c, today),
		Today:         dateOnly(today.In(p.loc)).Format(DateLayout),
	}
	for day := 1; day <= n; day++ {
		date := first.AddDate(0, 0, day-1)
		ok, reason := p.DayStatus(date, today)
		view.Days = append(view.Days, models.DayCell{
			Day:        day,
			Date:       date.Format(DateLayout),
			Weekday:    strings.ToLower(date.Weekday().String()),
			Selectable: ok,
			Reason:     reason,
		})
	}
	return view
}

// CanGoPrevious reports whether the cursor is after the month containing today.
func (p *Picker) CanGoPrevious(c models.MonthCursor, today time.Time) bool {
	return monthIndex(c) > monthIndex(CursorFor(today.In(p.loc)))
}

// Previous moves one month back, never before the month containing today.
func (p *Picker) Previous(c models.MonthCursor, today time.Time) models.MonthCursor {
	if !p.CanGoPrevious(c, today) {
		return c
	}
	return CursorFor(p.firstOfMonth(c).AddDate(0, -1, 0))
}

// Next moves one month forward. There is no upper bound.
func (p *Picker) Next(c models.MonthCursor) models.MonthCursor {
	return CursorFor(p.firstOfMonth(c).AddDate(0, 1, 0))
}

// ParseDate parses an ISO date key in the shop's timezone.
func (p *Picker) ParseDate(iso string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(iso), p.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, iso)
	}
	return d, nil
}

// SelectDate sets draft.Date to iso when that day is bookable.
func (p *Picker) SelectDate(draft *models.BookingDraft, iso string, today time.Time) error {
	d, err := p.ParseDate(iso)
	if err != nil {
		return err
	}
	if ok, reason := p.DayStatus(d, today); !ok {
		return fmt.Errorf("%w: %s is %s", ErrDateUnavailable, d.Format(DateLayout), reason)
	}
	draft.Date = d.Format(DateLayout)
	return nil
}

// SelectTime sets draft.Time to hhmm when it is one of the offered slots.
func (p *Picker) SelectTime(draft *models.BookingDraft, hhmm string) error {
	hhmm = strings.TrimSpace(hhmm)
	if !p.IsSlot(hhmm) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	draft.Time = hhmm
	return nil
}

var weekdayNames = map[models.Language][7]string{
	models.LanguageES: {"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	models.LanguageEN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

func (p *Picker) weekdayLabels(lang models.Language) []string {
	names, ok := weekdayNames[lang]
	if !ok {
		names = weekdayNames[models.LanguageES]
	}
	labels := make([]string, 7)
	for i := range labels {
		labels[i] = names[(int(p.FirstWeekday)+i)%7]
	}
	return labels
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
