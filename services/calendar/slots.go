package calendar

import (
	"fmt"
	"time"

	"barbershop/models"
)

// Shift is an opening period; appointments start every Step from Start and
// the last one starts one Step before End.
type Shift struct {
	Name  string
	Start string
	End   string
	Step  time.Duration
}

// DefaultShifts are the opening hours with the closed midday gap.
var DefaultShifts = []Shift{
	{Name: "morning", Start: "10:00", End: "14:00", Step: 30 * time.Minute},
	{Name: "afternoon", Start: "16:30", End: "20:30", Step: 30 * time.Minute},
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("bad clock value %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

func (s Shift) slots() []string {
	start, err := parseClock(s.Start)
	if err != nil {
		panic(err)
	}
	end, err := parseClock(s.End)
	if err != nil {
		panic(err)
	}
	var out []string
	for t := start; t+s.Step <= end; t += s.Step {
		out = append(out, formatClock(t))
	}
	return out
}

func buildSlots(shifts []Shift) []string {
	var all []string
	for _, s := range shifts {
		all = append(all, s.slots()...)
	}
	return all
}

// Slots returns every offered start time in order.
func (p *Picker) Slots() []string {
	out := make([]string, len(p.slots))
	copy(out, p.slots)
	return out
}

// IsSlot reports whether hhmm is an offered start time.
func (p *Picker) IsSlot(hhmm string) bool {
	for _, s := range p.slots {
		if s == hhmm {
			return true
		}
	}
	return false
}

// TimeSlots groups the offered start times by shift.
func (p *Picker) TimeSlots() models.TimeSlotsView {
	view := models.TimeSlotsView{All: p.Slots()}
	for _, s := range p.shifts {
		switch s.Name {
		case "morning":
			view.Morning = append(view.Morning, s.slots()...)
		case "afternoon":
			view.Afternoon = append(view.Afternoon, s.slots()...)
		}
	}
	return view
}
