package calendar

import (
	"testing"
	"time"

	"barbershop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots_TwoShiftsWithMiddayGap(t *testing.T) {
	p := NewPicker(time.UTC)
	view := p.TimeSlots()

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"}, view.Morning)
	assert.Equal(t, []string{"16:30", "17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00"}, view.Afternoon)
	require.Len(t, view.All, 16)
	assert.Equal(t, append(append([]string{}, view.Morning...), view.Afternoon...), view.All)

	for _, gap := range []string{"14:00", "15:00", "16:00"} {
		assert.False(t, p.IsSlot(gap), gap)
	}
}

func TestSlotsReturnsCopy(t *testing.T) {
	p := NewPicker(time.UTC)
	s := p.Slots()
	s[0] = "00:00"
	assert.True(t, p.IsSlot("10:00"))
}

func TestSelectTime(t *testing.T) {
	p := NewPicker(time.UTC)
	var draft models.BookingDraft

	require.NoError(t, p.SelectTime(&draft, "17:00"))
	assert.Equal(t, "17:00", draft.Time)

	assert.ErrorIs(t, p.SelectTime(&draft, "15:00"), ErrInvalidTime)
	assert.ErrorIs(t, p.SelectTime(&draft, "5pm"), ErrInvalidTime)
	assert.Equal(t, "17:00", draft.Time)
}
