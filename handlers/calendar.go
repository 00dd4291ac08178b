package handlers

import (
	"net/http"
	"strconv"
	"time"

	"barbershop/models"
	"barbershop/services/calendar"
	"barbershop/services/preferences"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the month grid and the time slots.
type CalendarHandler struct {
	Picker *calendar.Picker
	Prefs  *preferences.Service
}

func NewCalendarHandler(picker *calendar.Picker, prefs *preferences.Service) *CalendarHandler {
	return &CalendarHandler{Picker: picker, Prefs: prefs}
}

// cursor reads ?year=&month=, defaulting to and floored at the current month.
func (h *CalendarHandler) cursor(c *gin.Context) (models.MonthCursor, bool) {
	cur := h.Picker.CurrentMonth()
	if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 1 || year > 9999 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid year", y)
			return cur, false
		}
		cur.Year = year
	}
	if m := c.Query("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid month", m)
			return cur, false
		}
		cur.Month = time.Month(month)
	}
	floor := h.Picker.CurrentMonth()
	if cur.Year < floor.Year || cur.Year == floor.Year && cur.Month < floor.Month {
		cur = floor
	}
	return cur, true
}

func (h *CalendarHandler) render(c *gin.Context, cur models.MonthCursor, today time.Time) {
	c.JSON(http.StatusOK, h.Picker.BuildMonth(cur, today, requestLanguage(c, h.Prefs)))
}

// MonthHandler returns the requested month, never earlier than the current one.
func (h *CalendarHandler) MonthHandler(c *gin.Context) {
	cur, ok := h.cursor(c)
	if !ok {
		return
	}
	h.render(c, cur, h.Picker.Today())
}

// PreviousMonthHandler steps back one month from ?year=&month=. It does not
// go before the current month.
func (h *CalendarHandler) PreviousMonthHandler(c *gin.Context) {
	cur, ok := h.cursor(c)
	if !ok {
		return
	}
	today := h.Picker.Today()
	h.render(c, h.Picker.Previous(cur, today), today)
}

func (h *CalendarHandler) NextMonthHandler(c *gin.Context) {
	cur, ok := h.cursor(c)
	if !ok {
		return
	}
	h.render(c, h.Picker.Next(cur), h.Picker.Today())
}

func (h *CalendarHandler) SlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Picker.TimeSlots())
}
