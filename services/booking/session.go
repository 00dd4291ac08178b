package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	kvRepo "barbershop/database/repository/kv"
	"barbershop/models"
	"barbershop/services/calendar"
	"barbershop/services/cart"
	"barbershop/utils"

	"go.uber.org/zap"
)

const maxNameLength = 80

// Reasons reported when Submit sends nothing.
const (
	ReasonIncomplete      = "incomplete"
	ReasonDateUnavailable = "date_unavailable"
)

// Session combines one client's cart with the booking draft being edited.
type Session struct {
	clientID   string
	kv         kvRepo.Store
	cart       *cart.Store
	picker     *calendar.Picker
	submission OrderSubmission
	draftTTL   time.Duration
	logger     *zap.Logger

	draft models.BookingDraft
}

func (s *Session) draftKey() string {
	return utils.DraftKeyPrefix + s.clientID
}

func (s *Session) loadDraft(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.draftKey())
	if err != nil {
		if !errors.Is(err, kvRepo.ErrNotFound) {
			s.logger.Warn("booking: could not read draft", zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal([]byte(raw), &s.draft); err != nil {
		s.logger.Warn("booking: malformed draft, discarding", zap.Error(err))
		s.draft = models.BookingDraft{}
	}
}

func (s *Session) saveDraft(ctx context.Context) {
	data, err := json.Marshal(s.draft)
	if err != nil {
		s.logger.Warn("booking: could not encode draft", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.draftKey(), string(data), s.draftTTL); err != nil {
		s.logger.Warn("booking: could not persist draft", zap.Error(err))
	}
}

// Cart is the session's cart.
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// Draft returns the current draft.
func (s *Session) Draft() models.BookingDraft {
	return s.draft
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("%w: max %d characters", ErrInvalidName, maxNameLength)
	}
	return name, nil
}

// SetName sets the client name. Surrounding whitespace is dropped.
func (s *Session) SetName(ctx context.Context, name string) error {
	return s.Update(ctx, models.UpdateDraftRequest{Name: &name})
}

// SelectDate sets the appointment date; an empty value clears it.
func (s *Session) SelectDate(ctx context.Context, iso string) error {
	return s.Update(ctx, models.UpdateDraftRequest{Date: &iso})
}

// SelectTime sets the appointment time; an empty value clears it.
func (s *Session) SelectTime(ctx context.Context, hhmm string) error {
	return s.Update(ctx, models.UpdateDraftRequest{Time: &hhmm})
}

// Update applies every non-nil field of req. If any field is rejected the
// draft is left as it was.
func (s *Session) Update(ctx context.Context, req models.UpdateDraftRequest) error {
	next := s.draft
	if req.Name != nil {
		name, err := normalizeName(*req.Name)
		if err != nil {
			return err
		}
		next.Name = name
	}
	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			next.Date = ""
		} else if err := s.picker.SelectDate(&next, *req.Date, s.picker.Today()); err != nil {
			return err
		}
	}
	if req.Time != nil {
		if strings.TrimSpace(*req.Time) == "" {
			next.Time = ""
		} else if err := s.picker.SelectTime(&next, *req.Time); err != nil {
			return err
		}
	}
	s.draft = next
	s.saveDraft(ctx)
	return nil
}

// CanSubmit holds when the cart has a positive total, name, date and time
// are all set, and the date is still bookable today.
func (s *Session) CanSubmit() bool {
	return !s.cart.IsEmpty() &&
		s.cart.Total().IsPositive() &&
		s.draft.Name != "" &&
		s.draft.Date != "" &&
		s.draft.Time != "" &&
		s.dateBookable()
}

// dateBookable re-checks the draft date against today. A date picked just
// before midnight is past once the day rolls over.
func (s *Session) dateBookable() bool {
	d, err := s.picker.ParseDate(s.draft.Date)
	if err != nil {
		return false
	}
	ok, _ := s.picker.DayStatus(d, s.picker.Today())
	return ok
}

// View is the draft with its submit gate.
func (s *Session) View() models.DraftView {
	return models.DraftView{Draft: s.draft, CanSubmit: s.CanSubmit()}
}

// Cancel discards the draft without touching the cart.
func (s *Session) Cancel(ctx context.Context) {
	s.draft = models.BookingDraft{}
	if err := s.kv.Delete(ctx, s.draftKey()); err != nil {
		s.logger.Warn("booking: could not delete draft", zap.Error(err))
	}
}

// Submit confirms the booking. When CanSubmit is false nothing is sent and
// the result reports Submitted=false; a draft date that has since become
// unbookable is cleared so the client picks a new one. On a failed write cart
// and draft stay as they are; on success both are emptied.
func (s *Session) Submit(ctx context.Context, identity *models.Identity, lang models.Language) (models.SubmitResult, error) {
	if s.draft.Date != "" && !s.dateBookable() {
		s.logger.Info("booking: dropping draft date that is no longer bookable", zap.String("date", s.draft.Date))
		s.draft.Date = ""
		s.saveDraft(ctx)
		return models.SubmitResult{Submitted: false, Reason: ReasonDateUnavailable}, nil
	}
	if !s.CanSubmit() {
		return models.SubmitResult{Submitted: false, Reason: ReasonIncomplete}, nil
	}
	if identity == nil {
		return models.SubmitResult{}, ErrIdentityRequired
	}

	order, err := s.submission.Confirm(ctx, identity, s.cart.Lines(), s.cart.Total(), s.draft, lang)
	if err != nil {
		return models.SubmitResult{}, err
	}

	s.cart.Clear(ctx)
	s.Cancel(ctx)
	return models.SubmitResult{Submitted: true, Order: order}, nil
}
