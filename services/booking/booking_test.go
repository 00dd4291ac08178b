package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	kvRepo "barbershop/database/repository/kv"
	"barbershop/models"
	"barbershop/services/calendar"
	"barbershop/services/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	haircut = models.Service{ID: "haircut", Name: models.LocalizedText{ES: "Corte y peinado", EN: "Haircut"}, Price: decimal.NewFromInt(25)}
	dye     = models.Service{ID: "dye", Name: models.LocalizedText{ES: "Coloración", EN: "Colour"}, Price: decimal.NewFromInt(45)}
	quote   = models.Service{ID: "quote", Name: models.LocalizedText{ES: "Presupuesto"}, Price: decimal.Zero}

	alice = &models.Identity{UID: "uid-1", Email: "alice@example.com"}
)

type fakeRecords struct {
	mu      sync.Mutex
	orders  []models.Order
	ratings []models.Rating
	err     error
	block   chan struct{}
	// honorCtx makes inserts fail once the caller's context is done.
	honorCtx bool
}

func (f *fakeRecords) InsertOrder(ctx context.Context, o models.Order) (string, error) {
	if f.block != nil {
		<-f.block
	}
	if f.honorCtx && ctx.Err() != nil {
		return "", ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.orders = append(f.orders, o)
	return "order-1", nil
}

func (f *fakeRecords) InsertRating(_ context.Context, r models.Rating) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.ratings = append(f.ratings, r)
	return "rating-1", nil
}

func (f *fakeRecords) ListOrders(context.Context) ([]models.Order, error)   { return f.orders, nil }
func (f *fakeRecords) ListRatings(context.Context) ([]models.Rating, error) { return f.ratings, nil }

func (f *fakeRecords) orderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func newService(records *fakeRecords) *DefaultBookingService {
	cat := catalog.NewCatalog([]models.Service{haircut, dye, quote}, nil)
	picker := calendar.NewPicker(time.UTC).WithClock(func() time.Time {
		return time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	})
	sub := &DefaultOrderSubmission{Catalog: cat}
	if records != nil {
		sub.Records = records
	}
	return &DefaultBookingService{
		KV:         kvRepo.NewMemoryStore(),
		Catalog:    cat,
		Picker:     picker,
		Submission: sub,
		DraftTTL:   time.Hour,
	}
}

// fill puts haircut ×1 and dye ×2 in the cart and completes the draft.
func fill(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()
	s.Cart().AddService(ctx, haircut)
	s.Cart().AddService(ctx, dye)
	s.Cart().AddService(ctx, dye)
	require.NoError(t, s.SetName(ctx, "  Ana  "))
	require.NoError(t, s.SelectDate(ctx, "2024-06-11"))
	require.NoError(t, s.SelectTime(ctx, "10:30"))
}

func TestCanSubmit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(s *Session)
		want  bool
	}{
		{"complete", func(s *Session) {}, true},
		{"cart empty", func(s *Session) { s.Cart().Clear(ctx) }, false},
		{"name empty", func(s *Session) { _ = s.SetName(ctx, "   ") }, false},
		{"date empty", func(s *Session) { _ = s.SelectDate(ctx, "") }, false},
		{"time empty", func(s *Session) { _ = s.SelectTime(ctx, "") }, false},
		{"quote-only cart", func(s *Session) {
			s.Cart().Clear(ctx)
			s.Cart().AddService(ctx, quote)
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(&fakeRecords{}).Open(ctx, "client")
			fill(t, s)
			tt.setup(s)
			assert.Equal(t, tt.want, s.CanSubmit())
		})
	}
}

func TestSession_TotalAndDraft(t *testing.T) {
	s := newService(&fakeRecords{}).Open(context.Background(), "client")
	fill(t, s)

	assert.True(t, decimal.NewFromInt(115).Equal(s.Cart().Total()))
	assert.Equal(t, models.BookingDraft{Name: "Ana", Date: "2024-06-11", Time: "10:30"}, s.Draft())
	assert.True(t, s.View().CanSubmit)
}

func TestSession_DraftIsPersistedPerClient(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeRecords{})
	fill(t, svc.Open(ctx, "client"))

	again := svc.Open(ctx, "client")
	assert.Equal(t, "Ana", again.Draft().Name)
	assert.Equal(t, 3, again.Cart().ItemCount())

	assert.True(t, svc.Open(ctx, "someone-else").Draft().IsEmpty())
}

func TestUpdate_RejectedFieldLeavesDraftUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newService(&fakeRecords{}).Open(ctx, "client")
	fill(t, s)
	before := s.Draft()

	name, sunday, slot := "Luis", "2024-06-16", "11:00"
	err := s.Update(ctx, models.UpdateDraftRequest{Name: &name, Date: &sunday, Time: &slot})
	assert.ErrorIs(t, err, calendar.ErrDateUnavailable)
	assert.Equal(t, before, s.Draft())

	gap := "15:00"
	assert.ErrorIs(t, s.Update(ctx, models.UpdateDraftRequest{Time: &gap}), calendar.ErrInvalidTime)

	long := strings.Repeat("a", maxNameLength+1)
	assert.ErrorIs(t, s.SetName(ctx, long), ErrInvalidName)
	assert.Equal(t, before, s.Draft())
}

func TestSubmit_IncompleteIsNoOp(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{}
	s := newService(records).Open(ctx, "client")
	s.Cart().AddService(ctx, haircut)

	res, err := s.Submit(ctx, alice, models.LanguageES)
	require.NoError(t, err)
	assert.False(t, res.Submitted)
	assert.Empty(t, records.orders)
	assert.Equal(t, 1, s.Cart().ItemCount())
}

func TestSubmit_RequiresIdentity(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{}
	s := newService(records).Open(ctx, "client")
	fill(t, s)

	_, err := s.Submit(ctx, nil, models.LanguageES)
	assert.ErrorIs(t, err, ErrIdentityRequired)
	assert.Empty(t, records.orders)
	assert.True(t, s.CanSubmit())
}

func TestSubmit_FailureKeepsState(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{err: errors.New("unavailable")}
	svc := newService(records)
	s := svc.Open(ctx, "client")
	fill(t, s)
	draft := s.Draft()
	lines := s.Cart().Lines()

	_, err := s.Submit(ctx, alice, models.LanguageES)
	require.Error(t, err)
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "insert order", subErr.Stage)

	assert.Equal(t, draft, s.Draft())
	assert.Equal(t, lines, s.Cart().Lines())

	reopened := svc.Open(ctx, "client")
	assert.Equal(t, draft, reopened.Draft())
	assert.Equal(t, 3, reopened.Cart().ItemCount())
}

func TestSubmit_SuccessClearsState(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{}
	svc := newService(records)
	s := svc.Open(ctx, "client")
	fill(t, s)

	res, err := s.Submit(ctx, alice, models.LanguageEN)
	require.NoError(t, err)
	require.True(t, res.Submitted)
	require.NotNil(t, res.Order)
	assert.Equal(t, "order-1", res.Order.ID)

	require.Len(t, records.orders, 1)
	o := records.orders[0]
	assert.Equal(t, "uid-1", o.UserID)
	assert.Equal(t, "alice@example.com", o.UserEmail)
	assert.Equal(t, 115.0, o.Total)
	assert.Equal(t, "Ana", o.BookingName)
	assert.Equal(t, "2024-06-11", o.BookingDate)
	assert.Equal(t, "10:30", o.BookingTime)
	assert.True(t, o.CreatedAt.IsZero(), "timestamp is left to the sink")
	require.Len(t, o.Cart, 2)
	assert.Equal(t, models.OrderLine{Service: models.OrderService{ID: "haircut", Name: "Haircut", Price: 25}, Quantity: 1}, o.Cart[0])
	assert.Equal(t, 2, o.Cart[1].Quantity)

	assert.True(t, s.Cart().IsEmpty())
	assert.True(t, s.Draft().IsEmpty())

	reopened := svc.Open(ctx, "client")
	assert.True(t, reopened.Cart().IsEmpty())
	assert.True(t, reopened.Draft().IsEmpty())
}

func TestSubmit_NotConfigured(t *testing.T) {
	ctx := context.Background()
	s := newService(nil).Open(ctx, "client")
	fill(t, s)

	_, err := s.Submit(ctx, alice, models.LanguageES)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, 3, s.Cart().ItemCount())
}

func TestCancel_KeepsCart(t *testing.T) {
	ctx := context.Background()
	svc := newService(&fakeRecords{})
	s := svc.Open(ctx, "client")
	fill(t, s)

	s.Cancel(ctx)
	assert.True(t, s.Draft().IsEmpty())
	assert.Equal(t, 3, svc.Open(ctx, "client").Cart().ItemCount())
}

func TestServiceSubmit_DuplicateSubmitsWriteOnce(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{block: make(chan struct{})}
	svc := newService(records)
	fill(t, svc.Open(ctx, "client"))

	var wg sync.WaitGroup
	results := make([]models.SubmitResult, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Submit(ctx, "client", alice, models.LanguageES)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(records.block)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 1, records.orderCount())
	assert.True(t, results[0].Submitted || results[1].Submitted)
}

func TestRate(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{}
	sub := newService(records).Submission

	r, err := sub.Rate(ctx, alice, "dye", 5)
	require.NoError(t, err)
	assert.Equal(t, "rating-1", r.ID)
	assert.Equal(t, 5, r.Rating)

	_, err = sub.Rate(ctx, alice, "dye", 3)
	require.NoError(t, err)
	assert.Len(t, records.ratings, 2, "ratings accumulate")

	_, err = sub.Rate(ctx, alice, "dye", 0)
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = sub.Rate(ctx, alice, "dye", 6)
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = sub.Rate(ctx, alice, "nope", 4)
	assert.ErrorIs(t, err, ErrUnknownService)
	_, err = sub.Rate(ctx, nil, "dye", 4)
	assert.ErrorIs(t, err, ErrIdentityRequired)
	assert.Len(t, records.ratings, 2)
}

func TestRate_RemoteFailure(t *testing.T) {
	records := &fakeRecords{err: errors.New("boom")}
	_, err := newService(records).Submission.Rate(context.Background(), alice, "haircut", 4)
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "insert rating", subErr.Stage)
}

func TestSubmit_DateRolledIntoThePast(t *testing.T) {
	ctx := context.Background()
	records := &fakeRecords{}
	svc := newService(records)
	now := time.Date(2024, time.June, 10, 23, 50, 0, 0, time.UTC)
	svc.Picker.WithClock(func() time.Time { return now })

	s := svc.Open(ctx, "client")
	fill(t, s)
	require.NoError(t, s.SelectDate(ctx, "2024-06-10"))
	require.True(t, s.CanSubmit())

	now = time.Date(2024, time.June, 11, 0, 10, 0, 0, time.UTC)
	s = svc.Open(ctx, "client")
	assert.False(t, s.CanSubmit())
	assert.False(t, s.View().CanSubmit)

	res, err := svc.Submit(ctx, "client", alice, models.LanguageES)
	require.NoError(t, err)
	assert.False(t, res.Submitted)
	assert.Equal(t, ReasonDateUnavailable, res.Reason)
	assert.Zero(t, records.orderCount())

	reopened := svc.Open(ctx, "client")
	assert.Equal(t, models.BookingDraft{Name: "Ana", Time: "10:30"}, reopened.Draft())
	assert.Equal(t, 3, reopened.Cart().ItemCount())

	require.NoError(t, reopened.SelectDate(ctx, "2024-06-11"))
	res, err = svc.Submit(ctx, "client", alice, models.LanguageES)
	require.NoError(t, err)
	assert.True(t, res.Submitted)
}

func TestServiceSubmit_IgnoresCallerCancellation(t *testing.T) {
	records := &fakeRecords{honorCtx: true}
	svc := newService(records)
	fill(t, svc.Open(context.Background(), "client"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := svc.Submit(ctx, "client", alice, models.LanguageES)
	require.NoError(t, err)
	assert.True(t, res.Submitted)
	assert.Equal(t, 1, records.orderCount())
}

func TestSubmitKey_SeparatesUsers(t *testing.T) {
	bob := &models.Identity{UID: "uid-2"}
	assert.NotEqual(t, submitKey("client", alice), submitKey("client", bob))
	assert.NotEqual(t, submitKey("client", alice), submitKey("client", nil))
	assert.Equal(t, submitKey("client", alice), submitKey("client", &models.Identity{UID: "uid-1"}))
}
