package cart

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	kvRepo "barbershop/database/repository/kv"
	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	haircut = models.Service{ID: "haircut", Name: models.LocalizedText{ES: "Corte", EN: "Cut"}, Price: decimal.NewFromInt(25)}
	dye     = models.Service{ID: "dye", Name: models.LocalizedText{ES: "Tinte", EN: "Dye"}, Price: decimal.NewFromInt(45)}
	quote   = models.Service{ID: "quote", Name: models.LocalizedText{ES: "Presupuesto"}, Price: decimal.Zero}
)

func testCatalog() catalog.Catalog {
	return catalog.NewCatalog([]models.Service{haircut, dye, quote}, nil)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("down") }
func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("down")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("down") }

func open(t *testing.T, kv kvRepo.Store) *Store {
	t.Helper()
	return Open(context.Background(), kv, testCatalog(), "client-1", 0, nil)
}

func TestAddService_MergesByID(t *testing.T) {
	ctx := context.Background()
	s := open(t, kvRepo.NewMemoryStore())

	s.AddService(ctx, haircut)
	s.AddService(ctx, dye)
	s.AddService(ctx, haircut)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "haircut", lines[0].Service.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "dye", lines[1].Service.ID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, s.ItemCount())
}

func TestAddService_RandomSequencesKeepOneLinePerID(t *testing.T) {
	ctx := context.Background()
	services := []models.Service{haircut, dye, quote}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		s := open(t, kvRepo.NewMemoryStore())
		counts := map[string]int{}
		var firstSeen []string

		n := rng.Intn(20)
		for i := 0; i < n; i++ {
			svc := services[rng.Intn(len(services))]
			if counts[svc.ID] == 0 {
				firstSeen = append(firstSeen, svc.ID)
			}
			counts[svc.ID]++
			s.AddService(ctx, svc)
		}

		lines := s.Lines()
		require.Len(t, lines, len(firstSeen))
		expected := decimal.Zero
		for i, l := range lines {
			assert.Equal(t, firstSeen[i], l.Service.ID, "insertion order")
			assert.Equal(t, counts[l.Service.ID], l.Quantity)
			expected = expected.Add(l.Service.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		assert.True(t, expected.Equal(s.Total()))
	}
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	s := open(t, kvRepo.NewMemoryStore())
	assert.True(t, s.Total().IsZero())

	s.AddService(ctx, haircut)
	s.AddService(ctx, dye)
	s.AddService(ctx, dye)
	assert.True(t, decimal.NewFromInt(115).Equal(s.Total()), s.Total().String())

	s.AddService(ctx, quote)
	assert.True(t, decimal.NewFromInt(115).Equal(s.Total()), "quote-only services never change the total")
}

func TestClear_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := open(t, kvRepo.NewMemoryStore())

	s.Clear(ctx)
	assert.True(t, s.IsEmpty())

	s.AddService(ctx, haircut)
	s.Clear(ctx)
	s.Clear(ctx)
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Total().IsZero())
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvRepo.NewMemoryStore()

	s := open(t, kv)
	s.AddService(ctx, dye)
	s.AddService(ctx, haircut)
	s.AddService(ctx, dye)

	reopened := open(t, kv)
	assert.Equal(t, s.Lines(), reopened.Lines())

	other := Open(ctx, kv, testCatalog(), "client-2", 0, nil)
	assert.True(t, other.IsEmpty(), "carts are per client")
}

func TestOpen_MalformedSnapshotIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvRepo.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, utils.CartKeyPrefix+"client-1", "{not json", 0))

	s := open(t, kv)
	assert.True(t, s.IsEmpty())

	s.AddService(ctx, haircut)
	assert.Len(t, open(t, kv).Lines(), 1, "next write replaces the corrupt snapshot")
}

func TestOpen_DropsUnknownServicesAndRepricesFromCatalog(t *testing.T) {
	ctx := context.Background()
	kv := kvRepo.NewMemoryStore()
	stale := `[{"service":{"id":"haircut","price":"10"},"quantity":2},` +
		`{"service":{"id":"retired","price":"99"},"quantity":1},` +
		`{"service":{"id":"haircut","price":"10"},"quantity":1}]`
	require.NoError(t, kv.Set(ctx, utils.CartKeyPrefix+"client-1", stale, 0))

	s := open(t, kv)
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(75).Equal(s.Total()))
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	s := open(t, failingStore{})

	assert.NotPanics(t, func() {
		s.AddService(ctx, haircut)
		s.Clear(ctx)
	})
	assert.True(t, s.IsEmpty())
}

func TestAddByID(t *testing.T) {
	ctx := context.Background()
	s := open(t, kvRepo.NewMemoryStore())

	svc, err := s.AddByID(ctx, "dye")
	require.NoError(t, err)
	assert.Equal(t, "dye", svc.ID)

	_, err = s.AddByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Len(t, s.Lines(), 1)
}

func TestView(t *testing.T) {
	ctx := context.Background()
	s := open(t, kvRepo.NewMemoryStore())
	s.AddService(ctx, dye)
	s.AddService(ctx, dye)
	s.AddService(ctx, quote)

	view := s.View(models.LanguageEN)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Dye", view.Lines[0].Name)
	assert.Equal(t, 90.0, view.Lines[0].Subtotal)
	assert.Equal(t, "45 €", view.Lines[0].PriceLabel)
	assert.Equal(t, "Quote", view.Lines[1].PriceLabel)
	assert.Equal(t, 90.0, view.Total)
	assert.Equal(t, 3, view.ItemCount)
	assert.False(t, view.Empty)
}
