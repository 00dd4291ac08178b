package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kvRepo "barbershop/database/repository/kv"
	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrUnknownService = errors.New("cart: unknown service")

// Store is one client's cart. It is loaded from the key-value store once when
// opened and written back after every mutation.
type Store struct {
	clientID string
	kv       kvRepo.Store
	catalog  catalog.Catalog
	logger   *zap.Logger
	ttl      time.Duration

	lines []models.CartLine
}

// Open loads the persisted cart of clientID. A missing or unreadable
// snapshot yields an empty cart.
func Open(ctx context.Context, kv kvRepo.Store, cat catalog.Catalog, clientID string, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		clientID: clientID,
		kv:       kv,
		catalog:  cat,
		logger:   logger.With(zap.String("clientID", clientID)),
		ttl:      ttl,
	}
	s.lines = s.load(ctx)
	return s
}

func (s *Store) key() string {
	return utils.CartKeyPrefix + s.clientID
}

func (s *Store) load(ctx context.Context) []models.CartLine {
	raw, err := s.kv.Get(ctx, s.key())
	if errors.Is(err, kvRepo.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Warn("cart: could not read snapshot, starting empty", zap.Error(err))
		return nil
	}

	var stored []models.CartLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("cart: malformed snapshot, starting empty", zap.Error(err))
		return nil
	}

	// Rebuild from the catalog so prices always come from the current entry,
	// and re-merge in case the snapshot broke the one-line-per-service rule.
	var lines []models.CartLine
	for _, l := range stored {
		svc, ok := s.catalog.Service(l.Service.ID)
		if !ok {
			s.logger.Warn("cart: dropping line for unknown service", zap.String("serviceID", l.Service.ID))
			continue
		}
		if l.Quantity < 1 {
			continue
		}
		lines = merge(lines, svc, l.Quantity)
	}
	return lines
}

// persist writes the snapshot. Failures are logged and otherwise ignored.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Warn("cart: could not encode snapshot", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key(), string(data), s.ttl); err != nil {
		s.logger.Warn("cart: could not persist snapshot", zap.Error(err))
	}
}

func merge(lines []models.CartLine, svc models.Service, qty int) []models.CartLine {
	for i := range lines {
		if lines[i].Service.ID == svc.ID {
			lines[i].Quantity += qty
			return lines
		}
	}
	return append(lines, models.CartLine{Service: svc, Quantity: qty})
}

// AddService increments the line for svc, or appends a new line with quantity 1.
func (s *Store) AddService(ctx context.Context, svc models.Service) {
	s.lines = merge(s.lines, svc, 1)
	s.persist(ctx)
}

// AddByID looks serviceID up in the catalog and adds it.
func (s *Store) AddByID(ctx context.Context, serviceID string) (models.Service, error) {
	svc, ok := s.catalog.Service(serviceID)
	if !ok {
		return models.Service{}, fmt.Errorf("%w: %q", ErrUnknownService, serviceID)
	}
	s.AddService(ctx, svc)
	return svc, nil
}

// Clear empties the cart. Clearing an empty cart is a no-op write.
func (s *Store) Clear(ctx context.Context) {
	s.lines = nil
	s.persist(ctx)
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

// ItemCount is the sum of quantities.
func (s *Store) ItemCount() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Total is Σ price × quantity over the current lines.
func (s *Store) Total() decimal.Decimal {
	return Total(s.lines)
}

// Total is Σ price × quantity over lines.
func Total(lines []models.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Service.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// View renders the cart for lang.
func (s *Store) View(lang models.Language) models.CartView {
	view := models.CartView{
		Lines:     make([]models.CartLineView, 0, len(s.lines)),
		Total:     s.Total().InexactFloat64(),
		ItemCount: s.ItemCount(),
		Empty:     s.IsEmpty(),
	}
	for _, l := range s.lines {
		view.Lines = append(view.Lines, models.CartLineView{
			ServiceID:  l.Service.ID,
			Name:       l.Service.Name.In(lang),
			Quantity:   l.Quantity,
			UnitPrice:  l.Service.Price.InexactFloat64(),
			PriceLabel: models.PriceLabel(l.Service.Price, lang),
			Subtotal:   l.Service.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).InexactFloat64(),
		})
	}
	return view
}
