// Package checkout turns a terminal's cart into a recorded sale.
package checkout

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rainielmontanez/FSSPOS/cart"
	"github.com/rainielmontanez/FSSPOS/catalog"
	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/store"
)

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	mu      sync.Mutex
	db      store.Store
	catalog *catalog.Store
	carts   *cart.Store
	now     func() time.Time
}

func New(db store.Store, cat *catalog.Store, carts *cart.Store) *Service {
	return &Service{db: db, catalog: cat, carts: carts, now: time.Now}
}

// Complete records the cashier's current cart as a sale, decrements advisory
// stock for each line and clears the cart. Stock never blocks a sale.
func (s *Service) Complete(cashierID int64, cashierName string) (models.Sale, error) {
	view := s.carts.View(cashierID)
	if len(view.Lines) == 0 {
		return models.Sale{}, ErrEmptyCart
	}

	s.mu.Lock()
	sales := s.loadSales()
	sale := models.Sale{
		ID:          nextSaleID(sales),
		CashierID:   cashierID,
		CashierName: cashierName,
		Lines:       view.Lines,
		Total:       view.Total,
		CreatedAt:   s.now().UTC(),
	}
	sales = append(sales, sale)
	err := s.db.Write(store.KeySales, sales)
	s.mu.Unlock()
	if err != nil {
		return models.Sale{}, err
	}

	for _, l := range view.Lines {
		if err := s.catalog.AdjustStock(l.Product.ID, -l.Quantity); err != nil {
			zap.S().Warnf("stock adjust failed for product %d: %v", l.Product.ID, err)
		}
	}
	s.carts.Clear(cashierID)
	return sale, nil
}

// Sales returns all recorded sales, oldest first.
func (s *Service) Sales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSales()
}

// caller holds mu
func (s *Service) loadSales() []models.Sale {
	var sales []models.Sale
	err := s.db.Read(store.KeySales, &sales)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		zap.S().Errorf("sales load failed: %v", err)
		return nil
	}
	return sales
}

func nextSaleID(sales []models.Sale) int64 {
	var max int64
	for _, s := range sales {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}
