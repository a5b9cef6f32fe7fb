package catalog

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/store"
)

// CategoryAll is the filter sentinel meaning "no category restriction".
const CategoryAll = "all"

var (
	ErrNotFound         = errors.New("product not found")
	ErrDuplicateBarcode = errors.New("barcode already assigned to another product")
)

// Store holds the sellable product collection. It is loaded once from the
// persisted store and kept in memory; admin mutations write through.
type Store struct {
	mu       sync.RWMutex
	db       store.Store
	products []models.Product
	nextID   int64
}

func New(db store.Store) *Store {
	return &Store{db: db, nextID: 1}
}

// Load reads the product collection from the persisted store. A read failure
// is logged and leaves the catalog empty; the till keeps working with zero
// products.
func (s *Store) Load() {
	var products []models.Product
	err := s.db.Read(store.KeyProducts, &products)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		zap.S().Errorf("catalog load failed, starting empty: %v", err)
		products = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.nextID = 1
	for _, p := range products {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
}

// All returns a copy of the full catalog.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Filter returns products whose name contains searchTerm (case-insensitive)
// and whose category matches exactly, unless category is CategoryAll.
func (s *Store) Filter(searchTerm, category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term := strings.ToLower(searchTerm)
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category labels in first-seen order,
// with the CategoryAll sentinel always first.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// FindByBarcode returns the product whose barcode equals code exactly.
// Matching is case-sensitive with no normalization; products without a
// barcode never match.
func (s *Store) FindByBarcode(code string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Barcode != "" && p.Barcode == code {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) ByID(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Create assigns an id and appends the product, rejecting duplicate barcodes.
func (s *Store) Create(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.barcodeTaken(p.Barcode, 0) {
		return models.Product{}, ErrDuplicateBarcode
	}
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	if err := s.persist(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *Store) Update(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.barcodeTaken(p.Barcode, p.ID) {
		return ErrDuplicateBarcode
	}
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return s.persist()
		}
	}
	return ErrNotFound
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.persist()
		}
	}
	return ErrNotFound
}

// Replace swaps in a whole new collection (xlsx import), rejecting duplicate
// barcodes within the incoming set. Ids are reassigned.
func (s *Store) Replace(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	for _, p := range products {
		if p.Barcode == "" {
			continue
		}
		if seen[p.Barcode] {
			return ErrDuplicateBarcode
		}
		seen[p.Barcode] = true
	}
	s.nextID = 1
	for i := range products {
		products[i].ID = s.nextID
		s.nextID++
	}
	s.products = products
	return s.persist()
}

// AdjustStock applies delta to the product's advisory stock count, flooring
// at zero. Unknown ids are ignored.
func (s *Store) AdjustStock(id int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock += delta
			if s.products[i].Stock < 0 {
				s.products[i].Stock = 0
			}
			return s.persist()
		}
	}
	return nil
}

// callers hold mu
func (s *Store) persist() error {
	return s.db.Write(store.KeyProducts, s.products)
}

func (s *Store) barcodeTaken(code string, selfID int64) bool {
	if code == "" {
		return false
	}
	for _, p := range s.products {
		if p.ID != selfID && p.Barcode == code {
			return true
		}
	}
	return false
}
