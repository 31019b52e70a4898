package repo

import (
	"sync"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

// MemoryStore holds both collections in memory. Used for tests and
// ephemeral runs.
type MemoryStore struct {
	mu        sync.RWMutex
	orders    []domain.Order
	customers []domain.Customer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadOrders() ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) SaveOrders(orders []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]domain.Order, len(orders))
	copy(s.orders, orders)
	return nil
}

func (s *MemoryStore) LoadCustomers() ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

func (s *MemoryStore) SaveCustomers(customers []domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = make([]domain.Customer, len(customers))
	copy(s.customers, customers)
	return nil
}
