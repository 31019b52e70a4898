package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

const (
	ordersFile    = "orders.json"
	customersFile = "customers.json"
)

// FileStore keeps each collection as one JSON document under a data
// directory. Every save rewrites the whole collection through a temp
// file and rename, so readers never observe a half-written document.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadOrders() ([]domain.Order, error) {
	var out []domain.Order
	if err := s.load(ordersFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FileStore) SaveOrders(orders []domain.Order) error {
	return s.save(ordersFile, orders)
}

func (s *FileStore) LoadCustomers() ([]domain.Customer, error) {
	var out []domain.Customer
	if err := s.load(customersFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FileStore) SaveCustomers(customers []domain.Customer) error {
	return s.save(customersFile, customers)
}

func (s *FileStore) load(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil // uninitialized collection reads as empty
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}
