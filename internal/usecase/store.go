package usecase

import "github.com/kirsten0429/monkey-shoes/internal/domain"

// Store is the record store contract. Each collection is read and
// written whole in one synchronous call; an uninitialized collection
// loads as empty. There is no cross-collection atomicity, so the
// services sequence their writes (customers before orders) to keep the
// crash window on derived aggregates as small as possible.
type Store interface {
	LoadOrders() ([]domain.Order, error)
	SaveOrders([]domain.Order) error
	LoadCustomers() ([]domain.Customer, error)
	SaveCustomers([]domain.Customer) error
}
