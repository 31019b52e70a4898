package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

// Deriver is the roster side-effect hook the ledger calls on order
// creation and deletion. Status-toggle updates never go through it.
type Deriver interface {
	ApplyNewOrder(domain.Order) error
	ReverseOrder(domain.Order) error
}

// LedgerService owns the order collection. Orders are kept
// newest-first; creates prepend, updates replace in place, deletes
// reverse the roster aggregates before the order disappears.
type LedgerService struct {
	Store  Store
	Roster Deriver
}

// Create fills in id, item ids and createdAt when the caller left them
// empty, counts the order into the roster, then prepends it to the
// ledger. The customers write goes first so a crash between the two
// writes cannot leave a persisted order uncounted.
func (s *LedgerService) Create(o domain.Order) (domain.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt == 0 {
		o.CreatedAt = time.Now().UnixMilli()
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
	}

	if err := s.Roster.ApplyNewOrder(o); err != nil {
		return domain.Order{}, err
	}
	orders, err := s.Store.LoadOrders()
	if err != nil {
		return domain.Order{}, err
	}
	orders = append([]domain.Order{o}, orders...)
	if err := s.Store.SaveOrders(orders); err != nil {
		return domain.Order{}, err
	}
	slog.Info("order created", "id", o.ID, "phone", o.CustomerPhone, "total", o.TotalAmount)
	return o, nil
}

// Update replaces the order with the same id, preserving its position.
// An unknown id is a silent no-op. Updates carry only status toggles,
// so the roster is not touched.
func (s *LedgerService) Update(o domain.Order) error {
	orders, err := s.Store.LoadOrders()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = o
			return s.Store.SaveOrders(orders)
		}
	}
	return nil
}

// Delete removes the order with the given id. The roster reversal runs
// first, while the order is still present to tell it how much to
// subtract, and the customers write lands before the orders write.
// An unknown id is a silent no-op, which also makes a repeated delete
// harmless.
func (s *LedgerService) Delete(id string) error {
	orders, err := s.Store.LoadOrders()
	if err != nil {
		return err
	}
	at := -1
	for i := range orders {
		if orders[i].ID == id {
			at = i
			break
		}
	}
	if at == -1 {
		return nil
	}
	if err := s.Roster.ReverseOrder(orders[at]); err != nil {
		return err
	}
	orders = append(orders[:at], orders[at+1:]...)
	if err := s.Store.SaveOrders(orders); err != nil {
		return err
	}
	slog.Info("order deleted", "id", id)
	return nil
}

// List returns the full ledger, newest-first.
func (s *LedgerService) List() ([]domain.Order, error) {
	return s.Store.LoadOrders()
}
