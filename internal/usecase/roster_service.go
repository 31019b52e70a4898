package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

// vipVisitThreshold is the lifetime visit count that latches IsVip on.
const vipVisitThreshold = 5

// RosterService maintains the derived customer roster. Customers are
// keyed by phone number; aggregates are adjusted incrementally as
// orders come and go rather than recomputed from the ledger.
type RosterService struct {
	Store Store
}

// Suggestion is a name/phone pair for order-form autocomplete.
type Suggestion struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (s *RosterService) List() ([]domain.Customer, error) {
	return s.Store.LoadCustomers()
}

// ApplyNewOrder counts a freshly created order into the roster,
// creating the customer on first contact. The stored display name
// follows the latest order. Reaching the visit threshold sets IsVip
// and nothing in this service ever clears it again.
func (s *RosterService) ApplyNewOrder(o domain.Order) error {
	customers, err := s.Store.LoadCustomers()
	if err != nil {
		return err
	}
	i, ok := indexByPhone(customers)[o.CustomerPhone]
	if !ok {
		customers = append(customers, domain.Customer{
			ID:    uuid.NewString(),
			Phone: o.CustomerPhone,
		})
		i = len(customers) - 1
	}
	c := &customers[i]
	c.Name = o.CustomerName
	c.VisitCount++
	c.TotalSpent += o.TotalAmount
	if c.VisitCount >= vipVisitThreshold {
		c.IsVip = true
	}
	return s.Store.SaveCustomers(customers)
}

// ReverseOrder backs a deleted order out of the roster. Counters floor
// at zero and the customer record itself survives even when its last
// order goes away. IsVip stays as-is: auto-promotion is a one-way
// latch.
func (s *RosterService) ReverseOrder(o domain.Order) error {
	customers, err := s.Store.LoadCustomers()
	if err != nil {
		return err
	}
	i, ok := indexByPhone(customers)[o.CustomerPhone]
	if !ok {
		return nil
	}
	c := &customers[i]
	c.VisitCount = max(0, c.VisitCount-1)
	c.TotalSpent = max(0, c.TotalSpent-o.TotalAmount)
	return s.Store.SaveCustomers(customers)
}

// ToggleVIP flips the manual VIP flag for the given phone. Unknown
// phones are a no-op.
func (s *RosterService) ToggleVIP(phone string) error {
	customers, err := s.Store.LoadCustomers()
	if err != nil {
		return err
	}
	i, ok := indexByPhone(customers)[phone]
	if !ok {
		return nil
	}
	customers[i].IsVip = !customers[i].IsVip
	return s.Store.SaveCustomers(customers)
}

// Suggest returns up to limit customers whose phone contains the given
// fragment, for the order-form autocomplete.
func (s *RosterService) Suggest(phoneFragment string, limit int) ([]Suggestion, error) {
	customers, err := s.Store.LoadCustomers()
	if err != nil {
		return nil, err
	}
	out := make([]Suggestion, 0, limit)
	for _, c := range customers {
		if strings.Contains(c.Phone, phoneFragment) {
			out = append(out, Suggestion{Name: c.Name, Phone: c.Phone})
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func indexByPhone(customers []domain.Customer) map[string]int {
	idx := make(map[string]int, len(customers))
	for i, c := range customers {
		idx[c.Phone] = i
	}
	return idx
}
