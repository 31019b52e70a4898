package usecase

import (
	"slices"
	"testing"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

// fakeStore keeps both collections in memory and records the order of
// save calls so tests can assert the customers-before-orders contract.
type fakeStore struct {
	orders    []domain.Order
	customers []domain.Customer
	saveLog   []string
}

func (f *fakeStore) LoadOrders() ([]domain.Order, error) {
	return slices.Clone(f.orders), nil
}

func (f *fakeStore) SaveOrders(orders []domain.Order) error {
	f.orders = slices.Clone(orders)
	f.saveLog = append(f.saveLog, "orders")
	return nil
}

func (f *fakeStore) LoadCustomers() ([]domain.Customer, error) {
	return slices.Clone(f.customers), nil
}

func (f *fakeStore) SaveCustomers(customers []domain.Customer) error {
	f.customers = slices.Clone(customers)
	f.saveLog = append(f.saveLog, "customers")
	return nil
}

func newLedger() (*LedgerService, *fakeStore) {
	st := &fakeStore{}
	return &LedgerService{Store: st, Roster: &RosterService{Store: st}}, st
}

func order(id, name, phone string, total float64) domain.Order {
	return domain.Order{
		ID:            id,
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         []domain.OrderItem{{ID: id + "-1", Name: "sneaker deep clean", Price: total}},
		TotalAmount:   total,
		PaymentMethod: domain.PayCash,
		CreatedAt:     1700000000000,
	}
}

func TestCreateDerivesRoster(t *testing.T) {
	svc, st := newLedger()

	phones := []string{"0912000111", "0912000222", "0912000333", "0912000111"}
	for i, p := range phones {
		if _, err := svc.Create(order("", "Amy", p, 100)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if len(st.customers) != 3 {
		t.Fatalf("expected 3 customers for 3 distinct phones, got %d", len(st.customers))
	}
	for _, c := range st.customers {
		want := 1
		if c.Phone == "0912000111" {
			want = 2
		}
		if c.VisitCount != want {
			t.Fatalf("phone %s: visitCount = %d, want %d", c.Phone, c.VisitCount, want)
		}
		if c.TotalSpent != float64(want)*100 {
			t.Fatalf("phone %s: totalSpent = %v, want %v", c.Phone, c.TotalSpent, float64(want)*100)
		}
	}
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	svc, st := newLedger()

	first, err := svc.Create(order("", "Amy", "0912000111", 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(order("", "Amy", "0912000111", 200))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if st.orders[0].ID != second.ID || st.orders[1].ID != first.ID {
		t.Fatalf("orders not newest-first: %s then %s", st.orders[0].ID, st.orders[1].ID)
	}
	if first.ID == "" || first.CreatedAt == 0 {
		t.Fatalf("create did not fill id/createdAt: %+v", first)
	}
}

func TestCreateWritesCustomersBeforeOrders(t *testing.T) {
	svc, st := newLedger()
	if _, err := svc.Create(order("", "Amy", "0912000111", 100)); err != nil {
		t.Fatalf("create: %v", err)
	}
	want := []string{"customers", "orders"}
	if !slices.Equal(st.saveLog, want) {
		t.Fatalf("save sequence = %v, want %v", st.saveLog, want)
	}
}

func TestDeleteReversesAggregates(t *testing.T) {
	svc, st := newLedger()

	a, _ := svc.Create(order("", "Amy", "0912000111", 250))
	b, _ := svc.Create(order("", "Amy", "0912000111", 150))

	st.saveLog = nil
	if err := svc.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, o := range st.orders {
		if o.ID == a.ID {
			t.Fatalf("deleted order still listed")
		}
	}
	if len(st.orders) != 1 || st.orders[0].ID != b.ID {
		t.Fatalf("unexpected surviving orders: %+v", st.orders)
	}
	c := st.customers[0]
	if c.VisitCount != 1 || c.TotalSpent != 150 {
		t.Fatalf("aggregates after delete = %d visits / %v spent, want 1 / 150", c.VisitCount, c.TotalSpent)
	}
	if !slices.Equal(st.saveLog, []string{"customers", "orders"}) {
		t.Fatalf("delete save sequence = %v, want customers before orders", st.saveLog)
	}
	// the record persists at zero even when the last order goes
	if err := svc.Delete(b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c = st.customers[0]
	if c.VisitCount != 0 || c.TotalSpent != 0 {
		t.Fatalf("aggregates should floor at zero, got %d / %v", c.VisitCount, c.TotalSpent)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	svc, st := newLedger()

	a, _ := svc.Create(order("", "Amy", "0912000111", 250))
	svc.Create(order("", "Bob", "0912000222", 100))

	if err := svc.Delete(a.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	ordersAfter := slices.Clone(st.orders)
	customersAfter := slices.Clone(st.customers)

	if err := svc.Delete(a.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if !slices.EqualFunc(st.orders, ordersAfter, func(a, b domain.Order) bool { return a.ID == b.ID }) {
		t.Fatalf("second delete changed the ledger")
	}
	for i, c := range st.customers {
		if c != customersAfter[i] {
			t.Fatalf("second delete changed customer %s", c.Phone)
		}
	}
}

func TestVIPLatchSurvivesDeletion(t *testing.T) {
	svc, st := newLedger()

	var ids []string
	for i := 0; i < 5; i++ {
		o, err := svc.Create(order("", "Amy", "0912000111", 250))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, o.ID)

		c := st.customers[0]
		wantVip := i >= 4
		if c.IsVip != wantVip {
			t.Fatalf("after %d visits isVip = %v, want %v", i+1, c.IsVip, wantVip)
		}
	}

	if err := svc.Delete(ids[2]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c := st.customers[0]
	if c.VisitCount != 4 {
		t.Fatalf("visitCount after delete = %d, want 4", c.VisitCount)
	}
	if c.TotalSpent != 1000 {
		t.Fatalf("totalSpent after delete = %v, want 1000", c.TotalSpent)
	}
	if !c.IsVip {
		t.Fatalf("VIP auto-promotion must not be revoked by deletions")
	}
}

func TestUpdateTogglesOnly(t *testing.T) {
	svc, st := newLedger()

	a, _ := svc.Create(order("", "Amy", "0912000111", 250))
	svc.Create(order("", "Amy", "0912000111", 100))

	before := st.customers[0]

	toggled := a
	toggled.IsPaid = true
	toggled.PaymentMethod = domain.PayLinePay
	pickup := int64(1700000100000)
	toggled.PickupDate = &pickup
	if err := svc.Update(toggled); err != nil {
		t.Fatalf("update: %v", err)
	}

	// position preserved: a was created first, so it sits last
	if st.orders[1].ID != a.ID || !st.orders[1].IsPaid || st.orders[1].PickupDate == nil {
		t.Fatalf("update did not replace in place: %+v", st.orders[1])
	}
	if st.customers[0] != before {
		t.Fatalf("status toggle must not touch aggregates: %+v vs %+v", st.customers[0], before)
	}

	// unknown id is a silent no-op
	ghost := order("no-such-id", "Ghost", "0900000000", 1)
	if err := svc.Update(ghost); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if len(st.orders) != 2 {
		t.Fatalf("no-op update changed the ledger")
	}
}

func TestDisplayNameFollowsLatestOrder(t *testing.T) {
	svc, st := newLedger()

	svc.Create(order("", "Amy", "0912000111", 100))
	svc.Create(order("", "Amy Chen", "0912000111", 100))

	if st.customers[0].Name != "Amy Chen" {
		t.Fatalf("customer name = %q, want the latest order's name", st.customers[0].Name)
	}
}

func TestReverseOrderUnknownPhoneNoop(t *testing.T) {
	st := &fakeStore{}
	roster := &RosterService{Store: st}

	if err := roster.ReverseOrder(order("x", "Ghost", "0987654321", 50)); err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if len(st.customers) != 0 {
		t.Fatalf("reverse for unknown phone created a customer")
	}
}

func TestToggleVIP(t *testing.T) {
	st := &fakeStore{}
	roster := &RosterService{Store: st}
	svc := &LedgerService{Store: st, Roster: roster}

	svc.Create(order("", "Amy", "0912000111", 250))

	if err := roster.ToggleVIP("0912000111"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !st.customers[0].IsVip {
		t.Fatalf("manual toggle did not set VIP")
	}
	if err := roster.ToggleVIP("0912000111"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if st.customers[0].IsVip {
		t.Fatalf("manual toggle did not clear VIP")
	}
	// unknown phone: no-op
	if err := roster.ToggleVIP("0000"); err != nil {
		t.Fatalf("toggle unknown: %v", err)
	}
	if len(st.customers) != 1 {
		t.Fatalf("toggle for unknown phone created a customer")
	}
}

func TestSuggest(t *testing.T) {
	st := &fakeStore{}
	roster := &RosterService{Store: st}
	svc := &LedgerService{Store: st, Roster: roster}

	svc.Create(order("", "Amy", "0912000111", 100))
	svc.Create(order("", "Bob", "0912000222", 100))
	svc.Create(order("", "Cid", "0987000333", 100))

	got, err := roster.Suggest("0912", 3)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("suggest returned %d matches, want 2", len(got))
	}

	got, err = roster.Suggest("09", 2)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("suggest ignored limit: %d", len(got))
	}
}
