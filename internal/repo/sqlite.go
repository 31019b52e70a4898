package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

// SQLiteStore persists both collections in a device-local SQLite file.
// It implements the same whole-collection load/save contract as
// FileStore: a save replaces the collection inside one transaction and
// a load returns rows in their stored order.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS orders (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		items TEXT NOT NULL,
		total_amount REAL NOT NULL,
		is_paid INTEGER NOT NULL DEFAULT 0,
		payment_method TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		pickup_date INTEGER,
		notes TEXT NOT NULL DEFAULT '',
		photo_preview TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS customers (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		is_vip INTEGER NOT NULL DEFAULT 0,
		total_spent REAL NOT NULL DEFAULT 0,
		visit_count INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadOrders() ([]domain.Order, error) {
	rows, err := s.db.Query(`SELECT id, customer_name, customer_phone, items, total_amount, is_paid, payment_method, created_at, pickup_date, notes, photo_preview
		FROM orders ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		var items string
		var pickup sql.NullInt64
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &items, &o.TotalAmount, &o.IsPaid, (*string)(&o.PaymentMethod), &o.CreatedAt, &pickup, &o.Notes, &o.PhotoPreview); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
		if pickup.Valid {
			v := pickup.Int64
			o.PickupDate = &v
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveOrders(orders []domain.Order) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM orders`); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO orders (position, id, customer_name, customer_phone, items, total_amount, is_paid, payment_method, created_at, pickup_date, notes, photo_preview)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	defer stmt.Close()

	for i, o := range orders {
		items, err := json.Marshal(o.Items)
		if err != nil {
			return fmt.Errorf("encode order items: %w", err)
		}
		var pickup any
		if o.PickupDate != nil {
			pickup = *o.PickupDate
		}
		if _, err := stmt.Exec(i, o.ID, o.CustomerName, o.CustomerPhone, string(items), o.TotalAmount, o.IsPaid, string(o.PaymentMethod), o.CreatedAt, pickup, o.Notes, o.PhotoPreview); err != nil {
			return fmt.Errorf("insert order %s: %w", o.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadCustomers() ([]domain.Customer, error) {
	rows, err := s.db.Query(`SELECT id, name, phone, is_vip, total_spent, visit_count FROM customers ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsVip, &c.TotalSpent, &c.VisitCount); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveCustomers(customers []domain.Customer) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM customers`); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO customers (position, id, name, phone, is_vip, total_spent, visit_count) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	defer stmt.Close()

	for i, c := range customers {
		if _, err := stmt.Exec(i, c.ID, c.Name, c.Phone, c.IsVip, c.TotalSpent, c.VisitCount); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.Phone, err)
		}
	}
	return tx.Commit()
}
