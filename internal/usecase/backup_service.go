package usecase

import (
	"encoding/json"
	"time"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

type ErrBadSnapshot string

func (e ErrBadSnapshot) Error() string { return "bad snapshot: " + string(e) }

// BackupService serializes both collections into one portable snapshot
// and restores from one. Imported data is trusted as-is: aggregates
// are not re-derived.
type BackupService struct {
	Store  Store
	Prefix string           // backup filename prefix, e.g. "monkey_shoe"
	Now    func() time.Time // defaults to time.Now
}

func (s *BackupService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *BackupService) Export() (domain.Snapshot, error) {
	orders, err := s.Store.LoadOrders()
	if err != nil {
		return domain.Snapshot{}, err
	}
	customers, err := s.Store.LoadCustomers()
	if err != nil {
		return domain.Snapshot{}, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return domain.Snapshot{
		Orders:     orders,
		Customers:  customers,
		BackupDate: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// ExportJSON renders the snapshot as an indented JSON document, the
// shape the operator downloads and later feeds back to Import.
func (s *BackupService) ExportJSON() ([]byte, error) {
	snap, err := s.Export()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Filename is the download name convention:
// <prefix>_backup_<YYYY-MM-DD>.json.
func (s *BackupService) Filename() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "monkey_shoe"
	}
	return prefix + "_backup_" + s.now().Format("2006-01-02") + ".json"
}

// Import parses a snapshot document and destructively replaces each
// collection that is present in it; absent collections are left
// untouched. Malformed input returns ErrBadSnapshot before anything is
// written, so a failed import never changes stored state.
func (s *BackupService) Import(data []byte) error {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return ErrBadSnapshot(err.Error())
	}
	if snap.Orders != nil {
		if err := s.Store.SaveOrders(snap.Orders); err != nil {
			return err
		}
	}
	if snap.Customers != nil {
		if err := s.Store.SaveCustomers(snap.Customers); err != nil {
			return err
		}
	}
	return nil
}
