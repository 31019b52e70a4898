package usecase

import (
	"testing"
	"time"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

func orderAt(name, phone string, total float64, at time.Time) domain.Order {
	o := order("", name, phone, total)
	o.CreatedAt = at.UnixMilli()
	return o
}

func TestSummaryTotalsAndWeekBuckets(t *testing.T) {
	st := &fakeStore{}
	svc := &LedgerService{Store: st, Roster: &RosterService{Store: st}}

	day1 := time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 3, 5, 11, 0, 0, 0, time.Local)
	svc.Create(orderAt("Amy", "0912000111", 250, day1))
	svc.Create(orderAt("Bob", "0912000222", 100, day1))
	svc.Create(orderAt("Cid", "0912000333", 400, day2))

	stats := &StatsService{Store: st}
	sum, err := stats.Summary(RangeWeek)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalRevenue != 750 || sum.TotalOrders != 3 {
		t.Fatalf("totals = %v / %d, want 750 / 3", sum.TotalRevenue, sum.TotalOrders)
	}
	if len(sum.Buckets) != 2 {
		t.Fatalf("expected 2 day buckets, got %d: %+v", len(sum.Buckets), sum.Buckets)
	}
	values := map[string]float64{}
	for _, b := range sum.Buckets {
		values[b.Name] = b.Value
	}
	if values["3/4"] != 350 || values["3/5"] != 400 {
		t.Fatalf("bucket values wrong: %+v", values)
	}
}

func TestSummaryMonthAndYearBuckets(t *testing.T) {
	st := &fakeStore{}
	svc := &LedgerService{Store: st, Roster: &RosterService{Store: st}}

	svc.Create(orderAt("Amy", "0912000111", 100, time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local)))
	svc.Create(orderAt("Bob", "0912000222", 200, time.Date(2024, 3, 20, 9, 0, 0, 0, time.Local)))
	svc.Create(orderAt("Cid", "0912000333", 300, time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)))

	stats := &StatsService{Store: st}

	sum, err := stats.Summary(RangeMonth)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	values := map[string]float64{}
	for _, b := range sum.Buckets {
		values[b.Name] = b.Value
	}
	if values["Week 1"] != 400 || values["Week 3"] != 200 {
		t.Fatalf("month buckets wrong: %+v", values)
	}

	sum, err = stats.Summary(RangeYear)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	values = map[string]float64{}
	for _, b := range sum.Buckets {
		values[b.Name] = b.Value
	}
	if values["Mar"] != 300 || values["Jul"] != 300 {
		t.Fatalf("year buckets wrong: %+v", values)
	}
}

func TestDailyStatsSorted(t *testing.T) {
	st := &fakeStore{}
	svc := &LedgerService{Store: st, Roster: &RosterService{Store: st}}

	svc.Create(orderAt("Amy", "0912000111", 250, time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)))
	svc.Create(orderAt("Bob", "0912000222", 100, time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)))
	svc.Create(orderAt("Cid", "0912000333", 50, time.Date(2024, 3, 4, 15, 0, 0, 0, time.Local)))

	daily, err := (&StatsService{Store: st}).Daily()
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(daily) != 2 {
		t.Fatalf("expected 2 days, got %d", len(daily))
	}
	if daily[0].Date != "2024-03-04" || daily[0].Count != 2 || daily[0].Revenue != 150 {
		t.Fatalf("first day wrong: %+v", daily[0])
	}
	if daily[1].Date != "2024-03-05" || daily[1].Count != 1 || daily[1].Revenue != 250 {
		t.Fatalf("second day wrong: %+v", daily[1])
	}
}
