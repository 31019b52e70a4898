package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

type StatsRange string

const (
	RangeWeek  StatsRange = "week"
	RangeMonth StatsRange = "month"
	RangeYear  StatsRange = "year"
)

// Bucket is one bar of the revenue chart.
type Bucket struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Summary is the dashboard payload: lifetime totals plus revenue
// grouped at the granularity of the requested range.
type Summary struct {
	TotalRevenue float64  `json:"totalRevenue"`
	TotalOrders  int      `json:"totalOrders"`
	Buckets      []Bucket `json:"buckets"`
}

// StatsService aggregates the ledger for the dashboard. It reads the
// order collection on every call; nothing here is cached.
type StatsService struct {
	Store Store
}

// Summary groups order revenue by day of month (week view), week of
// month (month view) or month (year view). Buckets keep first-seen
// order, which for a newest-first ledger means newest bucket first.
func (s *StatsService) Summary(r StatsRange) (Summary, error) {
	orders, err := s.Store.LoadOrders()
	if err != nil {
		return Summary{}, err
	}

	var out Summary
	byKey := map[string]int{}
	for _, o := range orders {
		out.TotalRevenue += o.TotalAmount
		out.TotalOrders++

		t := time.UnixMilli(o.CreatedAt)
		var key string
		switch r {
		case RangeMonth:
			key = fmt.Sprintf("Week %d", (t.Day()+6)/7)
		case RangeYear:
			key = t.Format("Jan")
		default:
			key = fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
		}
		i, ok := byKey[key]
		if !ok {
			i = len(out.Buckets)
			byKey[key] = i
			out.Buckets = append(out.Buckets, Bucket{Name: key})
		}
		out.Buckets[i].Value += o.TotalAmount
	}
	return out, nil
}

// Daily returns per-day revenue and order counts, oldest day first.
func (s *StatsService) Daily() ([]domain.DailyStats, error) {
	orders, err := s.Store.LoadOrders()
	if err != nil {
		return nil, err
	}
	byDate := map[string]*domain.DailyStats{}
	for _, o := range orders {
		date := time.UnixMilli(o.CreatedAt).Format("2006-01-02")
		d, ok := byDate[date]
		if !ok {
			d = &domain.DailyStats{Date: date}
			byDate[date] = d
		}
		d.Revenue += o.TotalAmount
		d.Count++
	}
	out := make([]domain.DailyStats, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
