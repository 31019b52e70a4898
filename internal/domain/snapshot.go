package domain

// Snapshot is the portable backup document. A nil collection means the
// field was absent from the input; on import that collection is left
// untouched, while an empty non-nil collection replaces the stored one.
type Snapshot struct {
	Orders     []Order    `json:"orders"`
	Customers  []Customer `json:"customers"`
	BackupDate string     `json:"backupDate"`
}

// DailyStats is one day of aggregated revenue for the dashboard.
type DailyStats struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}
