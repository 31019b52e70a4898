package domain

// Customer is a derived roster entry aggregating every order that
// shares one phone number. Phone is the natural key; ID exists only
// for display stability. VisitCount and TotalSpent track the surviving
// order set; IsVip latches on at five visits and is never cleared
// automatically.
type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	IsVip      bool    `json:"isVip"`
	TotalSpent float64 `json:"totalSpent"`
	VisitCount int     `json:"visitCount"`
}
