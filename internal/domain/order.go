package domain

type PaymentMethod string

const (
	PayCash    PaymentMethod = "CASH"
	PayLinePay PaymentMethod = "LINE_PAY"
)

// OrderItem is a single cleaning line item. It has no lifecycle of its
// own; it lives and dies with its parent order.
type OrderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order is one drop-off transaction. TotalAmount is fixed at creation
// time as the sum of item prices; only the status fields (IsPaid,
// PaymentMethod, PickupDate) change afterwards.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []OrderItem   `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	IsPaid        bool          `json:"isPaid"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     int64         `json:"createdAt"` // unix milliseconds
	PickupDate    *int64        `json:"pickupDate,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	PhotoPreview  string        `json:"photoPreview,omitempty"` // base64 data URL thumbnail
}
