package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
)

type orderItemPayload struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price" validate:"gte=0"`
}

// orderPayload is the wire form of an order; creates and updates share
// it. Core invariants beyond field shape (name/phone non-empty, items
// non-empty, totalAmount matching the items) are enforced here at the
// UI boundary, before anything reaches the ledger.
type orderPayload struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customerName" validate:"required"`
	CustomerPhone string               `json:"customerPhone" validate:"required"`
	Items         []orderItemPayload   `json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64              `json:"totalAmount" validate:"gte=0"`
	IsPaid        bool                 `json:"isPaid"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" validate:"required,oneof=CASH LINE_PAY"`
	CreatedAt     int64                `json:"createdAt"`
	PickupDate    *int64               `json:"pickupDate"`
	Notes         string               `json:"notes"`
	PhotoPreview  string               `json:"photoPreview"`
}

func (p orderPayload) toDomain() domain.Order {
	items := make([]domain.OrderItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = domain.OrderItem{ID: it.ID, Name: it.Name, Price: it.Price}
	}
	return domain.Order{
		ID:            p.ID,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Items:         items,
		TotalAmount:   p.TotalAmount,
		IsPaid:        p.IsPaid,
		PaymentMethod: p.PaymentMethod,
		CreatedAt:     p.CreatedAt,
		PickupDate:    p.PickupDate,
		Notes:         p.Notes,
		PhotoPreview:  p.PhotoPreview,
	}
}

// newValidator registers the struct-level rule that a submitted
// totalAmount equals the sum of its item prices, compared in cents to
// dodge float rounding.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(orderTotalValidation, orderPayload{})
	return v
}

func orderTotalValidation(sl validatorv10.StructLevel) {
	p := sl.Current().Interface().(orderPayload)

	var sum float64
	for _, it := range p.Items {
		sum += it.Price
	}
	if int(math.Round(sum*100)) != int(math.Round(p.TotalAmount*100)) {
		sl.ReportError(p.TotalAmount, "totalAmount", "TotalAmount", "total_match_items",
			fmt.Sprintf("items sum %.2f != totalAmount %.2f", sum, p.TotalAmount))
	}
}

// bindAndValidate binds the JSON body into out and validates it. On
// failure it writes the 400 response and returns an error so the
// handler can just return.
func (s *Server) bindAndValidate(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		s.err(c, http.StatusBadRequest, "BadRequest", "invalid json body")
		return err
	}
	if err := s.validate.Struct(out); err != nil {
		fields := map[string]string{}
		if ve, ok := err.(validatorv10.ValidationErrors); ok {
			for _, fe := range ve {
				fields[fe.StructNamespace()] = fe.Tag()
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "ValidationFailed",
				"message": "request failed validation",
				"fields":  fields,
			},
		})
		return err
	}
	return nil
}
