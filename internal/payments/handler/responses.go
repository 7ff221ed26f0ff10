package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"paylens/internal/audit"
	"paylens/internal/payments"
	emailutil "paylens/pkg/email"
)

// PaymentResponse is the wire shape of a single payment. Amounts ride as
// decimal strings; Total is derived so clients never re-sum item lines.
type PaymentResponse struct {
	ID     string          `json:"id"`
	User   UserResponse    `json:"user"`
	PaidAt time.Time       `json:"paid_at"`
	Items  []ItemResponse  `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// UserResponse is the payer portion of a payment response.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ItemResponse is one product line of a payment response.
type ItemResponse struct {
	Name         string          `json:"name"`
	RegularPrice decimal.Decimal `json:"regular_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
}

// PaymentListResponse wraps a payment list. Empty results marshal as [],
// never null.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Count    int               `json:"count"`
}

// ProductListResponse wraps a distinct product-name list.
type ProductListResponse struct {
	Products []string `json:"products"`
	Count    int      `json:"count"`
}

// ItemListResponse wraps the flattened item list of one customer lookup.
// Customer is a display name guessed from the queried address.
type ItemListResponse struct {
	Customer string         `json:"customer"`
	Items    []ItemResponse `json:"items"`
	Count    int            `json:"count"`
}

// MonthSummaryResponse is the aggregate view of one calendar month.
type MonthSummaryResponse struct {
	Month        string          `json:"month"`
	PaymentCount int             `json:"payment_count"`
	Total        decimal.Decimal `json:"total"`
	Discount     decimal.Decimal `json:"discount"`
	Products     []string        `json:"products"`
}

// AuditTrailResponse wraps recent audit events, newest first.
type AuditTrailResponse struct {
	Events []audit.Event `json:"events"`
	Count  int           `json:"count"`
}

// FromPayment converts a domain payment to its response shape.
func FromPayment(payment payments.Payment) PaymentResponse {
	return PaymentResponse{
		ID:     payment.ID.String(),
		User:   UserResponse{ID: payment.User.ID.String(), Email: payment.User.Email},
		PaidAt: payment.PaidAt,
		Items:  FromItems(payment.Items),
		Total:  payment.Total(),
	}
}

// FromPayments converts a payment slice, preserving order.
func FromPayments(in []payments.Payment) PaymentListResponse {
	out := make([]PaymentResponse, 0, len(in))
	for _, payment := range in {
		out = append(out, FromPayment(payment))
	}
	return PaymentListResponse{Payments: out, Count: len(out)}
}

// FromItems converts an item slice, preserving order.
func FromItems(in []payments.PaymentItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(in))
	for _, item := range in {
		out = append(out, ItemResponse{
			Name:         item.Name,
			RegularPrice: item.RegularPrice,
			FinalPrice:   item.FinalPrice,
		})
	}
	return out
}

// FromCustomerItems wraps a customer's flattened items together with a
// display name derived from the queried address.
func FromCustomerItems(email string, in []payments.PaymentItem) ItemListResponse {
	first, last := emailutil.DeriveNameFromEmail(email)
	return ItemListResponse{
		Customer: first + " " + last,
		Items:    FromItems(in),
		Count:    len(in),
	}
}

// FromProducts wraps a product-name list, normalizing nil to [].
func FromProducts(in []string) ProductListResponse {
	if in == nil {
		in = []string{}
	}
	return ProductListResponse{Products: in, Count: len(in)}
}

// FromMonthSummary converts a domain month summary.
func FromMonthSummary(s payments.MonthSummary) MonthSummaryResponse {
	products := s.Products
	if products == nil {
		products = []string{}
	}
	return MonthSummaryResponse{
		Month:        s.Month.String(),
		PaymentCount: s.PaymentCount,
		Total:        s.Total,
		Discount:     s.Discount,
		Products:     products,
	}
}

// FromAuditEvents wraps an audit event list, normalizing nil to [].
func FromAuditEvents(in []audit.Event) AuditTrailResponse {
	if in == nil {
		in = []audit.Event{}
	}
	return AuditTrailResponse{Events: in, Count: len(in)}
}
