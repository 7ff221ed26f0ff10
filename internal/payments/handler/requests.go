package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"paylens/internal/payments"
	dErrors "paylens/pkg/domain-errors"
)

// RecordPaymentRequest is the HTTP request body for POST /payments.
// The payment ID is optional; the service stamps one when absent.
type RecordPaymentRequest struct {
	ID     string              `json:"id"`
	User   RecordUserRequest   `json:"user"`
	PaidAt time.Time           `json:"paid_at"`
	Items  []RecordItemRequest `json:"items"`

	// Parsed value (populated by Validate)
	parsed payments.Payment
}

// RecordUserRequest is the payer portion of an ingest request.
type RecordUserRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RecordItemRequest is one product line of an ingest request.
type RecordItemRequest struct {
	Name         string          `json:"name"`
	RegularPrice decimal.Decimal `json:"regular_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
}

// Validate parses the identifier fields into domain types. Field-level
// requirements (payer email, payment date, item names) are enforced by the
// service so the rules live in one place.
// Implements the Validatable interface for shared.DecodeAndPrepare.
func (r *RecordPaymentRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	var paymentID uuid.UUID
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return dErrors.New(dErrors.CodeBadRequest, "id must be a valid UUID")
		}
		paymentID = parsed
	}

	if r.User.ID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "user.id is required")
	}
	userID, err := uuid.Parse(r.User.ID)
	if err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "user.id must be a valid UUID")
	}

	items := make([]payments.PaymentItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, payments.PaymentItem{
			Name:         item.Name,
			RegularPrice: item.RegularPrice,
			FinalPrice:   item.FinalPrice,
		})
	}

	r.parsed = payments.Payment{
		ID:     paymentID,
		User:   payments.User{ID: userID, Email: r.User.Email},
		PaidAt: r.PaidAt,
		Items:  items,
	}
	return nil
}

// Payment returns the parsed domain payment.
func (r *RecordPaymentRequest) Payment() payments.Payment {
	return r.parsed
}
