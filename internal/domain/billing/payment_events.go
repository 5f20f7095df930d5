package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePayment = "Payment"

// Event type constants
const (
	EventTypePaymentRecorded = "PaymentRecorded"
	EventTypePaymentDeleted  = "PaymentDeleted"
)

// PaymentRecordedEvent is published after a payment is persisted.
// The reconciliation handler reacts to it synchronously to shrink or
// resolve any open overdue notice lines for the paid period.
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID   uuid.UUID          `json:"payment_id"`
	LeaseID     uuid.UUID          `json:"lease_id"`
	Period      valueobject.Period `json:"period"`
	Amount      decimal.Decimal    `json:"amount"`
	PaymentDate time.Time          `json:"payment_date"`
	Method      PaymentMethod      `json:"method"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(payment *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, payment.ID),
		PaymentID:       payment.ID,
		LeaseID:         payment.LeaseID,
		Period:          payment.Period,
		Amount:          payment.Amount,
		PaymentDate:     payment.PaymentDate,
		Method:          payment.Method,
	}
}

// PaymentDeletedEvent is published when a payment is removed as a
// correction
type PaymentDeletedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID          `json:"payment_id"`
	LeaseID   uuid.UUID          `json:"lease_id"`
	Period    valueobject.Period `json:"period"`
	Amount    decimal.Decimal    `json:"amount"`
}

// NewPaymentDeletedEvent creates a new PaymentDeletedEvent
func NewPaymentDeletedEvent(payment *Payment) *PaymentDeletedEvent {
	return &PaymentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentDeleted, AggregateTypePayment, payment.ID),
		PaymentID:       payment.ID,
		LeaseID:         payment.LeaseID,
		Period:          payment.Period,
		Amount:          payment.Amount,
	}
}
