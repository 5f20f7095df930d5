package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a rent payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodOnline       PaymentMethod = "online"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque,
		PaymentMethodCard, PaymentMethodOnline:
		return true
	}
	return false
}

// ChequeStatus represents the clearing status of a cheque payment
type ChequeStatus string

const (
	ChequeStatusPending ChequeStatus = "pending"
	ChequeStatusCleared ChequeStatus = "cleared"
	ChequeStatusBounced ChequeStatus = "bounced"
)

// IsValid checks if the cheque status is valid
func (s ChequeStatus) IsValid() bool {
	return s == ChequeStatusPending || s == ChequeStatusCleared || s == ChequeStatusBounced
}

// Payment represents a recorded rent payment. The Period it targets
// is the obligation month it pays against, which may differ from the
// payment date. Payments are immutable once recorded; corrections are
// made by deletion and re-entry.
type Payment struct {
	shared.BaseAggregateRoot
	LeaseID      uuid.UUID          `gorm:"type:uuid;not null;index;index:idx_payment_lease_period,priority:1"`
	PaymentDate  time.Time          `gorm:"not null"`
	Amount       decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	Period       valueobject.Period `gorm:"type:varchar(7);not null;index:idx_payment_lease_period,priority:2"`
	Method       PaymentMethod      `gorm:"type:varchar(20);not null"`
	ChequeNumber string             `gorm:"type:varchar(50)"`
	ChequeStatus ChequeStatus       `gorm:"type:varchar(20)"`
	Reference    string             `gorm:"type:varchar(100)"`
	Notes        string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a payment against a lease for an obligation
// period. Cheque payments must go through NewChequePayment, which
// enforces the required cheque metadata.
func NewPayment(leaseID uuid.UUID, paymentDate time.Time, amount valueobject.Money, period valueobject.Period, method PaymentMethod) (*Payment, error) {
	if method == PaymentMethodCheque {
		return nil, shared.NewDomainError("INVALID_CHEQUE", "Cheque payments require cheque number and status")
	}
	return newPayment(leaseID, paymentDate, amount, period, method)
}

func newPayment(leaseID uuid.UUID, paymentDate time.Time, amount valueobject.Money, period valueobject.Period, method PaymentMethod) (*Payment, error) {
	if leaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEASE", "Lease ID is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Unknown payment method")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}

	payment := &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LeaseID:           leaseID,
		PaymentDate:       paymentDate,
		Amount:            amount.Amount(),
		Period:            period,
		Method:            method,
	}

	payment.AddDomainEvent(NewPaymentRecordedEvent(payment))

	return payment, nil
}

// NewChequePayment records a cheque payment with its required
// cheque metadata.
func NewChequePayment(leaseID uuid.UUID, paymentDate time.Time, amount valueobject.Money, period valueobject.Period, chequeNumber string, chequeStatus ChequeStatus) (*Payment, error) {
	if chequeNumber == "" {
		return nil, shared.NewDomainError("INVALID_CHEQUE", "Cheque payments require a cheque number")
	}
	if !chequeStatus.IsValid() {
		return nil, shared.NewDomainError("INVALID_CHEQUE", "Cheque payments require a valid cheque status")
	}

	payment, err := newPayment(leaseID, paymentDate, amount, period, PaymentMethodCheque)
	if err != nil {
		return nil, err
	}
	payment.ChequeNumber = chequeNumber
	payment.ChequeStatus = chequeStatus

	return payment, nil
}

// GetAmountMoney returns the payment amount as a Money value object
func (p *Payment) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyFromDecimal(p.Amount)
}

// IsCheque returns true when the payment was made by cheque
func (p *Payment) IsCheque() bool {
	return p.Method == PaymentMethodCheque
}
