package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents a request to record a rent payment
type RecordPaymentRequest struct {
	LeaseID      uuid.UUID       `json:"lease_id" binding:"required"`
	PaymentDate  time.Time       `json:"payment_date" binding:"required" time_format:"2006-01-02"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	ForMonth     int             `json:"for_month" binding:"required,min=1,max=12"`
	ForYear      int             `json:"for_year" binding:"required,min=2000,max=2200"`
	Method       string          `json:"method" binding:"required,oneof=cash bank_transfer cheque card online"`
	ChequeNumber string          `json:"cheque_number" binding:"max=50"`
	ChequeStatus string          `json:"cheque_status" binding:"omitempty,oneof=pending cleared bounced"`
	Reference    string          `json:"reference" binding:"max=100"`
	Notes        string          `json:"notes"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID           uuid.UUID       `json:"id"`
	LeaseID      uuid.UUID       `json:"lease_id"`
	PaymentDate  time.Time       `json:"payment_date"`
	Amount       decimal.Decimal `json:"amount"`
	Period       string          `json:"period"`
	Method       string          `json:"method"`
	ChequeNumber string          `json:"cheque_number,omitempty"`
	ChequeStatus string          `json:"cheque_status,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		LeaseID:      p.LeaseID,
		PaymentDate:  p.PaymentDate,
		Amount:       p.Amount,
		Period:       p.Period.String(),
		Method:       string(p.Method),
		ChequeNumber: p.ChequeNumber,
		ChequeStatus: string(p.ChequeStatus),
		Reference:    p.Reference,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}

// PaymentListFilter represents filter options for payment lists
type PaymentListFilter struct {
	LeaseID  string `form:"lease_id" binding:"omitempty,uuid"`
	Method   string `form:"method" binding:"omitempty,oneof=cash bank_transfer cheque card online"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// LedgerRowResponse represents one derived ledger month in API
// responses
type LedgerRowResponse struct {
	Period      string          `json:"period"`
	DueDate     time.Time       `json:"due_date"`
	RentDue     decimal.Decimal `json:"rent_due"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Balance     decimal.Decimal `json:"balance"`
	DaysOverdue int             `json:"days_overdue"`
	Status      string          `json:"status"`
}

// ToLedgerRowResponse converts a derived ledger row to a response DTO
func ToLedgerRowResponse(row leasing.LedgerRow) LedgerRowResponse {
	return LedgerRowResponse{
		Period:      row.Period.String(),
		DueDate:     row.DueDate,
		RentDue:     row.RentDue,
		AmountPaid:  row.AmountPaid,
		Balance:     row.Balance,
		DaysOverdue: row.DaysOverdue,
		Status:      string(row.Status),
	}
}

// PaymentSummaryResponse is the full derived ledger for a lease
type PaymentSummaryResponse struct {
	LeaseID      uuid.UUID           `json:"lease_id"`
	MonthlyRent  decimal.Decimal     `json:"monthly_rent"`
	Rows         []LedgerRowResponse `json:"rows"`
	TotalDue     decimal.Decimal     `json:"total_due"`
	TotalPaid    decimal.Decimal     `json:"total_paid"`
	TotalBalance decimal.Decimal     `json:"total_balance"`
}
