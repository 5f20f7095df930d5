package collection

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/application/leasing"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/shopspring/decimal"
)

// OverdueDetailResponse represents one overdue month in API responses
type OverdueDetailResponse struct {
	ID     uuid.UUID       `json:"id"`
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// NoticeResponse represents an overdue notice in API responses
type NoticeResponse struct {
	ID          uuid.UUID               `json:"id"`
	LeaseID     uuid.UUID               `json:"lease_id"`
	Status      string                  `json:"status"`
	Content     string                  `json:"content"`
	Notes       string                  `json:"notes"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
	Details     []OverdueDetailResponse `json:"details"`
	SentAt      *time.Time              `json:"sent_at,omitempty"`
	ResolvedAt  *time.Time              `json:"resolved_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// ToNoticeResponse converts a domain notice to a response DTO
func ToNoticeResponse(n *collection.PaymentOverdueNotice) NoticeResponse {
	details := make([]OverdueDetailResponse, len(n.Details))
	for i, d := range n.Details {
		details[i] = OverdueDetailResponse{
			ID:     d.ID,
			Period: d.Period.String(),
			Amount: d.Amount,
		}
	}
	return NoticeResponse{
		ID:          n.ID,
		LeaseID:     n.LeaseID,
		Status:      string(n.Status),
		Content:     n.Content,
		Notes:       n.Notes,
		TotalAmount: n.TotalAmount(),
		Details:     details,
		SentAt:      n.SentAt,
		ResolvedAt:  n.ResolvedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

// NoticeListFilter represents filter options for notice lists
type NoticeListFilter struct {
	LeaseID  string `form:"lease_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=draft sent acknowledged resolved"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SweepResult summarizes a batch overdue sweep run
type SweepResult struct {
	LeasesExamined int              `json:"leases_examined"`
	Notices        []NoticeResponse `json:"notices"`
	Failures       int              `json:"failures"`
}

// NoticeDocumentData is the data contract handed to the document
// rendering collaborator. The engine supplies data, never markup.
type NoticeDocumentData struct {
	Notice  NoticeResponse        `json:"notice"`
	Lease   leasing.LeaseResponse `json:"lease"`
	Tenant  DocumentParty         `json:"tenant"`
	Unit    DocumentUnit          `json:"unit"`
	IssueOn time.Time             `json:"issue_on"`
}

// DocumentParty identifies the tenant a notice addresses
type DocumentParty struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// DocumentUnit identifies the rented unit for the notice letterhead
type DocumentUnit struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	Building string    `json:"building"`
	Address  string    `json:"address"`
}
