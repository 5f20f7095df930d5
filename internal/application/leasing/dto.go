package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/shopspring/decimal"
)

// CreateLeaseRequest represents a request to sign a new lease
type CreateLeaseRequest struct {
	UnitID      uuid.UUID       `json:"unit_id" binding:"required"`
	TenantID    uuid.UUID       `json:"tenant_id" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" binding:"required"`
	StartDate   time.Time       `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate     time.Time       `json:"end_date" binding:"required" time_format:"2006-01-02"`
}

// RenewLeaseRequest represents a request to renew a lease into a
// successor term
type RenewLeaseRequest struct {
	StartDate   time.Time        `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate     time.Time        `json:"end_date" binding:"required" time_format:"2006-01-02"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent"`
}

// CancelLeaseRequest represents a request to cancel a lease early
type CancelLeaseRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// LeaseResponse represents a lease in API responses
type LeaseResponse struct {
	ID            uuid.UUID       `json:"id"`
	UnitID        uuid.UUID       `json:"unit_id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Status        string          `json:"status"`
	PredecessorID *uuid.UUID      `json:"predecessor_id,omitempty"`
	SuccessorID   *uuid.UUID      `json:"successor_id,omitempty"`
	RenewedAt     *time.Time      `json:"renewed_at,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason  string          `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// ToLeaseResponse converts a domain lease to a response DTO
func ToLeaseResponse(l *leasing.Lease) LeaseResponse {
	return LeaseResponse{
		ID:            l.ID,
		UnitID:        l.UnitID,
		TenantID:      l.TenantID,
		MonthlyRent:   l.MonthlyRent,
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		Status:        string(l.Status),
		PredecessorID: l.PredecessorID,
		SuccessorID:   l.SuccessorID,
		RenewedAt:     l.RenewedAt,
		CancelledAt:   l.CancelledAt,
		CancelReason:  l.CancelReason,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		Version:       l.Version,
	}
}

// LeaseListFilter represents filter options for lease lists
type LeaseListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=active expiring_soon expired renewed cancelled"`
	UnitID   string `form:"unit_id" binding:"omitempty,uuid"`
	TenantID string `form:"tenant_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// RecomputeResult summarizes a batch status recompute run
type RecomputeResult struct {
	Examined int `json:"examined"`
	Changed  int `json:"changed"`
	Freed    int `json:"freed_units"`
}
