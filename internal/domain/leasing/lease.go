package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LeaseStatus represents the lifecycle status of a lease
type LeaseStatus string

const (
	LeaseStatusActive       LeaseStatus = "active"
	LeaseStatusExpiringSoon LeaseStatus = "expiring_soon"
	LeaseStatusExpired      LeaseStatus = "expired"
	LeaseStatusRenewed      LeaseStatus = "renewed"
	LeaseStatusCancelled    LeaseStatus = "cancelled"
)

// IsValid checks if the lease status is valid
func (s LeaseStatus) IsValid() bool {
	switch s {
	case LeaseStatusActive, LeaseStatusExpiringSoon, LeaseStatusExpired,
		LeaseStatusRenewed, LeaseStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that are never recomputed again
func (s LeaseStatus) IsTerminal() bool {
	return s == LeaseStatusRenewed || s == LeaseStatusCancelled
}

// IsOpen returns true for statuses under which the lease holds its unit
func (s LeaseStatus) IsOpen() bool {
	return s == LeaseStatusActive || s == LeaseStatusExpiringSoon
}

// How far ahead of the end date a lease is flagged as expiring soon,
// and how early a renewal may be signed.
const (
	ExpiringSoonWindowMonths = 1
	RenewalWindowMonths      = 3
)

// Lease represents a rental agreement binding a tenant to a unit for a
// term at a fixed monthly rent. It is the aggregate root the ledger,
// the status machine and the overdue notices all hang off.
//
// Status is derived state: outside of the two terminal transitions
// (renewal, cancellation) it must always be recomputable from the term
// dates and today's calendar via DeriveStatus.
type Lease struct {
	shared.BaseAggregateRoot
	UnitID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthlyRent   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StartDate     time.Time       `gorm:"not null"`
	EndDate       time.Time       `gorm:"not null;index"`
	Status        LeaseStatus     `gorm:"type:varchar(20);not null;default:'active';index"`
	PredecessorID *uuid.UUID      `gorm:"type:uuid"`
	SuccessorID   *uuid.UUID      `gorm:"type:uuid"`
	RenewedAt     *time.Time      `gorm:""`
	CancelledAt   *time.Time      `gorm:""`
	CancelReason  string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Lease) TableName() string {
	return "leases"
}

// NewLease creates a new lease. The initial status is derived from the
// term and today's date, so a back-dated lease starts out expired
// rather than active.
func NewLease(unitID, tenantID uuid.UUID, rent valueobject.Money, startDate, endDate time.Time) (*Lease, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID is required")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID is required")
	}
	if !rent.IsPositive() {
		return nil, shared.NewDomainError("INVALID_RENT", "Monthly rent must be positive")
	}
	if endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_TERM", "Lease end date cannot be before start date")
	}

	lease := &Lease{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UnitID:            unitID,
		TenantID:          tenantID,
		MonthlyRent:       rent.Amount(),
		StartDate:         startDate,
		EndDate:           endDate,
		Status:            DeriveStatus(endDate, time.Now()),
	}

	lease.AddDomainEvent(NewLeaseCreatedEvent(lease))

	return lease, nil
}

// DeriveStatus computes the non-terminal lease status from the end
// date and today's calendar.
func DeriveStatus(endDate, today time.Time) LeaseStatus {
	switch {
	case endDate.Before(today):
		return LeaseStatusExpired
	case !today.Before(endDate.AddDate(0, -ExpiringSoonWindowMonths, 0)):
		return LeaseStatusExpiringSoon
	default:
		return LeaseStatusActive
	}
}

// RecomputeStatus re-derives the status from the calendar. Terminal
// statuses are sticky and are never touched. Returns true when the
// status actually changed.
func (l *Lease) RecomputeStatus(today time.Time) bool {
	if l.Status.IsTerminal() {
		return false
	}

	derived := DeriveStatus(l.EndDate, today)
	if derived == l.Status {
		return false
	}

	oldStatus := l.Status
	l.Status = derived
	l.Touch()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseStatusChangedEvent(l, oldStatus, derived))

	return true
}

// CanRenew reports whether today falls inside the renewal window
func (l *Lease) CanRenew(today time.Time) bool {
	return !today.Before(l.EndDate.AddDate(0, -RenewalWindowMonths, 0))
}

// Renew closes this lease as renewed and spawns a successor lease on
// the same unit and tenant with the given term and rent. Renewal is
// only allowed inside the renewal window; earlier attempts are
// rejected, not ignored.
func (l *Lease) Renew(today, newStart, newEnd time.Time, newRent valueobject.Money) (*Lease, error) {
	if l.Status.IsTerminal() {
		return nil, shared.NewDomainError("INVALID_STATE", "Lease is already renewed or cancelled")
	}
	if !l.CanRenew(today) {
		return nil, shared.NewDomainError("RENEWAL_TOO_EARLY", "Lease can only be renewed within the renewal window before its end date")
	}
	if !newStart.After(l.EndDate) {
		return nil, shared.NewDomainError("INVALID_TERM", "Successor lease must start after the current lease ends")
	}

	successor, err := NewLease(l.UnitID, l.TenantID, newRent, newStart, newEnd)
	if err != nil {
		return nil, err
	}
	predecessorID := l.ID
	successor.PredecessorID = &predecessorID

	oldStatus := l.Status
	now := time.Now()
	l.Status = LeaseStatusRenewed
	l.RenewedAt = &now
	successorID := successor.ID
	l.SuccessorID = &successorID
	l.Touch()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseRenewedEvent(l, successor, oldStatus))

	return successor, nil
}

// Cancel terminates the lease before its natural end. The unit is
// freed by the lifecycle service as part of the same operation.
func (l *Lease) Cancel(reason string) error {
	if l.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Lease is already renewed or cancelled")
	}

	oldStatus := l.Status
	now := time.Now()
	l.Status = LeaseStatusCancelled
	l.CancelledAt = &now
	l.CancelReason = reason
	l.Touch()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseCancelledEvent(l, oldStatus, reason))

	return nil
}

// Periods returns every calendar month the lease term touches
func (l *Lease) Periods() ([]valueobject.Period, error) {
	return valueobject.PeriodsCovering(l.StartDate, l.EndDate)
}

// GetMonthlyRentMoney returns the monthly rent as a Money value object
func (l *Lease) GetMonthlyRentMoney() valueobject.Money {
	return valueobject.NewMoneyFromDecimal(l.MonthlyRent)
}
