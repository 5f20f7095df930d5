package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeLease = "Lease"

// Event type constants
const (
	EventTypeLeaseCreated       = "LeaseCreated"
	EventTypeLeaseStatusChanged = "LeaseStatusChanged"
	EventTypeLeaseRenewed       = "LeaseRenewed"
	EventTypeLeaseCancelled     = "LeaseCancelled"
)

// LeaseCreatedEvent is published when a new lease is signed
type LeaseCreatedEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID       `json:"lease_id"`
	UnitID      uuid.UUID       `json:"unit_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
}

// NewLeaseCreatedEvent creates a new LeaseCreatedEvent
func NewLeaseCreatedEvent(lease *Lease) *LeaseCreatedEvent {
	return &LeaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCreated, AggregateTypeLease, lease.ID),
		LeaseID:         lease.ID,
		UnitID:          lease.UnitID,
		TenantID:        lease.TenantID,
		MonthlyRent:     lease.MonthlyRent,
		StartDate:       lease.StartDate,
		EndDate:         lease.EndDate,
	}
}

// LeaseStatusChangedEvent is published when the derived status moves
type LeaseStatusChangedEvent struct {
	shared.BaseDomainEvent
	LeaseID   uuid.UUID   `json:"lease_id"`
	UnitID    uuid.UUID   `json:"unit_id"`
	OldStatus LeaseStatus `json:"old_status"`
	NewStatus LeaseStatus `json:"new_status"`
}

// NewLeaseStatusChangedEvent creates a new LeaseStatusChangedEvent
func NewLeaseStatusChangedEvent(lease *Lease, oldStatus, newStatus LeaseStatus) *LeaseStatusChangedEvent {
	return &LeaseStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseStatusChanged, AggregateTypeLease, lease.ID),
		LeaseID:         lease.ID,
		UnitID:          lease.UnitID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// LeaseRenewedEvent is published when a lease is renewed into a successor
type LeaseRenewedEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID   `json:"lease_id"`
	SuccessorID uuid.UUID   `json:"successor_id"`
	UnitID      uuid.UUID   `json:"unit_id"`
	TenantID    uuid.UUID   `json:"tenant_id"`
	OldStatus   LeaseStatus `json:"old_status"`
	NewEndDate  time.Time   `json:"new_end_date"`
}

// NewLeaseRenewedEvent creates a new LeaseRenewedEvent
func NewLeaseRenewedEvent(lease, successor *Lease, oldStatus LeaseStatus) *LeaseRenewedEvent {
	return &LeaseRenewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseRenewed, AggregateTypeLease, lease.ID),
		LeaseID:         lease.ID,
		SuccessorID:     successor.ID,
		UnitID:          lease.UnitID,
		TenantID:        lease.TenantID,
		OldStatus:       oldStatus,
		NewEndDate:      successor.EndDate,
	}
}

// LeaseCancelledEvent is published when a lease is cancelled early
type LeaseCancelledEvent struct {
	shared.BaseDomainEvent
	LeaseID   uuid.UUID   `json:"lease_id"`
	UnitID    uuid.UUID   `json:"unit_id"`
	OldStatus LeaseStatus `json:"old_status"`
	Reason    string      `json:"reason,omitempty"`
}

// NewLeaseCancelledEvent creates a new LeaseCancelledEvent
func NewLeaseCancelledEvent(lease *Lease, oldStatus LeaseStatus, reason string) *LeaseCancelledEvent {
	return &LeaseCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCancelled, AggregateTypeLease, lease.ID),
		LeaseID:         lease.ID,
		UnitID:          lease.UnitID,
		OldStatus:       oldStatus,
		Reason:          reason,
	}
}
