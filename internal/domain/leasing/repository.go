package leasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
)

// LeaseRepository defines the persistence interface for leases
type LeaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Lease, error)
	// FindOpenByUnit returns the lease currently holding the unit
	// (status active or expiring_soon), or shared.ErrNotFound
	FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*Lease, error)
	FindByUnit(ctx context.Context, unitID uuid.UUID, filter shared.Filter) ([]Lease, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Lease, error)
	FindByStatuses(ctx context.Context, statuses []LeaseStatus, filter shared.Filter) ([]Lease, error)
	// FindIDsByStatuses returns only lease IDs, for batch jobs that
	// load each lease inside its own transaction scope
	FindIDsByStatuses(ctx context.Context, statuses []LeaseStatus) ([]uuid.UUID, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Lease, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, lease *Lease) error
	Delete(ctx context.Context, id uuid.UUID) error
}
