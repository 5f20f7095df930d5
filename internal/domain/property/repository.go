package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
)

// BuildingRepository defines the persistence interface for buildings
type BuildingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Building, error)
	FindByName(ctx context.Context, name string) (*Building, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Building, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, building *Building) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the persistence interface for units
type UnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	FindByBuilding(ctx context.Context, buildingID uuid.UUID, filter shared.Filter) ([]Unit, error)
	FindByStatus(ctx context.Context, status UnitStatus, filter shared.Filter) ([]Unit, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Unit, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, unit *Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TenantRepository defines the persistence interface for tenants
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindByEmail(ctx context.Context, email string) (*Tenant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}
