package property

import (
	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeBuilding = "Building"
	AggregateTypeUnit     = "Unit"
	AggregateTypeTenant   = "Tenant"
)

// Event type constants
const (
	EventTypeBuildingCreated      = "BuildingCreated"
	EventTypeUnitCreated          = "UnitCreated"
	EventTypeUnitOccupancyChanged = "UnitOccupancyChanged"
	EventTypeTenantCreated        = "TenantCreated"
)

// BuildingCreatedEvent is published when a new building is registered
type BuildingCreatedEvent struct {
	shared.BaseDomainEvent
	BuildingID uuid.UUID `json:"building_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
}

// NewBuildingCreatedEvent creates a new BuildingCreatedEvent
func NewBuildingCreatedEvent(building *Building) *BuildingCreatedEvent {
	return &BuildingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBuildingCreated, AggregateTypeBuilding, building.ID),
		BuildingID:      building.ID,
		Name:            building.Name,
		Address:         building.Address,
	}
}

// UnitCreatedEvent is published when a new unit is registered
type UnitCreatedEvent struct {
	shared.BaseDomainEvent
	UnitID     uuid.UUID `json:"unit_id"`
	BuildingID uuid.UUID `json:"building_id"`
	Number     string    `json:"number"`
}

// NewUnitCreatedEvent creates a new UnitCreatedEvent
func NewUnitCreatedEvent(unit *Unit) *UnitCreatedEvent {
	return &UnitCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitCreated, AggregateTypeUnit, unit.ID),
		UnitID:          unit.ID,
		BuildingID:      unit.BuildingID,
		Number:          unit.Number,
	}
}

// UnitOccupancyChangedEvent is published when a unit is taken or freed
type UnitOccupancyChangedEvent struct {
	shared.BaseDomainEvent
	UnitID    uuid.UUID  `json:"unit_id"`
	Number    string     `json:"number"`
	OldStatus UnitStatus `json:"old_status"`
	NewStatus UnitStatus `json:"new_status"`
}

// NewUnitOccupancyChangedEvent creates a new UnitOccupancyChangedEvent
func NewUnitOccupancyChangedEvent(unit *Unit, oldStatus, newStatus UnitStatus) *UnitOccupancyChangedEvent {
	return &UnitOccupancyChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitOccupancyChanged, AggregateTypeUnit, unit.ID),
		UnitID:          unit.ID,
		Number:          unit.Number,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// TenantCreatedEvent is published when a new tenant is registered
type TenantCreatedEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID `json:"tenant_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
}

// NewTenantCreatedEvent creates a new TenantCreatedEvent
func NewTenantCreatedEvent(tenant *Tenant) *TenantCreatedEvent {
	return &TenantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantCreated, AggregateTypeTenant, tenant.ID),
		TenantID:        tenant.ID,
		Name:            tenant.Name,
		Email:           tenant.Email,
	}
}
