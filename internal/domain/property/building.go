package property

import (
	"github.com/pms/backend/internal/domain/shared"
)

// Building represents a managed property containing rental units
type Building struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Address string `gorm:"type:text;not null"`
	Notes   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Building) TableName() string {
	return "buildings"
}

// NewBuilding creates a new building
func NewBuilding(name, address string) (*Building, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Building name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Building name cannot exceed 200 characters")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Building address cannot be empty")
	}

	building := &Building{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           address,
	}

	building.AddDomainEvent(NewBuildingCreatedEvent(building))

	return building, nil
}

// Update updates the building's basic information
func (b *Building) Update(name, address, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Building name cannot be empty")
	}
	if address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Building address cannot be empty")
	}

	b.Name = name
	b.Address = address
	b.Notes = notes
	b.Touch()
	b.IncrementVersion()

	return nil
}
