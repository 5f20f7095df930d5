package property

import (
	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// UnitStatus represents the occupancy status of a unit
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusOccupied  UnitStatus = "occupied"
)

// IsValid checks if the unit status is valid
func (s UnitStatus) IsValid() bool {
	return s == UnitStatusAvailable || s == UnitStatusOccupied
}

// Unit represents a rentable unit inside a building.
// Its occupancy status is driven by the lease lifecycle: at most one
// non-terminal lease may hold a unit at any time.
type Unit struct {
	shared.BaseAggregateRoot
	BuildingID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_unit_building_number,priority:1"`
	Number     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_unit_building_number,priority:2"`
	Floor      int             `gorm:"not null;default:0"`
	Bedrooms   int             `gorm:"not null;default:1"`
	ListedRent decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Status     UnitStatus      `gorm:"type:varchar(20);not null;default:'available'"`
}

// TableName returns the table name for GORM
func (Unit) TableName() string {
	return "units"
}

// NewUnit creates a new unit in available status
func NewUnit(buildingID uuid.UUID, number string, floor, bedrooms int, listedRent valueobject.Money) (*Unit, error) {
	if buildingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUILDING", "Building ID is required")
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Unit number cannot be empty")
	}
	if len(number) > 50 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Unit number cannot exceed 50 characters")
	}
	if bedrooms < 0 {
		return nil, shared.NewDomainError("INVALID_BEDROOMS", "Bedroom count cannot be negative")
	}
	if listedRent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RENT", "Listed rent cannot be negative")
	}

	unit := &Unit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BuildingID:        buildingID,
		Number:            number,
		Floor:             floor,
		Bedrooms:          bedrooms,
		ListedRent:        listedRent.Amount(),
		Status:            UnitStatusAvailable,
	}

	unit.AddDomainEvent(NewUnitCreatedEvent(unit))

	return unit, nil
}

// IsAvailable returns true if the unit has no occupying lease
func (u *Unit) IsAvailable() bool {
	return u.Status == UnitStatusAvailable
}

// MarkOccupied marks the unit as held by a lease.
// Fails when the unit is already occupied.
func (u *Unit) MarkOccupied() error {
	if u.Status == UnitStatusOccupied {
		return shared.ErrUnitOccupied
	}

	u.Status = UnitStatusOccupied
	u.Touch()
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitOccupancyChangedEvent(u, UnitStatusAvailable, UnitStatusOccupied))

	return nil
}

// MarkAvailable frees the unit after its lease ends.
// Freeing an already available unit is a no-op.
func (u *Unit) MarkAvailable() {
	if u.Status == UnitStatusAvailable {
		return
	}

	u.Status = UnitStatusAvailable
	u.Touch()
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitOccupancyChangedEvent(u, UnitStatusOccupied, UnitStatusAvailable))
}

// SetListedRent updates the advertised rent for future leases
func (u *Unit) SetListedRent(rent valueobject.Money) error {
	if rent.IsNegative() {
		return shared.NewDomainError("INVALID_RENT", "Listed rent cannot be negative")
	}

	u.ListedRent = rent.Amount()
	u.Touch()
	u.IncrementVersion()

	return nil
}

// GetListedRentMoney returns the listed rent as a Money value object
func (u *Unit) GetListedRentMoney() valueobject.Money {
	return valueobject.NewMoneyFromDecimal(u.ListedRent)
}
