package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/property"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
)

// PropertyService handles the building/unit/tenant registry. These
// are read-mostly identity entities; the lease lifecycle drives the
// only interesting state, unit occupancy.
type PropertyService struct {
	buildingRepo property.BuildingRepository
	unitRepo     property.UnitRepository
	tenantRepo   property.TenantRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	buildingRepo property.BuildingRepository,
	unitRepo property.UnitRepository,
	tenantRepo property.TenantRepository,
) *PropertyService {
	return &PropertyService{
		buildingRepo: buildingRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
	}
}

// CreateBuilding registers a new building
func (s *PropertyService) CreateBuilding(ctx context.Context, req CreateBuildingRequest) (*BuildingResponse, error) {
	if _, err := s.buildingRepo.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A building with this name already exists")
	}

	building, err := property.NewBuilding(req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	building.Notes = req.Notes

	if err := s.buildingRepo.Save(ctx, building); err != nil {
		return nil, err
	}

	response := ToBuildingResponse(building)
	return &response, nil
}

// GetBuilding retrieves a building by ID
func (s *PropertyService) GetBuilding(ctx context.Context, id uuid.UUID) (*BuildingResponse, error) {
	building, err := s.buildingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBuildingResponse(building)
	return &response, nil
}

// ListBuildings retrieves buildings with pagination
func (s *PropertyService) ListBuildings(ctx context.Context, filter ListFilter) ([]BuildingResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	buildings, err := s.buildingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.buildingRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BuildingResponse, len(buildings))
	for i := range buildings {
		responses[i] = ToBuildingResponse(&buildings[i])
	}
	return responses, total, nil
}

// CreateUnit registers a new unit inside a building
func (s *PropertyService) CreateUnit(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error) {
	if _, err := s.buildingRepo.FindByID(ctx, req.BuildingID); err != nil {
		return nil, err
	}

	rent := valueobject.NewMoneyFromDecimal(req.ListedRent)
	unit, err := property.NewUnit(req.BuildingID, req.Number, req.Floor, req.Bedrooms, rent)
	if err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	response := ToUnitResponse(unit)
	return &response, nil
}

// GetUnit retrieves a unit by ID
func (s *PropertyService) GetUnit(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUnitResponse(unit)
	return &response, nil
}

// ListUnits retrieves units, optionally filtered to available ones or
// to one building
func (s *PropertyService) ListUnits(ctx context.Context, buildingID *uuid.UUID, availableOnly bool, filter ListFilter) ([]UnitResponse, int64, error) {
	domainFilter := toDomainFilter(filter)
	if availableOnly {
		domainFilter.Filters = map[string]any{"status": string(property.UnitStatusAvailable)}
	}

	var (
		units []property.Unit
		err   error
	)
	if buildingID != nil {
		units, err = s.unitRepo.FindByBuilding(ctx, *buildingID, domainFilter)
	} else {
		units, err = s.unitRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.unitRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = ToUnitResponse(&units[i])
	}
	return responses, total, nil
}

// CreateTenant registers a new tenant
func (s *PropertyService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	tenant, err := property.NewTenant(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// GetTenant retrieves a tenant by ID
func (s *PropertyService) GetTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTenantResponse(tenant)
	return &response, nil
}

// ListTenants retrieves tenants with pagination
func (s *PropertyService) ListTenants(ctx context.Context, filter ListFilter) ([]TenantResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	tenants, err := s.tenantRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tenantRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses, total, nil
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	return domainFilter
}
