package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// CreateBuildingRequest represents a request to register a building
type CreateBuildingRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"required,min=1,max=500"`
	Notes   string `json:"notes"`
}

// BuildingResponse represents a building in API responses
type BuildingResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBuildingResponse converts a domain building to a response DTO
func ToBuildingResponse(b *property.Building) BuildingResponse {
	return BuildingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// CreateUnitRequest represents a request to register a unit
type CreateUnitRequest struct {
	BuildingID uuid.UUID       `json:"building_id" binding:"required"`
	Number     string          `json:"number" binding:"required,min=1,max=50"`
	Floor      int             `json:"floor"`
	Bedrooms   int             `json:"bedrooms" binding:"min=0"`
	ListedRent decimal.Decimal `json:"listed_rent"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID         uuid.UUID       `json:"id"`
	BuildingID uuid.UUID       `json:"building_id"`
	Number     string          `json:"number"`
	Floor      int             `json:"floor"`
	Bedrooms   int             `json:"bedrooms"`
	ListedRent decimal.Decimal `json:"listed_rent"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToUnitResponse converts a domain unit to a response DTO
func ToUnitResponse(u *property.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		BuildingID: u.BuildingID,
		Number:     u.Number,
		Floor:      u.Floor,
		Bedrooms:   u.Bedrooms,
		ListedRent: u.ListedRent,
		Status:     string(u.Status),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// CreateTenantRequest represents a request to register a tenant
type CreateTenantRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTenantResponse converts a domain tenant to a response DTO
func ToTenantResponse(t *property.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ListFilter represents shared pagination options for property lists
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
