package property

import (
	"strings"

	"github.com/pms/backend/internal/domain/shared"
)

// Tenant represents a renter who can hold leases
type Tenant struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(200);index"`
	Phone string `gorm:"type:varchar(50)"`
	Notes string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new tenant
func NewTenant(name, email, phone string) (*Tenant, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 200 characters")
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Tenant email is not valid")
	}

	tenant := &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(email),
		Phone:             phone,
	}

	tenant.AddDomainEvent(NewTenantCreatedEvent(tenant))

	return tenant, nil
}

// Update updates the tenant's contact information
func (t *Tenant) Update(name, email, phone, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Tenant email is not valid")
	}

	t.Name = name
	t.Email = strings.ToLower(email)
	t.Phone = phone
	t.Notes = notes
	t.Touch()
	t.IncrementVersion()

	return nil
}

// HasEmail returns true if the tenant has an email address on file
func (t *Tenant) HasEmail() bool {
	return t.Email != ""
}
