package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLeaseRepository implements LeaseRepository using GORM
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new GormLeaseRepository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByID finds a lease by its ID
func (r *GormLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Lease, error) {
	var lease leasing.Lease
	if err := r.db.WithContext(ctx).First(&lease, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lease, nil
}

// FindOpenByUnit returns the lease currently holding the unit, or
// shared.ErrNotFound when the unit is free
func (r *GormLeaseRepository) FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*leasing.Lease, error) {
	var lease leasing.Lease
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status IN ?", unitID,
			[]leasing.LeaseStatus{leasing.LeaseStatusActive, leasing.LeaseStatusExpiringSoon}).
		First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lease, nil
}

// FindByUnit finds all leases ever signed on a unit
func (r *GormLeaseRepository) FindByUnit(ctx context.Context, unitID uuid.UUID, filter shared.Filter) ([]leasing.Lease, error) {
	var leases []leasing.Lease
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&leasing.Lease{}).Where("unit_id = ?", unitID),
		filter,
	)

	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// FindByTenant finds all leases held by a tenant
func (r *GormLeaseRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]leasing.Lease, error) {
	var leases []leasing.Lease
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&leasing.Lease{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// FindByStatuses finds leases in any of the given statuses
func (r *GormLeaseRepository) FindByStatuses(ctx context.Context, statuses []leasing.LeaseStatus, filter shared.Filter) ([]leasing.Lease, error) {
	var leases []leasing.Lease
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&leasing.Lease{}).Where("status IN ?", statuses),
		filter,
	)

	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// FindIDsByStatuses returns only lease IDs, for batch jobs that load
// each lease inside its own transaction scope
func (r *GormLeaseRepository) FindIDsByStatuses(ctx context.Context, statuses []leasing.LeaseStatus) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&leasing.Lease{}).
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// FindAll finds all leases matching the filter
func (r *GormLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Lease, error) {
	var leases []leasing.Lease
	query := r.applyFilter(r.db.WithContext(ctx).Model(&leasing.Lease{}), filter)

	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// Count counts leases matching the filter
func (r *GormLeaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&leasing.Lease{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a lease
func (r *GormLeaseRepository) Save(ctx context.Context, lease *leasing.Lease) error {
	return r.db.WithContext(ctx).Save(lease).Error
}

// Delete deletes a lease
func (r *GormLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&leasing.Lease{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormLeaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("start_date DESC")
	}

	return query
}

func (r *GormLeaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "unit_id":
			query = query.Where("unit_id = ?", value)
		case "tenant_id":
			query = query.Where("tenant_id = ?", value)
		}
	}
	return query
}

// Ensure GormLeaseRepository implements LeaseRepository
var _ leasing.LeaseRepository = (*GormLeaseRepository)(nil)
