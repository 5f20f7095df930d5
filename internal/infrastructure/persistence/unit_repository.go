package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/property"
	"github.com/pms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	var unit property.Unit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// FindByBuilding finds all units in a building
func (r *GormUnitRepository) FindByBuilding(ctx context.Context, buildingID uuid.UUID, filter shared.Filter) ([]property.Unit, error) {
	var units []property.Unit
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&property.Unit{}).Where("building_id = ?", buildingID),
		filter,
	)

	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// FindByStatus finds units by occupancy status
func (r *GormUnitRepository) FindByStatus(ctx context.Context, status property.UnitStatus, filter shared.Filter) ([]property.Unit, error) {
	var units []property.Unit
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&property.Unit{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// FindAll finds all units matching the filter
func (r *GormUnitRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Unit, error) {
	var units []property.Unit
	query := r.applyFilter(r.db.WithContext(ctx).Model(&property.Unit{}), filter)

	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// Count counts units matching the filter
func (r *GormUnitRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&property.Unit{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *property.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

// Delete deletes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&property.Unit{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormUnitRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("number ASC")
	}

	return query
}

func (r *GormUnitRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("number LIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "building_id":
			query = query.Where("building_id = ?", value)
		}
	}

	return query
}

// Ensure GormUnitRepository implements UnitRepository
var _ property.UnitRepository = (*GormUnitRepository)(nil)
