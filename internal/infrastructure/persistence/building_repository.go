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

// GormBuildingRepository implements BuildingRepository using GORM
type GormBuildingRepository struct {
	db *gorm.DB
}

// NewGormBuildingRepository creates a new GormBuildingRepository
func NewGormBuildingRepository(db *gorm.DB) *GormBuildingRepository {
	return &GormBuildingRepository{db: db}
}

// FindByID finds a building by its ID
func (r *GormBuildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Building, error) {
	var building property.Building
	if err := r.db.WithContext(ctx).First(&building, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &building, nil
}

// FindByName finds a building by its name
func (r *GormBuildingRepository) FindByName(ctx context.Context, name string) (*property.Building, error) {
	var building property.Building
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &building, nil
}

// FindAll finds all buildings matching the filter
func (r *GormBuildingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Building, error) {
	var buildings []property.Building
	query := r.applyFilter(r.db.WithContext(ctx).Model(&property.Building{}), filter)

	if err := query.Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

// Count counts buildings matching the filter
func (r *GormBuildingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&property.Building{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a building
func (r *GormBuildingRepository) Save(ctx context.Context, building *property.Building) error {
	return r.db.WithContext(ctx).Save(building).Error
}

// Delete deletes a building
func (r *GormBuildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&property.Building{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormBuildingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("name ASC")
	}

	return query
}

func (r *GormBuildingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR address LIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormBuildingRepository implements BuildingRepository
var _ property.BuildingRepository = (*GormBuildingRepository)(nil)
