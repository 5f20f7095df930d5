package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"gorm.io/gorm"
)

// GormNoticeRepository implements NoticeRepository using GORM
type GormNoticeRepository struct {
	db *gorm.DB
}

// NewGormNoticeRepository creates a new GormNoticeRepository
func NewGormNoticeRepository(db *gorm.DB) *GormNoticeRepository {
	return &GormNoticeRepository{db: db}
}

// FindByID finds a notice with its details by ID
func (r *GormNoticeRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.PaymentOverdueNotice, error) {
	var notice collection.PaymentOverdueNotice
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&notice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &notice, nil
}

// FindByLease finds all notices for a lease
func (r *GormNoticeRepository) FindByLease(ctx context.Context, leaseID uuid.UUID, filter shared.Filter) ([]collection.PaymentOverdueNotice, error) {
	var notices []collection.PaymentOverdueNotice
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&collection.PaymentOverdueNotice{}).
			Preload("Details").
			Where("lease_id = ?", leaseID),
		filter,
	)

	if err := query.Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// FindOpenByLease finds the notices for a lease that still track
// unpaid months
func (r *GormNoticeRepository) FindOpenByLease(ctx context.Context, leaseID uuid.UUID) ([]collection.PaymentOverdueNotice, error) {
	var notices []collection.PaymentOverdueNotice
	if err := r.db.WithContext(ctx).
		Preload("Details").
		Where("lease_id = ? AND status IN ?", leaseID, collection.OpenNoticeStatuses).
		Order("created_at ASC").
		Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// FindOpenWithDetail finds open notices that track the given period
func (r *GormNoticeRepository) FindOpenWithDetail(ctx context.Context, leaseID uuid.UUID, period valueobject.Period) ([]collection.PaymentOverdueNotice, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&collection.OverdueDetail{}).
		Joins("JOIN payment_overdue_notices ON payment_overdue_notices.id = payment_overdue_details.notice_id").
		Where("payment_overdue_notices.lease_id = ? AND payment_overdue_notices.status IN ? AND payment_overdue_details.period = ?",
			leaseID, collection.OpenNoticeStatuses, period).
		Pluck("payment_overdue_details.notice_id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []collection.PaymentOverdueNotice{}, nil
	}

	var notices []collection.PaymentOverdueNotice
	if err := r.db.WithContext(ctx).
		Preload("Details").
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// OpenPeriods returns the set of periods already covered by an open
// notice for the lease
func (r *GormNoticeRepository) OpenPeriods(ctx context.Context, leaseID uuid.UUID) (map[valueobject.Period]bool, error) {
	var periods []valueobject.Period
	if err := r.db.WithContext(ctx).
		Model(&collection.OverdueDetail{}).
		Joins("JOIN payment_overdue_notices ON payment_overdue_notices.id = payment_overdue_details.notice_id").
		Where("payment_overdue_notices.lease_id = ? AND payment_overdue_notices.status IN ?",
			leaseID, collection.OpenNoticeStatuses).
		Pluck("payment_overdue_details.period", &periods).Error; err != nil {
		return nil, err
	}

	covered := make(map[valueobject.Period]bool, len(periods))
	for _, p := range periods {
		covered[p] = true
	}
	return covered, nil
}

// FindAll finds all notices matching the filter
func (r *GormNoticeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]collection.PaymentOverdueNotice, error) {
	var notices []collection.PaymentOverdueNotice
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&collection.PaymentOverdueNotice{}).Preload("Details"),
		filter,
	)

	if err := query.Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// Count counts notices matching the filter
func (r *GormNoticeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&collection.PaymentOverdueNotice{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists the notice and synchronizes its details: settled
// months that were removed from the aggregate are deleted from the
// table, everything else is upserted.
func (r *GormNoticeRepository) Save(ctx context.Context, notice *collection.PaymentOverdueNotice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Details").Save(notice).Error; err != nil {
			return err
		}

		keep := make([]uuid.UUID, len(notice.Details))
		for i := range notice.Details {
			keep[i] = notice.Details[i].ID
		}

		del := tx.Where("notice_id = ?", notice.ID)
		if len(keep) > 0 {
			del = del.Where("id NOT IN ?", keep)
		}
		if err := del.Delete(&collection.OverdueDetail{}).Error; err != nil {
			return err
		}

		for i := range notice.Details {
			if err := tx.Save(&notice.Details[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a notice and its details
func (r *GormNoticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notice_id = ?", id).Delete(&collection.OverdueDetail{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&collection.PaymentOverdueNotice{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormNoticeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("created_at DESC")
	}

	return query
}

func (r *GormNoticeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "lease_id":
			query = query.Where("lease_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

// Ensure GormNoticeRepository implements NoticeRepository
var _ collection.NoticeRepository = (*GormNoticeRepository)(nil)
