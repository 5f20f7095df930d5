package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var payment billing.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByLease finds all payments recorded against a lease
func (r *GormPaymentRepository) FindByLease(ctx context.Context, leaseID uuid.UUID, filter shared.Filter) ([]billing.Payment, error) {
	var payments []billing.Payment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&billing.Payment{}).Where("lease_id = ?", leaseID),
		filter,
	)

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByLeaseAndPeriod finds payments against one obligation month
func (r *GormPaymentRepository) FindByLeaseAndPeriod(ctx context.Context, leaseID uuid.UUID, period valueobject.Period) ([]billing.Payment, error) {
	var payments []billing.Payment
	if err := r.db.WithContext(ctx).
		Where("lease_id = ? AND period = ?", leaseID, period).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAll finds all payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Payment, error) {
	var payments []billing.Payment
	query := r.applyFilter(r.db.WithContext(ctx).Model(&billing.Payment{}), filter)

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&billing.Payment{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumByPeriod returns the total paid per obligation month for a lease.
// Months with no payments are absent from the map.
func (r *GormPaymentRepository) SumByPeriod(ctx context.Context, leaseID uuid.UUID) (map[valueobject.Period]decimal.Decimal, error) {
	type periodSum struct {
		Period valueobject.Period
		Total  decimal.Decimal
	}

	var rows []periodSum
	if err := r.db.WithContext(ctx).
		Model(&billing.Payment{}).
		Select("period, SUM(amount) AS total").
		Where("lease_id = ?", leaseID).
		Group("period").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[valueobject.Period]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.Period] = row.Total
	}
	return sums, nil
}

// SumForPeriod returns the total paid against one obligation month
func (r *GormPaymentRepository) SumForPeriod(ctx context.Context, leaseID uuid.UUID, period valueobject.Period) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&billing.Payment{}).
		Select("SUM(amount)").
		Where("lease_id = ? AND period = ?", leaseID, period).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("payment_date DESC")
	}

	return query
}

func (r *GormPaymentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "lease_id":
			query = query.Where("lease_id = ?", value)
		case "period":
			query = query.Where("period = ?", value)
		case "method":
			query = query.Where("method = ?", value)
		}
	}
	return query
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
