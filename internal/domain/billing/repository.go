package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the persistence interface for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByLease(ctx context.Context, leaseID uuid.UUID, filter shared.Filter) ([]Payment, error)
	FindByLeaseAndPeriod(ctx context.Context, leaseID uuid.UUID, period valueobject.Period) ([]Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// SumByPeriod returns the total paid per period for a lease,
	// summed across all payments
	SumByPeriod(ctx context.Context, leaseID uuid.UUID) (map[valueobject.Period]decimal.Decimal, error)
	// SumForPeriod returns the total paid for one lease period
	SumForPeriod(ctx context.Context, leaseID uuid.UUID, period valueobject.Period) (decimal.Decimal, error)
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
