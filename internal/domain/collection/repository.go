package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
)

// NoticeRepository defines the persistence interface for overdue
// notices. Implementations load and save a notice together with its
// details.
type NoticeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentOverdueNotice, error)
	FindByLease(ctx context.Context, leaseID uuid.UUID, filter shared.Filter) ([]PaymentOverdueNotice, error)
	// FindOpenByLease returns every notice for the lease whose status
	// is draft, sent or acknowledged
	FindOpenByLease(ctx context.Context, leaseID uuid.UUID) ([]PaymentOverdueNotice, error)
	// FindOpenWithDetail returns the open notices holding a detail for
	// the given lease period
	FindOpenWithDetail(ctx context.Context, leaseID uuid.UUID, period valueobject.Period) ([]PaymentOverdueNotice, error)
	// OpenPeriods returns every period already covered by an open
	// detail on any open notice for the lease
	OpenPeriods(ctx context.Context, leaseID uuid.UUID) (map[valueobject.Period]bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentOverdueNotice, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, notice *PaymentOverdueNotice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
