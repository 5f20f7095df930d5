package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	appcollection "github.com/pms/backend/internal/application/collection"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLeaseTransactionScope serializes sweep and reconciliation writes
// per lease by taking a row lock on the lease inside a transaction.
// SQLite has no row locks and rejects FOR UPDATE, so the lock is only
// taken on Postgres; SQLite serializes writers anyway.
type GormLeaseTransactionScope struct {
	db *gorm.DB
}

// NewGormLeaseTransactionScope creates a new GormLeaseTransactionScope
func NewGormLeaseTransactionScope(db *gorm.DB) *GormLeaseTransactionScope {
	return &GormLeaseTransactionScope{db: db}
}

// Execute runs fn inside a transaction holding a lock on the lease row
func (s *GormLeaseTransactionScope) Execute(ctx context.Context, leaseID uuid.UUID, fn func(repos appcollection.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var lease leasing.Lease
		if err := query.First(&lease, "id = ?", leaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		return fn(&txRepositories{
			leases:   NewGormLeaseRepository(tx),
			payments: NewGormPaymentRepository(tx),
			notices:  NewGormNoticeRepository(tx),
		})
	})
}

type txRepositories struct {
	leases   *GormLeaseRepository
	payments *GormPaymentRepository
	notices  *GormNoticeRepository
}

func (r *txRepositories) LeaseRepo() leasing.LeaseRepository      { return r.leases }
func (r *txRepositories) PaymentRepo() billing.PaymentRepository  { return r.payments }
func (r *txRepositories) NoticeRepo() collection.NoticeRepository { return r.notices }

// Ensure GormLeaseTransactionScope implements LeaseTransactionScope
var _ appcollection.LeaseTransactionScope = (*GormLeaseTransactionScope)(nil)
