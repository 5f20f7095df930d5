package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/leasing"
)

// TransactionalRepositories provides repositories bound to one
// running transaction.
type TransactionalRepositories interface {
	LeaseRepo() leasing.LeaseRepository
	PaymentRepo() billing.PaymentRepository
	NoticeRepo() collection.NoticeRepository
}

// LeaseTransactionScope serializes notice writes per lease. Execute
// runs fn inside a transaction that holds a row lock on the lease, so
// the sweep cannot add a detail for a month a concurrently arriving
// payment has just paid off. Different leases proceed in parallel.
type LeaseTransactionScope interface {
	Execute(ctx context.Context, leaseID uuid.UUID, fn func(repos TransactionalRepositories) error) error
}
