package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// sweepQualifyingStatuses are the lease statuses the batch sweep
// covers. Terminal leases are skipped; a renewed lease's successor
// carries the obligation forward.
var sweepQualifyingStatuses = []leasing.LeaseStatus{
	leasing.LeaseStatusActive,
	leasing.LeaseStatusExpiringSoon,
	leasing.LeaseStatusExpired,
}

// OverdueSweepService scans lease ledgers for months overdue past the
// notice threshold and folds them into formal overdue notices. Runs
// daily from the scheduler and on demand over HTTP; both re-running
// and running concurrently across leases are safe.
type OverdueSweepService struct {
	leaseRepo leasing.LeaseRepository
	scope     LeaseTransactionScope
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewOverdueSweepService creates a new OverdueSweepService
func NewOverdueSweepService(
	leaseRepo leasing.LeaseRepository,
	scope LeaseTransactionScope,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *OverdueSweepService {
	return &OverdueSweepService{
		leaseRepo: leaseRepo,
		scope:     scope,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// RunForLease sweeps one lease. It builds the ledger, selects months
// overdue at least NoticeThresholdDays, skips months an open notice
// already tracks, and appends the rest to the lease's open notice or
// a fresh draft. Returns nil when nothing new was found.
func (s *OverdueSweepService) RunForLease(ctx context.Context, leaseID uuid.UUID, today time.Time) (*NoticeResponse, error) {
	var result *NoticeResponse
	var pending []shared.DomainEvent

	err := s.scope.Execute(ctx, leaseID, func(repos TransactionalRepositories) error {
		lease, err := repos.LeaseRepo().FindByID(ctx, leaseID)
		if err != nil {
			return err
		}

		paidByPeriod, err := repos.PaymentRepo().SumByPeriod(ctx, leaseID)
		if err != nil {
			return err
		}

		rows, err := leasing.BuildLedger(lease, paidByPeriod, today)
		if err != nil {
			return err
		}

		covered, err := repos.NoticeRepo().OpenPeriods(ctx, leaseID)
		if err != nil {
			return err
		}

		newRows := make([]leasing.LedgerRow, 0)
		for _, row := range rows {
			if !row.IsOverdue() || row.DaysOverdue < collection.NoticeThresholdDays {
				continue
			}
			if covered[row.Period] {
				// already tracked by an open notice, the designed no-op
				continue
			}
			newRows = append(newRows, row)
		}
		if len(newRows) == 0 {
			return nil
		}

		notice, err := s.openNoticeFor(ctx, repos, lease)
		if err != nil {
			return err
		}

		for _, row := range newRows {
			if _, err := notice.AddDetail(row.Period, row.Balance); err != nil {
				return err
			}
		}
		notice.AppendNote(fmt.Sprintf("Sweep on %s added %d overdue month(s), total outstanding %s",
			today.Format("2006-01-02"), len(newRows), notice.TotalAmount().StringFixed(2)))

		if err := repos.NoticeRepo().Save(ctx, notice); err != nil {
			return err
		}

		pending = notice.GetDomainEvents()
		notice.ClearDomainEvents()

		response := ToNoticeResponse(notice)
		result = &response
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(pending) > 0 {
		if err := s.eventBus.Publish(ctx, pending...); err != nil {
			s.logger.Error("failed to publish notice events",
				zap.String("lease_id", leaseID.String()),
				zap.Error(err),
			)
		}
	}

	if result != nil {
		s.logger.Info("overdue sweep updated notice",
			zap.String("lease_id", leaseID.String()),
			zap.String("notice_id", result.ID.String()),
			zap.Int("details", len(result.Details)),
			zap.String("total", result.TotalAmount.String()),
		)
	}

	return result, nil
}

// RunAll sweeps every qualifying lease. A failure on one lease is
// logged and counted without stopping the batch.
func (s *OverdueSweepService) RunAll(ctx context.Context, today time.Time) (*SweepResult, error) {
	leaseIDs, err := s.leaseRepo.FindIDsByStatuses(ctx, sweepQualifyingStatuses)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{
		LeasesExamined: len(leaseIDs),
		Notices:        make([]NoticeResponse, 0),
	}
	for _, leaseID := range leaseIDs {
		notice, err := s.RunForLease(ctx, leaseID, today)
		if err != nil {
			result.Failures++
			s.logger.Error("overdue sweep failed for lease",
				zap.String("lease_id", leaseID.String()),
				zap.Error(err),
			)
			continue
		}
		if notice != nil {
			result.Notices = append(result.Notices, *notice)
		}
	}

	s.logger.Info("overdue sweep finished",
		zap.Int("examined", result.LeasesExamined),
		zap.Int("notices", len(result.Notices)),
		zap.Int("failures", result.Failures),
	)

	return result, nil
}

// openNoticeFor returns the lease's open notice to append to, or
// creates a fresh draft when none exists.
func (s *OverdueSweepService) openNoticeFor(ctx context.Context, repos TransactionalRepositories, lease *leasing.Lease) (*collection.PaymentOverdueNotice, error) {
	open, err := repos.NoticeRepo().FindOpenByLease(ctx, lease.ID)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return &open[0], nil
	}
	return collection.NewPaymentOverdueNotice(lease.ID)
}
