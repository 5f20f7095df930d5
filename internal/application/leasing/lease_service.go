package leasing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/property"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// LeaseService handles the lease lifecycle: signing, renewal,
// cancellation and the calendar-driven status recompute. It owns the
// unit occupancy invariant: at most one open lease holds a unit.
type LeaseService struct {
	leaseRepo  leasing.LeaseRepository
	unitRepo   property.UnitRepository
	tenantRepo property.TenantRepository
	eventBus   shared.EventPublisher
	logger     *zap.Logger
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(
	leaseRepo leasing.LeaseRepository,
	unitRepo property.UnitRepository,
	tenantRepo property.TenantRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *LeaseService {
	return &LeaseService{
		leaseRepo:  leaseRepo,
		unitRepo:   unitRepo,
		tenantRepo: tenantRepo,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Create signs a new lease. The target unit must exist and be free of
// any open lease; the unit is marked occupied in the same operation.
func (s *LeaseService) Create(ctx context.Context, req CreateLeaseRequest) (*LeaseResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	// guard against a stale availability flag as well as the flag itself
	if _, err := s.leaseRepo.FindOpenByUnit(ctx, req.UnitID); err == nil {
		return nil, shared.ErrUnitOccupied
	}

	rent := valueobject.NewMoneyFromDecimal(req.MonthlyRent)
	lease, err := leasing.NewLease(req.UnitID, req.TenantID, rent, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if lease.Status.IsOpen() {
		if err := unit.MarkOccupied(); err != nil {
			return nil, err
		}
	}

	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease.GetDomainEvents(), unit.GetDomainEvents())
	lease.ClearDomainEvents()
	unit.ClearDomainEvents()

	s.logger.Info("lease created",
		zap.String("lease_id", lease.ID.String()),
		zap.String("unit_id", unit.ID.String()),
		zap.String("status", string(lease.Status)),
	)

	response := ToLeaseResponse(lease)
	return &response, nil
}

// Renew renews a lease into a successor term on the same unit and
// tenant. The unit stays occupied: the successor takes it over. An
// expired lease can still be renewed, but only while its unit has not
// been re-let; in that case the unit freed on expiry is re-occupied.
func (s *LeaseService) Renew(ctx context.Context, leaseID uuid.UUID, req RenewLeaseRequest) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if open, err := s.leaseRepo.FindOpenByUnit(ctx, lease.UnitID); err == nil {
		if open.ID != lease.ID {
			return nil, shared.ErrUnitOccupied
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	rent := lease.GetMonthlyRentMoney()
	if req.MonthlyRent != nil {
		rent = valueobject.NewMoneyFromDecimal(*req.MonthlyRent)
	}

	wasExpired := lease.Status == leasing.LeaseStatusExpired

	successor, err := lease.Renew(time.Now(), req.StartDate, req.EndDate, rent)
	if err != nil {
		return nil, err
	}

	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		return nil, err
	}
	if err := s.leaseRepo.Save(ctx, successor); err != nil {
		return nil, err
	}

	// The unit was freed when the predecessor expired; the successor
	// takes it back.
	if wasExpired {
		unit, err := s.unitRepo.FindByID(ctx, lease.UnitID)
		if err != nil {
			return nil, err
		}
		if unit.IsAvailable() {
			if err := unit.MarkOccupied(); err != nil {
				return nil, err
			}
			if err := s.unitRepo.Save(ctx, unit); err != nil {
				return nil, err
			}
			s.publishEvents(ctx, unit.GetDomainEvents())
			unit.ClearDomainEvents()
		}
	}

	s.publishEvents(ctx, lease.GetDomainEvents(), successor.GetDomainEvents())
	lease.ClearDomainEvents()
	successor.ClearDomainEvents()

	s.logger.Info("lease renewed",
		zap.String("lease_id", lease.ID.String()),
		zap.String("successor_id", successor.ID.String()),
	)

	response := ToLeaseResponse(successor)
	return &response, nil
}

// Cancel terminates a lease early and frees its unit immediately
func (s *LeaseService) Cancel(ctx context.Context, leaseID uuid.UUID, req CancelLeaseRequest) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if err := lease.Cancel(req.Reason); err != nil {
		return nil, err
	}

	unit, err := s.unitRepo.FindByID(ctx, lease.UnitID)
	if err != nil {
		return nil, err
	}
	unit.MarkAvailable()

	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease.GetDomainEvents(), unit.GetDomainEvents())
	lease.ClearDomainEvents()
	unit.ClearDomainEvents()

	s.logger.Info("lease cancelled",
		zap.String("lease_id", lease.ID.String()),
		zap.String("unit_id", unit.ID.String()),
	)

	response := ToLeaseResponse(lease)
	return &response, nil
}

// RecomputeStatuses re-derives the status of every non-terminal lease
// from today's calendar. Units of leases that just expired are freed.
// Run daily by the scheduler; safe to re-run.
func (s *LeaseService) RecomputeStatuses(ctx context.Context, today time.Time) (*RecomputeResult, error) {
	nonTerminal := []leasing.LeaseStatus{
		leasing.LeaseStatusActive,
		leasing.LeaseStatusExpiringSoon,
		leasing.LeaseStatusExpired,
	}
	leases, err := s.leaseRepo.FindByStatuses(ctx, nonTerminal, shared.Filter{})
	if err != nil {
		return nil, err
	}

	result := &RecomputeResult{Examined: len(leases)}
	for i := range leases {
		lease := &leases[i]
		wasOpen := lease.Status.IsOpen()
		if !lease.RecomputeStatus(today) {
			continue
		}
		result.Changed++

		if err := s.leaseRepo.Save(ctx, lease); err != nil {
			s.logger.Error("failed to save recomputed lease status",
				zap.String("lease_id", lease.ID.String()),
				zap.Error(err),
			)
			continue
		}

		if wasOpen && lease.Status == leasing.LeaseStatusExpired {
			if err := s.freeUnit(ctx, lease.UnitID); err != nil {
				s.logger.Error("failed to free unit of expired lease",
					zap.String("lease_id", lease.ID.String()),
					zap.String("unit_id", lease.UnitID.String()),
					zap.Error(err),
				)
			} else {
				result.Freed++
			}
		}

		s.publishEvents(ctx, lease.GetDomainEvents())
		lease.ClearDomainEvents()
	}

	s.logger.Info("lease status recompute finished",
		zap.Int("examined", result.Examined),
		zap.Int("changed", result.Changed),
		zap.Int("freed_units", result.Freed),
	)

	return result, nil
}

// GetByID retrieves a lease by ID
func (s *LeaseService) GetByID(ctx context.Context, leaseID uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	response := ToLeaseResponse(lease)
	return &response, nil
}

// List retrieves leases with filtering and pagination
func (s *LeaseService) List(ctx context.Context, filter LeaseListFilter) ([]LeaseResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Filters = make(map[string]any)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.UnitID != "" {
		domainFilter.Filters["unit_id"] = filter.UnitID
	}
	if filter.TenantID != "" {
		domainFilter.Filters["tenant_id"] = filter.TenantID
	}

	leases, err := s.leaseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.leaseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LeaseResponse, len(leases))
	for i := range leases {
		responses[i] = ToLeaseResponse(&leases[i])
	}
	return responses, total, nil
}

func (s *LeaseService) freeUnit(ctx context.Context, unitID uuid.UUID) error {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		return err
	}
	unit.MarkAvailable()
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return err
	}
	s.publishEvents(ctx, unit.GetDomainEvents())
	unit.ClearDomainEvents()
	return nil
}

// publishEvents publishes the given event batches. Publish failures
// are logged, not returned: the state change has already been
// persisted and must not be undone by a listener problem.
func (s *LeaseService) publishEvents(ctx context.Context, batches ...[]shared.DomainEvent) {
	for _, events := range batches {
		if len(events) == 0 {
			continue
		}
		if err := s.eventBus.Publish(ctx, events...); err != nil {
			s.logger.Error("failed to publish domain events", zap.Error(err))
		}
	}
}
