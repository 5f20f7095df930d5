package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
	appleasing "github.com/pms/backend/internal/application/leasing"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/property"
	"github.com/pms/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NoticeService serves overdue notices to the API: listing, the
// sent/acknowledged lifecycle, and the document data contract for the
// rendering collaborator. Resolution is not reachable from here; only
// payment reconciliation resolves a notice.
type NoticeService struct {
	noticeRepo   collection.NoticeRepository
	leaseRepo    leasing.LeaseRepository
	unitRepo     property.UnitRepository
	tenantRepo   property.TenantRepository
	buildingRepo property.BuildingRepository
	eventBus     shared.EventPublisher
	logger       *zap.Logger
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(
	noticeRepo collection.NoticeRepository,
	leaseRepo leasing.LeaseRepository,
	unitRepo property.UnitRepository,
	tenantRepo property.TenantRepository,
	buildingRepo property.BuildingRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *NoticeService {
	return &NoticeService{
		noticeRepo:   noticeRepo,
		leaseRepo:    leaseRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		buildingRepo: buildingRepo,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// GetByID retrieves a notice with its details
func (s *NoticeService) GetByID(ctx context.Context, noticeID uuid.UUID) (*NoticeResponse, error) {
	notice, err := s.noticeRepo.FindByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	response := ToNoticeResponse(notice)
	return &response, nil
}

// List retrieves notices with filtering and pagination
func (s *NoticeService) List(ctx context.Context, filter NoticeListFilter) ([]NoticeResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Filters = make(map[string]any)
	if filter.LeaseID != "" {
		domainFilter.Filters["lease_id"] = filter.LeaseID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	notices, err := s.noticeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.noticeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NoticeResponse, len(notices))
	for i := range notices {
		responses[i] = ToNoticeResponse(&notices[i])
	}
	return responses, total, nil
}

// MarkSent records that a draft notice was delivered to the tenant
func (s *NoticeService) MarkSent(ctx context.Context, noticeID uuid.UUID) (*NoticeResponse, error) {
	notice, err := s.noticeRepo.FindByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if err := notice.MarkSent(); err != nil {
		return nil, err
	}
	if err := s.noticeRepo.Save(ctx, notice); err != nil {
		return nil, err
	}

	events := notice.GetDomainEvents()
	notice.ClearDomainEvents()
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish notice events",
			zap.String("notice_id", notice.ID.String()),
			zap.Error(err),
		)
	}

	response := ToNoticeResponse(notice)
	return &response, nil
}

// Acknowledge records that the tenant confirmed receipt of a notice
func (s *NoticeService) Acknowledge(ctx context.Context, noticeID uuid.UUID) (*NoticeResponse, error) {
	notice, err := s.noticeRepo.FindByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if err := notice.Acknowledge(); err != nil {
		return nil, err
	}
	if err := s.noticeRepo.Save(ctx, notice); err != nil {
		return nil, err
	}

	response := ToNoticeResponse(notice)
	return &response, nil
}

// GetDocumentData assembles everything the document rendering
// collaborator needs to produce a formal notice: the notice itself,
// the lease, the tenant and the unit. No markup is produced here.
func (s *NoticeService) GetDocumentData(ctx context.Context, noticeID uuid.UUID) (*NoticeDocumentData, error) {
	notice, err := s.noticeRepo.FindByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	lease, err := s.leaseRepo.FindByID(ctx, notice.LeaseID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindByID(ctx, lease.TenantID)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitRepo.FindByID(ctx, lease.UnitID)
	if err != nil {
		return nil, err
	}
	building, err := s.buildingRepo.FindByID(ctx, unit.BuildingID)
	if err != nil {
		return nil, err
	}

	return &NoticeDocumentData{
		Notice: ToNoticeResponse(notice),
		Lease:  appleasing.ToLeaseResponse(lease),
		Tenant: DocumentParty{
			ID:    tenant.ID,
			Name:  tenant.Name,
			Email: tenant.Email,
		},
		Unit: DocumentUnit{
			ID:       unit.ID,
			Number:   unit.Number,
			Building: building.Name,
			Address:  building.Address,
		},
		IssueOn: time.Now(),
	}, nil
}
