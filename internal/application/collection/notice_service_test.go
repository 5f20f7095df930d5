package collection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/property"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Single-entity stubs for the document data lookups. Only FindByID
// matters here; the rest of each interface is unused by the service.

type stubBuildingRepo struct{ building *property.Building }

func (r *stubBuildingRepo) FindByID(_ context.Context, id uuid.UUID) (*property.Building, error) {
	if r.building == nil || r.building.ID != id {
		return nil, shared.ErrNotFound
	}
	return r.building, nil
}
func (r *stubBuildingRepo) FindByName(context.Context, string) (*property.Building, error) {
	return nil, shared.ErrNotFound
}
func (r *stubBuildingRepo) FindAll(context.Context, shared.Filter) ([]property.Building, error) {
	return nil, nil
}
func (r *stubBuildingRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }
func (r *stubBuildingRepo) Save(context.Context, *property.Building) error      { return nil }
func (r *stubBuildingRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type stubUnitRepo struct{ unit *property.Unit }

func (r *stubUnitRepo) FindByID(_ context.Context, id uuid.UUID) (*property.Unit, error) {
	if r.unit == nil || r.unit.ID != id {
		return nil, shared.ErrNotFound
	}
	return r.unit, nil
}
func (r *stubUnitRepo) FindByBuilding(context.Context, uuid.UUID, shared.Filter) ([]property.Unit, error) {
	return nil, nil
}
func (r *stubUnitRepo) FindByStatus(context.Context, property.UnitStatus, shared.Filter) ([]property.Unit, error) {
	return nil, nil
}
func (r *stubUnitRepo) FindAll(context.Context, shared.Filter) ([]property.Unit, error) {
	return nil, nil
}
func (r *stubUnitRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }
func (r *stubUnitRepo) Save(context.Context, *property.Unit) error          { return nil }
func (r *stubUnitRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type stubTenantRepo struct{ tenant *property.Tenant }

func (r *stubTenantRepo) FindByID(_ context.Context, id uuid.UUID) (*property.Tenant, error) {
	if r.tenant == nil || r.tenant.ID != id {
		return nil, shared.ErrNotFound
	}
	return r.tenant, nil
}
func (r *stubTenantRepo) FindByEmail(context.Context, string) (*property.Tenant, error) {
	return nil, shared.ErrNotFound
}
func (r *stubTenantRepo) FindAll(context.Context, shared.Filter) ([]property.Tenant, error) {
	return nil, nil
}
func (r *stubTenantRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }
func (r *stubTenantRepo) Save(context.Context, *property.Tenant) error        { return nil }
func (r *stubTenantRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type noticeServiceFixture struct {
	noticeRepo   *memNoticeRepo
	leaseRepo    *memLeaseRepo
	unitRepo     *stubUnitRepo
	tenantRepo   *stubTenantRepo
	buildingRepo *stubBuildingRepo
	publisher    *recordingPublisher
	service      *NoticeService
}

func newNoticeServiceFixture(t *testing.T) *noticeServiceFixture {
	t.Helper()
	f := &noticeServiceFixture{
		noticeRepo:   newMemNoticeRepo(),
		leaseRepo:    newMemLeaseRepo(),
		unitRepo:     &stubUnitRepo{},
		tenantRepo:   &stubTenantRepo{},
		buildingRepo: &stubBuildingRepo{},
		publisher:    &recordingPublisher{},
	}
	f.service = NewNoticeService(f.noticeRepo, f.leaseRepo, f.unitRepo, f.tenantRepo, f.buildingRepo, f.publisher, zap.NewNop())
	return f
}

func (f *noticeServiceFixture) addNotice(t *testing.T, leaseID uuid.UUID, periods ...valueobject.Period) *collection.PaymentOverdueNotice {
	t.Helper()
	notice, err := collection.NewPaymentOverdueNotice(leaseID)
	require.NoError(t, err)
	for _, p := range periods {
		_, err := notice.AddDetail(p, decimal.NewFromInt(500))
		require.NoError(t, err)
	}
	notice.ClearDomainEvents()
	require.NoError(t, f.noticeRepo.Save(context.Background(), notice))
	return notice
}

func TestNoticeService_MarkSent(t *testing.T) {
	f := newNoticeServiceFixture(t)
	jan := valueobject.Period{Year: 2025, Month: time.January}
	notice := f.addNotice(t, uuid.New(), jan)

	resp, err := f.service.MarkSent(context.Background(), notice.ID)
	require.NoError(t, err)
	assert.Equal(t, string(collection.NoticeStatusSent), resp.Status)
	assert.NotNil(t, resp.SentAt)
	assert.NotEmpty(t, f.publisher.events)

	saved, err := f.noticeRepo.FindByID(context.Background(), notice.ID)
	require.NoError(t, err)
	assert.Equal(t, collection.NoticeStatusSent, saved.Status)
}

func TestNoticeService_MarkSentTwiceRejected(t *testing.T) {
	f := newNoticeServiceFixture(t)
	jan := valueobject.Period{Year: 2025, Month: time.January}
	notice := f.addNotice(t, uuid.New(), jan)

	_, err := f.service.MarkSent(context.Background(), notice.ID)
	require.NoError(t, err)

	_, err = f.service.MarkSent(context.Background(), notice.ID)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestNoticeService_AcknowledgeRequiresSent(t *testing.T) {
	f := newNoticeServiceFixture(t)
	jan := valueobject.Period{Year: 2025, Month: time.January}
	notice := f.addNotice(t, uuid.New(), jan)

	_, err := f.service.Acknowledge(context.Background(), notice.ID)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	_, err = f.service.MarkSent(context.Background(), notice.ID)
	require.NoError(t, err)

	resp, err := f.service.Acknowledge(context.Background(), notice.ID)
	require.NoError(t, err)
	assert.Equal(t, string(collection.NoticeStatusAcknowledged), resp.Status)
}

func TestNoticeService_GetByIDNotFound(t *testing.T) {
	f := newNoticeServiceFixture(t)

	_, err := f.service.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestNoticeService_GetDocumentData(t *testing.T) {
	f := newNoticeServiceFixture(t)

	building, err := property.NewBuilding("Harbor House", "12 Quay Street")
	require.NoError(t, err)
	unit, err := property.NewUnit(building.ID, "3B", 3, 2, valueobject.NewMoneyFromFloat(500))
	require.NoError(t, err)
	tenant, err := property.NewTenant("Dana Reyes", "dana@example.com", "555-0102")
	require.NoError(t, err)
	f.buildingRepo.building = building
	f.unitRepo.unit = unit
	f.tenantRepo.tenant = tenant

	lease, err := leasing.NewLease(unit.ID, tenant.ID, valueobject.NewMoneyFromFloat(500),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	lease.ClearDomainEvents()
	require.NoError(t, f.leaseRepo.Save(context.Background(), lease))

	jan := valueobject.Period{Year: 2025, Month: time.January}
	feb := valueobject.Period{Year: 2025, Month: time.February}
	notice := f.addNotice(t, lease.ID, jan, feb)

	data, err := f.service.GetDocumentData(context.Background(), notice.ID)
	require.NoError(t, err)
	assert.Equal(t, notice.ID, data.Notice.ID)
	assert.Equal(t, lease.ID, data.Lease.ID)
	assert.Equal(t, "Dana Reyes", data.Tenant.Name)
	assert.Equal(t, "3B", data.Unit.Number)
	assert.Equal(t, "Harbor House", data.Unit.Building)
	assert.Equal(t, "12 Quay Street", data.Unit.Address)
	assert.Len(t, data.Notice.Details, 2)
	assert.Equal(t, "1000", data.Notice.TotalAmount.String())
}
