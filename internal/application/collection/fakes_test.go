package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/application/notification"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/collection"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// In-memory fakes for the sweep and reconciliation tests. They keep
// real state so idempotence and settlement behavior can be exercised
// end to end without a database.

type memLeaseRepo struct {
	mu     sync.Mutex
	leases map[uuid.UUID]*leasing.Lease
}

func newMemLeaseRepo() *memLeaseRepo {
	return &memLeaseRepo{leases: make(map[uuid.UUID]*leasing.Lease)}
}

func (r *memLeaseRepo) FindByID(_ context.Context, id uuid.UUID) (*leasing.Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lease, ok := r.leases[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *lease
	return &copied, nil
}

func (r *memLeaseRepo) FindOpenByUnit(_ context.Context, unitID uuid.UUID) (*leasing.Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lease := range r.leases {
		if lease.UnitID == unitID && lease.Status.IsOpen() {
			copied := *lease
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memLeaseRepo) FindByUnit(context.Context, uuid.UUID, shared.Filter) ([]leasing.Lease, error) {
	return nil, nil
}

func (r *memLeaseRepo) FindByTenant(context.Context, uuid.UUID, shared.Filter) ([]leasing.Lease, error) {
	return nil, nil
}

func (r *memLeaseRepo) FindByStatuses(_ context.Context, statuses []leasing.LeaseStatus, _ shared.Filter) ([]leasing.Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leasing.Lease
	for _, lease := range r.leases {
		for _, status := range statuses {
			if lease.Status == status {
				out = append(out, *lease)
				break
			}
		}
	}
	return out, nil
}

func (r *memLeaseRepo) FindIDsByStatuses(ctx context.Context, statuses []leasing.LeaseStatus) ([]uuid.UUID, error) {
	leases, err := r.FindByStatuses(ctx, statuses, shared.Filter{})
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(leases))
	for i := range leases {
		ids[i] = leases[i].ID
	}
	return ids, nil
}

func (r *memLeaseRepo) FindAll(context.Context, shared.Filter) ([]leasing.Lease, error) {
	return nil, nil
}

func (r *memLeaseRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }

func (r *memLeaseRepo) Save(_ context.Context, lease *leasing.Lease) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *lease
	r.leases[lease.ID] = &copied
	return nil
}

func (r *memLeaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.leases, id)
	return nil
}

type memPaymentRepo struct {
	mu       sync.Mutex
	payments []*billing.Payment
}

func newMemPaymentRepo() *memPaymentRepo { return &memPaymentRepo{} }

func (r *memPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memPaymentRepo) FindByLease(context.Context, uuid.UUID, shared.Filter) ([]billing.Payment, error) {
	return nil, nil
}

func (r *memPaymentRepo) FindByLeaseAndPeriod(_ context.Context, leaseID uuid.UUID, period valueobject.Period) ([]billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []billing.Payment
	for _, p := range r.payments {
		if p.LeaseID == leaseID && p.Period == period {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) FindAll(context.Context, shared.Filter) ([]billing.Payment, error) {
	return nil, nil
}

func (r *memPaymentRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }

func (r *memPaymentRepo) SumByPeriod(_ context.Context, leaseID uuid.UUID) (map[valueobject.Period]decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sums := make(map[valueobject.Period]decimal.Decimal)
	for _, p := range r.payments {
		if p.LeaseID == leaseID {
			sums[p.Period] = sums[p.Period].Add(p.Amount)
		}
	}
	return sums, nil
}

func (r *memPaymentRepo) SumForPeriod(_ context.Context, leaseID uuid.UUID, period valueobject.Period) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.payments {
		if p.LeaseID == leaseID && p.Period == period {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (r *memPaymentRepo) Save(_ context.Context, payment *billing.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *payment
	r.payments = append(r.payments, &copied)
	return nil
}

func (r *memPaymentRepo) Delete(context.Context, uuid.UUID) error { return nil }

type memNoticeRepo struct {
	mu      sync.Mutex
	notices map[uuid.UUID]*collection.PaymentOverdueNotice
}

func newMemNoticeRepo() *memNoticeRepo {
	return &memNoticeRepo{notices: make(map[uuid.UUID]*collection.PaymentOverdueNotice)}
}

func (r *memNoticeRepo) FindByID(_ context.Context, id uuid.UUID) (*collection.PaymentOverdueNotice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notice, ok := r.notices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := copyNotice(notice)
	return &copied, nil
}

func (r *memNoticeRepo) FindByLease(_ context.Context, leaseID uuid.UUID, _ shared.Filter) ([]collection.PaymentOverdueNotice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []collection.PaymentOverdueNotice
	for _, n := range r.notices {
		if n.LeaseID == leaseID {
			out = append(out, copyNotice(n))
		}
	}
	return out, nil
}

func (r *memNoticeRepo) FindOpenByLease(_ context.Context, leaseID uuid.UUID) ([]collection.PaymentOverdueNotice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []collection.PaymentOverdueNotice
	for _, n := range r.notices {
		if n.LeaseID == leaseID && n.Status.IsOpen() {
			out = append(out, copyNotice(n))
		}
	}
	return out, nil
}

func (r *memNoticeRepo) FindOpenWithDetail(_ context.Context, leaseID uuid.UUID, period valueobject.Period) ([]collection.PaymentOverdueNotice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []collection.PaymentOverdueNotice
	for _, n := range r.notices {
		if n.LeaseID == leaseID && n.Status.IsOpen() && n.HasDetail(period) {
			out = append(out, copyNotice(n))
		}
	}
	return out, nil
}

func (r *memNoticeRepo) OpenPeriods(_ context.Context, leaseID uuid.UUID) (map[valueobject.Period]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	covered := make(map[valueobject.Period]bool)
	for _, n := range r.notices {
		if n.LeaseID != leaseID || !n.Status.IsOpen() {
			continue
		}
		for _, d := range n.Details {
			covered[d.Period] = true
		}
	}
	return covered, nil
}

func (r *memNoticeRepo) FindAll(context.Context, shared.Filter) ([]collection.PaymentOverdueNotice, error) {
	return nil, nil
}

func (r *memNoticeRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }

func (r *memNoticeRepo) Save(_ context.Context, notice *collection.PaymentOverdueNotice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := copyNotice(notice)
	r.notices[notice.ID] = &copied
	return nil
}

func (r *memNoticeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notices, id)
	return nil
}

func copyNotice(n *collection.PaymentOverdueNotice) collection.PaymentOverdueNotice {
	copied := *n
	copied.Details = make([]collection.OverdueDetail, len(n.Details))
	copy(copied.Details, n.Details)
	return copied
}

// fakeScope runs the callback directly against the in-memory repos;
// per-lease locking is exercised by the persistence tests.
type fakeScope struct {
	leaseRepo   *memLeaseRepo
	paymentRepo *memPaymentRepo
	noticeRepo  *memNoticeRepo
}

func (s *fakeScope) LeaseRepo() leasing.LeaseRepository     { return s.leaseRepo }
func (s *fakeScope) PaymentRepo() billing.PaymentRepository { return s.paymentRepo }
func (s *fakeScope) NoticeRepo() collection.NoticeRepository {
	return s.noticeRepo
}

func (s *fakeScope) Execute(_ context.Context, _ uuid.UUID, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// recordingNotifier captures dispatched notifications
type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notif notification.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notif)
	return nil
}

func (n *recordingNotifier) byRecipient(kind notification.RecipientKind) []notification.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notification.Notification
	for _, notif := range n.sent {
		if notif.Recipient == kind {
			out = append(out, notif)
		}
	}
	return out
}

// recordingPublisher captures published domain events
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}
