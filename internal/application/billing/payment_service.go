package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/leasing"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService records rent payments and serves the derived payment
// summary (the lease ledger). Recording publishes PaymentRecorded on
// the synchronous bus, which drives overdue-notice reconciliation;
// the payment itself is ground truth and is persisted before any
// listener runs.
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	leaseRepo   leasing.LeaseRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	leaseRepo leasing.LeaseRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		leaseRepo:   leaseRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// RecordPayment records a payment against a lease period. Multiple
// payments may target the same period; they are summed at read time.
func (s *PaymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	if _, err := s.leaseRepo.FindByID(ctx, req.LeaseID); err != nil {
		return nil, err
	}

	period, err := valueobject.NewPeriod(req.ForYear, time.Month(req.ForMonth))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Invalid obligation period")
	}

	amount := valueobject.NewMoneyFromDecimal(req.Amount)
	method := billing.PaymentMethod(req.Method)

	var payment *billing.Payment
	if method == billing.PaymentMethodCheque {
		payment, err = billing.NewChequePayment(req.LeaseID, req.PaymentDate, amount, period, req.ChequeNumber, billing.ChequeStatus(req.ChequeStatus))
	} else {
		payment, err = billing.NewPayment(req.LeaseID, req.PaymentDate, amount, period, method)
	}
	if err != nil {
		return nil, err
	}
	payment.Reference = req.Reference
	payment.Notes = req.Notes

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	// the payment is committed; reconciliation listeners may fail but
	// can never undo it
	events := payment.GetDomainEvents()
	payment.ClearDomainEvents()
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish payment events",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("lease_id", payment.LeaseID.String()),
		zap.String("period", payment.Period.String()),
		zap.String("amount", payment.Amount.String()),
	)

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
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
	if filter.Method != "" {
		domainFilter.Filters["method"] = filter.Method
	}

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// GetPaymentSummary derives the full rent ledger for a lease: one row
// per calendar month of the term, recomputed from the payment records
// on every call.
func (s *PaymentService) GetPaymentSummary(ctx context.Context, leaseID uuid.UUID, today time.Time) (*PaymentSummaryResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	paidByPeriod, err := s.paymentRepo.SumByPeriod(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	rows, err := leasing.BuildLedger(lease, paidByPeriod, today)
	if err != nil {
		return nil, err
	}

	summary := &PaymentSummaryResponse{
		LeaseID:      lease.ID,
		MonthlyRent:  lease.MonthlyRent,
		Rows:         make([]LedgerRowResponse, len(rows)),
		TotalDue:     decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for i, row := range rows {
		summary.Rows[i] = ToLedgerRowResponse(row)
		summary.TotalDue = summary.TotalDue.Add(row.RentDue)
		summary.TotalPaid = summary.TotalPaid.Add(row.AmountPaid)
		summary.TotalBalance = summary.TotalBalance.Add(row.Balance)
	}

	return summary, nil
}
