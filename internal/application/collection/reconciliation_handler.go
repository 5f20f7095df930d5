package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/application/notification"
	"github.com/pms/backend/internal/domain/billing"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentReconciliationHandler reacts to PaymentRecorded events and
// keeps open overdue notices truthful: it recomputes the paid total
// for the paid period, shrinks the matching notice detail to the new
// remaining balance or removes it, and resolves notices left with no
// details.
//
// The handler runs synchronously on the in-process bus, after the
// payment has been persisted. Whatever fails here is logged and
// surfaced through the bus's error accounting; it can never undo the
// payment, which is the ground truth the notices are derived from.
type PaymentReconciliationHandler struct {
	scope    LeaseTransactionScope
	notifier notification.Notifier
	logger   *zap.Logger
}

// NewPaymentReconciliationHandler creates a new handler for payment
// recorded events
func NewPaymentReconciliationHandler(
	scope LeaseTransactionScope,
	notifier notification.Notifier,
	logger *zap.Logger,
) *PaymentReconciliationHandler {
	return &PaymentReconciliationHandler{
		scope:    scope,
		notifier: notifier,
		logger:   logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *PaymentReconciliationHandler) EventTypes() []string {
	return []string{billing.EventTypePaymentRecorded}
}

// Handle reconciles open overdue notices with a newly recorded payment
func (h *PaymentReconciliationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	paymentEvent, ok := event.(*billing.PaymentRecordedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", billing.EventTypePaymentRecorded),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			billing.EventTypePaymentRecorded, event.EventType())
	}

	var (
		remaining decimal.Decimal
		settled   bool
		resolved  bool
		tenantID  uuid.UUID
	)

	err := h.scope.Execute(ctx, paymentEvent.LeaseID, func(repos TransactionalRepositories) error {
		lease, err := repos.LeaseRepo().FindByID(ctx, paymentEvent.LeaseID)
		if err != nil {
			return fmt.Errorf("failed to load lease: %w", err)
		}
		tenantID = lease.TenantID

		// total across all payments for the period, not just this one
		totalPaid, err := repos.PaymentRepo().SumForPeriod(ctx, lease.ID, paymentEvent.Period)
		if err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}
		remaining = lease.MonthlyRent.Sub(totalPaid)

		notices, err := repos.NoticeRepo().FindOpenWithDetail(ctx, lease.ID, paymentEvent.Period)
		if err != nil {
			return fmt.Errorf("failed to load open notices: %w", err)
		}

		for i := range notices {
			notice := &notices[i]
			if !notice.SettlePeriod(paymentEvent.Period, remaining) {
				continue
			}
			settled = true
			if !notice.Status.IsOpen() {
				resolved = true
			}
			if err := repos.NoticeRepo().Save(ctx, notice); err != nil {
				return fmt.Errorf("failed to save reconciled notice: %w", err)
			}
			notice.ClearDomainEvents()
		}
		return nil
	})
	if err != nil {
		h.logger.Error("payment reconciliation failed",
			zap.String("payment_id", paymentEvent.PaymentID.String()),
			zap.String("lease_id", paymentEvent.LeaseID.String()),
			zap.String("period", paymentEvent.Period.String()),
			zap.Error(err),
		)
		return err
	}

	h.notify(ctx, paymentEvent, tenantID, remaining, settled, resolved)

	h.logger.Info("payment reconciled",
		zap.String("payment_id", paymentEvent.PaymentID.String()),
		zap.String("lease_id", paymentEvent.LeaseID.String()),
		zap.String("period", paymentEvent.Period.String()),
		zap.String("remaining", remaining.String()),
		zap.Bool("notice_settled", settled),
		zap.Bool("notice_resolved", resolved),
	)

	return nil
}

// notify emits the tenant and staff notifications for a reconciled
// payment. Delivery failures are logged; they never fail the handler.
func (h *PaymentReconciliationHandler) notify(ctx context.Context, e *billing.PaymentRecordedEvent, tenantID uuid.UUID, remaining decimal.Decimal, settled, resolved bool) {
	if settled {
		subject := fmt.Sprintf("Payment received for %s", e.Period)
		message := fmt.Sprintf("Your payment of %s for %s has been received.", e.Amount.StringFixed(2), e.Period)
		if resolved {
			message += " All overdue rent on your notice is now fully paid."
		} else if remaining.IsPositive() {
			message += fmt.Sprintf(" %s remains outstanding for this month.", remaining.StringFixed(2))
		}
		h.dispatch(ctx, notification.Notification{
			Recipient: notification.RecipientTenant,
			TenantID:  tenantID,
			LeaseID:   e.LeaseID,
			Subject:   subject,
			Message:   message,
		})
	}

	h.dispatch(ctx, notification.Notification{
		Recipient: notification.RecipientStaff,
		TenantID:  tenantID,
		LeaseID:   e.LeaseID,
		Subject:   fmt.Sprintf("Payment recorded for lease %s", e.LeaseID),
		Message: fmt.Sprintf("Payment of %s for %s recorded; remaining balance for the month is %s.",
			e.Amount.StringFixed(2), e.Period, remaining.StringFixed(2)),
	})
}

func (h *PaymentReconciliationHandler) dispatch(ctx context.Context, n notification.Notification) {
	if err := h.notifier.Notify(ctx, n); err != nil {
		h.logger.Error("failed to dispatch notification",
			zap.String("recipient", string(n.Recipient)),
			zap.String("lease_id", n.LeaseID.String()),
			zap.Error(err),
		)
	}
}

// Ensure PaymentReconciliationHandler implements shared.EventHandler
var _ shared.EventHandler = (*PaymentReconciliationHandler)(nil)
