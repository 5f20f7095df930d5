package collection

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// NoticeThresholdDays is how many days a ledger month must be overdue
// before the sweep pulls it into a notice. This is deliberately a
// separate threshold from the ledger row's own overdue flag, which
// trips the moment the due date passes.
const NoticeThresholdDays = 30

// NoticeStatus represents the lifecycle status of an overdue notice
type NoticeStatus string

const (
	NoticeStatusDraft        NoticeStatus = "draft"
	NoticeStatusSent         NoticeStatus = "sent"
	NoticeStatusAcknowledged NoticeStatus = "acknowledged"
	NoticeStatusResolved     NoticeStatus = "resolved"
)

// IsValid checks if the notice status is valid
func (s NoticeStatus) IsValid() bool {
	switch s {
	case NoticeStatusDraft, NoticeStatusSent, NoticeStatusAcknowledged, NoticeStatusResolved:
		return true
	}
	return false
}

// IsOpen returns true while the notice still tracks unpaid months
func (s NoticeStatus) IsOpen() bool {
	return s == NoticeStatusDraft || s == NoticeStatusSent || s == NoticeStatusAcknowledged
}

// OpenNoticeStatuses lists the statuses under which details may still
// be added, shrunk or removed.
var OpenNoticeStatuses = []NoticeStatus{NoticeStatusDraft, NoticeStatusSent, NoticeStatusAcknowledged}

// OverdueDetail is one still-unpaid overdue month tracked by a notice.
// Fully paid months are deleted, never left as zero-amount rows.
type OverdueDetail struct {
	shared.BaseEntity
	NoticeID uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:idx_detail_notice_period,priority:1"`
	Period   valueobject.Period `gorm:"type:varchar(7);not null;uniqueIndex:idx_detail_notice_period,priority:2"`
	Amount   decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OverdueDetail) TableName() string {
	return "payment_overdue_details"
}

// PaymentOverdueNotice is a formal notice aggregating every month of a
// lease that is overdue past the notice threshold. It must always
// reflect the current unpaid balance: the sweep adds months, the
// payment reconciliation shrinks or removes them, and the notice
// resolves itself exactly when its last detail is removed. Staff never
// resolve a notice directly.
type PaymentOverdueNotice struct {
	shared.BaseAggregateRoot
	LeaseID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status         NoticeStatus    `gorm:"type:varchar(20);not null;default:'draft';index"`
	Content        string          `gorm:"type:text"`
	Notes          string          `gorm:"type:text"`
	SentAt         *time.Time      `gorm:""`
	AcknowledgedAt *time.Time      `gorm:""`
	ResolvedAt     *time.Time      `gorm:""`
	Details        []OverdueDetail `gorm:"foreignKey:NoticeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PaymentOverdueNotice) TableName() string {
	return "payment_overdue_notices"
}

// NewPaymentOverdueNotice creates a draft notice for a lease
func NewPaymentOverdueNotice(leaseID uuid.UUID) (*PaymentOverdueNotice, error) {
	if leaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEASE", "Lease ID is required")
	}

	notice := &PaymentOverdueNotice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LeaseID:           leaseID,
		Status:            NoticeStatusDraft,
		Details:           make([]OverdueDetail, 0),
	}

	notice.AddDomainEvent(NewNoticeCreatedEvent(notice))

	return notice, nil
}

// HasDetail returns true when the notice already tracks the period
func (n *PaymentOverdueNotice) HasDetail(period valueobject.Period) bool {
	for _, d := range n.Details {
		if d.Period == period {
			return true
		}
	}
	return false
}

// DetailFor returns the tracked detail for a period, or nil
func (n *PaymentOverdueNotice) DetailFor(period valueobject.Period) *OverdueDetail {
	for i := range n.Details {
		if n.Details[i].Period == period {
			return &n.Details[i]
		}
	}
	return nil
}

// AddDetail appends an overdue month with its current balance.
// Adding a period the notice already tracks is the designed no-op
// path, not an error; re-running the sweep must never duplicate a
// line. Returns true when a detail was actually added.
func (n *PaymentOverdueNotice) AddDetail(period valueobject.Period, amount decimal.Decimal) (bool, error) {
	if !n.Status.IsOpen() {
		return false, shared.NewDomainError("NOTICE_RESOLVED", "Cannot add overdue months to a resolved notice")
	}
	if !amount.IsPositive() {
		return false, shared.NewDomainError("INVALID_AMOUNT", "Overdue amount must be positive")
	}
	if n.HasDetail(period) {
		return false, nil
	}

	n.Details = append(n.Details, OverdueDetail{
		BaseEntity: shared.NewBaseEntity(),
		NoticeID:   n.ID,
		Period:     period,
		Amount:     amount,
	})
	n.RegenerateContent()
	n.Touch()
	n.IncrementVersion()

	return true, nil
}

// SettlePeriod applies a recomputed remaining balance for one period.
// remaining <= 0 deletes the detail, resolving the notice when it was
// the last one; 0 < remaining shrinks the detail to the new balance.
// A period the notice does not track is ignored. Returns true when
// anything changed.
func (n *PaymentOverdueNotice) SettlePeriod(period valueobject.Period, remaining decimal.Decimal) bool {
	if !n.Status.IsOpen() {
		return false
	}

	idx := -1
	for i := range n.Details {
		if n.Details[i].Period == period {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if remaining.IsPositive() {
		n.Details[idx].Amount = remaining
		n.Details[idx].Touch()
		n.AppendNote(fmt.Sprintf("Partial payment received for %s, %s still outstanding", period, remaining.StringFixed(2)))
		n.RegenerateContent()
	} else {
		n.Details = append(n.Details[:idx], n.Details[idx+1:]...)
		n.AppendNote(fmt.Sprintf("Rent for %s paid in full, removed from notice", period))
		if len(n.Details) == 0 {
			n.resolve()
		} else {
			n.RegenerateContent()
		}
	}

	n.Touch()
	n.IncrementVersion()

	return true
}

// resolve closes the notice once no overdue months remain. Only the
// reconciliation path reaches this; there is no public resolve.
func (n *PaymentOverdueNotice) resolve() {
	now := time.Now()
	oldStatus := n.Status
	n.Status = NoticeStatusResolved
	n.ResolvedAt = &now
	n.Content = fmt.Sprintf("All overdue rent covered by this notice has been paid in full as of %s. No further action is required.", now.Format("2006-01-02"))

	n.AddDomainEvent(NewNoticeResolvedEvent(n, oldStatus))
}

// MarkSent records that the notice was delivered to the tenant
func (n *PaymentOverdueNotice) MarkSent() error {
	if n.Status != NoticeStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft notices can be marked as sent")
	}

	now := time.Now()
	n.Status = NoticeStatusSent
	n.SentAt = &now
	n.Touch()
	n.IncrementVersion()

	n.AddDomainEvent(NewNoticeSentEvent(n))

	return nil
}

// Acknowledge records that the tenant confirmed receipt
func (n *PaymentOverdueNotice) Acknowledge() error {
	if n.Status != NoticeStatusSent {
		return shared.NewDomainError("INVALID_STATE", "Only sent notices can be acknowledged")
	}

	now := time.Now()
	n.Status = NoticeStatusAcknowledged
	n.AcknowledgedAt = &now
	n.Touch()
	n.IncrementVersion()

	return nil
}

// AppendNote adds a dated line to the running notes log
func (n *PaymentOverdueNotice) AppendNote(note string) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04"), note)
	if n.Notes == "" {
		n.Notes = line
	} else {
		n.Notes = n.Notes + "\n" + line
	}
}

// TotalAmount returns the sum of all outstanding detail amounts
func (n *PaymentOverdueNotice) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range n.Details {
		total = total.Add(d.Amount)
	}
	return total
}

// RegenerateContent rebuilds the formal notice text from the current
// details so it always states the up-to-date outstanding total.
func (n *PaymentOverdueNotice) RegenerateContent() {
	details := make([]OverdueDetail, len(n.Details))
	copy(details, n.Details)
	sort.Slice(details, func(i, j int) bool {
		return details[i].Period.Before(details[j].Period)
	})

	var b strings.Builder
	b.WriteString("This is a formal notice that rent remains unpaid for the following months:\n")
	for _, d := range details {
		fmt.Fprintf(&b, "  - %s: %s outstanding\n", d.Period, d.Amount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total outstanding: %s. Please arrange payment at your earliest convenience.", n.TotalAmount().StringFixed(2))

	n.Content = b.String()
}
