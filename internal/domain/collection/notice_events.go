package collection

import (
	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeNotice = "PaymentOverdueNotice"

// Event type constants
const (
	EventTypeNoticeCreated  = "NoticeCreated"
	EventTypeNoticeSent     = "NoticeSent"
	EventTypeNoticeResolved = "NoticeResolved"
)

// NoticeCreatedEvent is published when the sweep opens a new notice
type NoticeCreatedEvent struct {
	shared.BaseDomainEvent
	NoticeID uuid.UUID `json:"notice_id"`
	LeaseID  uuid.UUID `json:"lease_id"`
}

// NewNoticeCreatedEvent creates a new NoticeCreatedEvent
func NewNoticeCreatedEvent(notice *PaymentOverdueNotice) *NoticeCreatedEvent {
	return &NoticeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeNoticeCreated, AggregateTypeNotice, notice.ID),
		NoticeID:        notice.ID,
		LeaseID:         notice.LeaseID,
	}
}

// NoticeSentEvent is published when a notice is delivered
type NoticeSentEvent struct {
	shared.BaseDomainEvent
	NoticeID    uuid.UUID       `json:"notice_id"`
	LeaseID     uuid.UUID       `json:"lease_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewNoticeSentEvent creates a new NoticeSentEvent
func NewNoticeSentEvent(notice *PaymentOverdueNotice) *NoticeSentEvent {
	return &NoticeSentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeNoticeSent, AggregateTypeNotice, notice.ID),
		NoticeID:        notice.ID,
		LeaseID:         notice.LeaseID,
		TotalAmount:     notice.TotalAmount(),
	}
}

// NoticeResolvedEvent is published when the last overdue month on a
// notice is paid off
type NoticeResolvedEvent struct {
	shared.BaseDomainEvent
	NoticeID  uuid.UUID    `json:"notice_id"`
	LeaseID   uuid.UUID    `json:"lease_id"`
	OldStatus NoticeStatus `json:"old_status"`
}

// NewNoticeResolvedEvent creates a new NoticeResolvedEvent
func NewNoticeResolvedEvent(notice *PaymentOverdueNotice, oldStatus NoticeStatus) *NoticeResolvedEvent {
	return &NoticeResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeNoticeResolved, AggregateTypeNotice, notice.ID),
		NoticeID:        notice.ID,
		LeaseID:         notice.LeaseID,
		OldStatus:       oldStatus,
	}
}
