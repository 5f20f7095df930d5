package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipientKind distinguishes tenant-facing messages from staff alerts
type RecipientKind string

const (
	RecipientTenant RecipientKind = "tenant"
	RecipientStaff  RecipientKind = "staff"
)

// Notification is the structured payload handed to the delivery
// collaborator. The engine decides what to say and to whom; email,
// SMS or in-app delivery is the collaborator's concern.
type Notification struct {
	Recipient RecipientKind
	TenantID  uuid.UUID
	LeaseID   uuid.UUID
	NoticeID  *uuid.UUID
	Subject   string
	Message   string
}

// Notifier delivers notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier is the default Notifier: it records every notification
// in the structured log and delivers nothing.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification
func (n *LogNotifier) Notify(_ context.Context, notification Notification) error {
	fields := []zap.Field{
		zap.String("recipient", string(notification.Recipient)),
		zap.String("tenant_id", notification.TenantID.String()),
		zap.String("lease_id", notification.LeaseID.String()),
		zap.String("subject", notification.Subject),
		zap.String("message", notification.Message),
	}
	if notification.NoticeID != nil {
		fields = append(fields, zap.String("notice_id", notification.NoticeID.String()))
	}
	n.logger.Info("notification dispatched", fields...)
	return nil
}

// Ensure LogNotifier implements Notifier
var _ Notifier = (*LogNotifier)(nil)
