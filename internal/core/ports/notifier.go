package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// TemplateKind identifies a notification template.
type TemplateKind string

const (
	TemplateStatusUpdate        TemplateKind = "status-update"
	TemplatePaymentConfirmation TemplateKind = "payment-confirmation"
	TemplateDeliveryReminder    TemplateKind = "delivery-reminder"
)

// Notifier sends notifications to users. Sends are fire-and-forget relative
// to the calling transaction: a failed send is logged by the caller but must
// never roll back committed state.
type Notifier interface {
	Send(ctx context.Context, recipientID kernel.UUID, kind TemplateKind, data map[string]string) error
}
