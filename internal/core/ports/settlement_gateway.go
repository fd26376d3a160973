package ports

import (
	"context"

	"shipping/internal/core/domain/model/payment"
)

// SettlementGateway charges an online payment through an external processor.
// Settle returns the processor's transaction details on success; any error
// means the charge did not go through and the payment must not complete.
type SettlementGateway interface {
	Settle(ctx context.Context, aggregate *payment.Payment) (string, error)
}
