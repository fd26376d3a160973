// Package settlement provides the payment processor adapter. The real
// processor integration is owned by another team; this in-process gateway
// approves every charge and mints a transaction reference, which is enough
// for the coordination flows and for local environments.
package settlement

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// MockGateway implements SettlementGateway by approving every charge.
type MockGateway struct{}

// NewMockGateway creates a gateway that always settles successfully.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// Settle approves the charge and returns a generated transaction reference.
func (g *MockGateway) Settle(_ context.Context, aggregate *payment.Payment) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	return fmt.Sprintf("txn-%s", uuid.NewString()), nil
}
