package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Add(ctx context.Context, e *status.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockStatusRepository) Get(ctx context.Context, id kernel.UUID) (*status.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Entry), args.Error(1)
}
func (m *MockStatusRepository) Retract(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStatusRepository) GetLatest(ctx context.Context, shipmentID kernel.UUID) (*status.Entry, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Entry), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) Add(ctx context.Context, r *rate.Rate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRateRepository) GetActiveByTier(ctx context.Context, tier rate.CityTier) (*rate.Rate, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rate.Rate), args.Error(1)
}

type MockRoleChecker struct{ mock.Mock }

func (m *MockRoleChecker) UserHasRole(ctx context.Context, userID kernel.UUID, role actor.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, recipientID kernel.UUID, kind ports.TemplateKind, data map[string]string) error {
	args := m.Called(ctx, recipientID, kind, data)
	return args.Error(0)
}

type MockStatusPublisher struct{ mock.Mock }

func (m *MockStatusPublisher) PublishStatusChanged(ctx context.Context, shipmentID kernel.UUID, name status.Name) error {
	args := m.Called(ctx, shipmentID, name)
	return args.Error(0)
}

type MockSettlementGateway struct{ mock.Mock }

func (m *MockSettlementGateway) Settle(ctx context.Context, p *payment.Payment) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockStatusUoW struct{ mock.Mock }

func (m *MockStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStatusUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockStatusUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockPaymentUoW struct{ mock.Mock }

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockPaymentUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}
func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testActor(t *testing.T, id kernel.UUID, roles ...actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, roles)
	require.NoError(t, err)
	return a
}

func testDimensions(t *testing.T) shipment.Dimensions {
	t.Helper()
	d, err := shipment.NewDimensions(2, 2, 2)
	require.NoError(t, err)
	return d
}

func testShipment(t *testing.T, ownerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), ownerID,
		"Warehouse 7, Pune, Maharashtra", "12 Marine Drive, Mumbai, Maharashtra",
		5, testDimensions(t), true, shipment.Express)
	require.NoError(t, err)
	require.NoError(t, s.ApplyRate(kernel.NewUUID(), 50.40))
	return s
}

func testRate(t *testing.T, tier rate.CityTier) *rate.Rate {
	t.Helper()
	r, err := rate.NewRate(kernel.NewUUID(), tier, 10, 1.5, 2, 1, 1.2)
	require.NoError(t, err)
	return r
}
