package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loadflow/internal/core/application/usecases/commands"
	"loadflow/internal/core/domain/model/counter"
	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRate(t *testing.T) kernel.Money {
	t.Helper()
	rate, err := kernel.MoneyFromString("1450.00")
	require.NoError(t, err)
	return rate
}

// testStops builds one pickup followed by one delivery.
func testStops(t *testing.T) []*load.Stop {
	t.Helper()
	pickup, err := load.NewAppointmentStop(kernel.NewUUID(), load.Pickup, "Dallas, TX", testBase, 0)
	require.NoError(t, err)
	delivery, err := load.NewAppointmentStop(
		kernel.NewUUID(), load.Delivery, "Memphis, TN", testBase.Add(6*time.Hour), 1)
	require.NoError(t, err)
	return []*load.Stop{pickup, delivery}
}

// testLoadAt restores a load at the given cursor.
func testLoadAt(t *testing.T, cursor int) *load.Load {
	t.Helper()
	l, err := load.RestoreLoad(
		kernel.NewUUID(), kernel.NewUUID(), testStops(t), cursor, "0001", nil, nil, testRate(t))
	require.NoError(t, err)
	return l
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}
func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) Allocate(ctx context.Context, orgID kernel.UUID) (*counter.Counter, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*counter.Counter), args.Error(1)
}

type MockLoadUoW struct{ mock.Mock }

func (m *MockLoadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLoadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLoadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}
func (m *MockUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAuditRecorder struct{ mock.Mock }

func (m *MockAuditRecorder) Record(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
