package commands_test

import (
	"context"
	"testing"
	"time"

	"loadflow/internal/core/application/usecases/commands"
	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetPaidAtCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	paidAt := testBase.Add(30 * 24 * time.Hour)

	t.Run("stamps an invoiced load", func(t *testing.T) {
		loadRepo := &MockLoadRepository{}
		uow := &MockLoadUoW{}
		factory := &MockLoadUoWFactory{}
		audit := &MockAuditRecorder{}

		// Cursor 5 is the invoiced step for a single pickup/delivery pair.
		aggregate := testLoadAt(t, 5)

		factory.On("Create").Return(uow)
		uow.On("LoadRepository").Return(loadRepo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil),
			loadRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil),
			loadRepo.On("Update", ctx, aggregate).Return(nil),
			uow.On("Commit", ctx).Return(nil),
			uow.On("Rollback", ctx).Return(nil),
		)
		audit.On("Record", ctx, mock.Anything).Return(nil)

		handler := commands.NewSetPaidAtCommandHandler(factory, audit, discardLogger())
		cmd, err := commands.NewSetPaidAtCommand(aggregate.ID(), paidAt, kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, aggregate.PaidAt())
		assert.True(t, aggregate.PaidAt().Equal(paidAt))
		uow.AssertExpectations(t)
	})

	t.Run("rejects a load that is not yet invoiced", func(t *testing.T) {
		loadRepo := &MockLoadRepository{}
		uow := &MockLoadUoW{}
		factory := &MockLoadUoWFactory{}
		audit := &MockAuditRecorder{}

		aggregate := testLoadAt(t, 3)

		factory.On("Create").Return(uow)
		uow.On("LoadRepository").Return(loadRepo)
		uow.On("Begin", ctx).Return(nil)
		loadRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil)
		uow.On("Rollback", ctx).Return(nil)

		handler := commands.NewSetPaidAtCommandHandler(factory, audit, discardLogger())
		cmd, err := commands.NewSetPaidAtCommand(aggregate.ID(), paidAt, kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, aggregate.PaidAt())
		loadRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})
}

func TestClearPaidAtCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("clears a reversed payment", func(t *testing.T) {
		loadRepo := &MockLoadRepository{}
		uow := &MockLoadUoW{}
		factory := &MockLoadUoWFactory{}
		audit := &MockAuditRecorder{}

		paidAt := testBase.Add(30 * 24 * time.Hour)
		aggregate, err := load.RestoreLoad(
			kernel.NewUUID(), kernel.NewUUID(), testStops(t), 6, "0001",
			nil, &paidAt, testRate(t))
		require.NoError(t, err)

		factory.On("Create").Return(uow)
		uow.On("LoadRepository").Return(loadRepo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil),
			loadRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil),
			loadRepo.On("Update", ctx, aggregate).Return(nil),
			uow.On("Commit", ctx).Return(nil),
			uow.On("Rollback", ctx).Return(nil),
		)
		audit.On("Record", ctx, mock.Anything).Return(nil)

		handler := commands.NewClearPaidAtCommandHandler(factory, audit, discardLogger())
		cmd, err := commands.NewClearPaidAtCommand(aggregate.ID(), kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Nil(t, aggregate.PaidAt())
		uow.AssertExpectations(t)
	})

	t.Run("clearing an unset timestamp still succeeds", func(t *testing.T) {
		loadRepo := &MockLoadRepository{}
		uow := &MockLoadUoW{}
		factory := &MockLoadUoWFactory{}
		audit := &MockAuditRecorder{}

		aggregate := testLoadAt(t, 1)

		factory.On("Create").Return(uow)
		uow.On("LoadRepository").Return(loadRepo)
		uow.On("Begin", ctx).Return(nil)
		loadRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil)
		loadRepo.On("Update", ctx, aggregate).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		audit.On("Record", ctx, mock.Anything).Return(nil)

		handler := commands.NewClearPaidAtCommandHandler(factory, audit, discardLogger())
		cmd, err := commands.NewClearPaidAtCommand(aggregate.ID(), kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Nil(t, aggregate.PaidAt())
	})
}
