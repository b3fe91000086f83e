package commands_test

import (
	"context"
	"testing"
	"time"

	"loadflow/internal/core/application/usecases/commands"
	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetInvoicedAtCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	invoicedAt := testBase.Add(72 * time.Hour)

	t.Run("stamps a delivered load", func(t *testing.T) {
		loadRepo := &MockLoadRepository{}
		uow := &MockLoadUoW{}
		factory := &MockLoadUoWFactory{}
		audit := &MockAuditRecorder{}

		// Cursor 4 is the delivered step for a single pickup/delivery pair.
		aggregate := testLoadAt(t, 4)

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

		handler := commands.NewSetInvoicedAtCommandHandler(factory, audit, discardLogger())
		cmd, err := commands.NewSetInvoicedAtCommand(aggregate.ID(), invoicedAt, kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, aggregate.InvoicedAt())
		assert.True(t, aggregate.InvoicedAt().Equal(invoicedAt))
		uow.AssertExpectations(t)
	})

	t.Run("rejects a load still in transit", func(t *testing.T) {
		loadRepo := &MockLoadRepository{}
		uow := &MockLoadUoW{}
		factory := &MockLoadUoWFactory{}
		audit := &MockAuditRecorder{}

		aggregate := testLoadAt(t, 2)

		factory.On("Create").Return(uow)
		uow.On("LoadRepository").Return(loadRepo)
		uow.On("Begin", ctx).Return(nil)
		loadRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil)
		uow.On("Rollback", ctx).Return(nil)

		handler := commands.NewSetInvoicedAtCommandHandler(factory, audit, discardLogger())
		cmd, err := commands.NewSetInvoicedAtCommand(aggregate.ID(), invoicedAt, kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, aggregate.InvoicedAt())
		loadRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
		audit.AssertNotCalled(t, "Record", ctx, mock.Anything)
	})
}

func TestNewSetInvoicedAtCommand(t *testing.T) {
	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := commands.NewSetInvoicedAtCommand(kernel.NewUUID(), time.Time{}, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty load ID", func(t *testing.T) {
		_, err := commands.NewSetInvoicedAtCommand(kernel.UUID{}, testBase, kernel.NewUUID())
		require.Error(t, err)
	})
}
