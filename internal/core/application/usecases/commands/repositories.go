// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, then best-effort audit emission.
package commands

import (
	"context"

	"loadflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// CounterRepoFactory provides access to the counter repository within a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// LoadUoW manages transactions for load-only operations.
	// Used by the progress and timestamp mutations.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// UoW manages transactions spanning the load and counter aggregates.
	// Load creation allocates the invoice number and persists the load in
	// one transaction, so a failed create never burns a number.
	UoW interface {
		TxManager
		LoadRepoFactory
		CounterRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
