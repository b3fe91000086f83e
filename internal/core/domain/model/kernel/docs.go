// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. Both are immutable, constructor-guarded,
// and safe for concurrent use.
package kernel
