// Package load implements the load lifecycle progress engine: the Load
// aggregate root, its Stop value objects, and the pure functions that derive
// the workflow from them.
//
// A load's workflow is not a fixed enum. The number of pickups and
// deliveries varies per load (multi-stop and relay loads), so the finite
// step sequence is generated per load by BuildSequence, deterministically
// and from the stop set alone, so the same stops always yield the same steps
// on every read.
//
// The integer progress cursor into the detailed sequence is the single
// source of truth for a load's position. Everything a reader sees is derived
// from it: the coarse Status through ResolveStatus, and the user-facing
// position through Sequence.VisibleIndex. Neither projection is ever stored.
//
// Key business rules:
//   - a load needs at least one pickup and one delivery to have a workflow;
//     anything less is rejected with a precondition error
//   - stops are ordered by the moment they are expected to conclude
//     (appointment time, or window end), ties by insertion order
//   - Advance and Retreat clamp at the sequence bounds and are idempotent
//     there; absolute cursor writes outside the bounds are rejected
//   - invoiced-at and paid-at may only be set inside their cursor windows
package load
