// Package sorting implements classic in-place sorts over slices of any
// ordered type.
//
// What:
//
//   - Bubble    — adjacent-swap passes with early exit on a clean pass.
//   - Insertion — grows a sorted prefix one element at a time.
//   - Quick     — recursive partition sort, middle-element pivot.
//   - IsSorted  — ascending-order check.
//
// All sorts mutate the caller's slice and allocate nothing.
//
// Complexity:
//
//   - Bubble / Insertion: O(n²) worst, O(n) on already-sorted input.
//   - Quick:              O(n log n) average, O(n²) adversarial worst case.
//   - IsSorted:           O(n).
//
// These are teaching-scale algorithms with predictable behavior; reach for
// the standard library's sort when raw throughput matters.
package sorting
