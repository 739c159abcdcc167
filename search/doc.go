// Package search implements binary and linear search over slices.
//
// What:
//
//   - Binary — half-open bisection over an ascending slice.
//   - Linear — left-to-right scan, no ordering requirement.
//
// Both return (index, true) on a hit and (0, false) on a miss; the index is
// meaningless when the bool is false. Absence is an indicator, never an
// error or a panic.
//
// Complexity:
//
//   - Binary: O(log n). Input MUST be sorted ascending; the result is
//     unspecified otherwise.
//   - Linear: O(n).
package search
