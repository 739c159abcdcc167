// Package dynamic implements small dynamic-programming and greedy number
// algorithms.
//
// What:
//
//   - Fibonacci  — iterative bottom-up DP, two rolling cells, exact uint64
//     results for n in [0, 93].
//   - CoinChange — greedy change-making: largest denominations first, exact
//     change or failure. Optimal for canonical coin systems (1/5/10/25 and
//     the like); a non-canonical system can make greedy miss solutions that
//     exist, which surfaces as ErrNoExactChange.
//
// Complexity:
//
//   - Fibonacci:  O(n) time, O(1) memory.
//   - CoinChange: O(d log d + d + amount/minCoin) — sort once, then scan.
//
// Errors:
//
//   - ErrNegative      — Fibonacci index below zero.
//   - ErrFibOverflow   — Fibonacci index beyond 93 (uint64 limit).
//   - ErrNoCoins       — empty denomination set.
//   - ErrNoExactChange — the greedy scan left a non-zero remainder.
package dynamic
