package dynamic

import (
	"errors"
	"sort"
)

// Sentinel errors for the number algorithms.
var (
	// ErrNegative indicates a Fibonacci index below zero.
	ErrNegative = errors.New("dynamic: index must be non-negative")

	// ErrFibOverflow indicates a Fibonacci index whose value exceeds uint64.
	ErrFibOverflow = errors.New("dynamic: Fibonacci overflows uint64 beyond index 93")

	// ErrNoCoins indicates an empty denomination set.
	ErrNoCoins = errors.New("dynamic: denomination set is empty")

	// ErrNoExactChange indicates the amount is not representable by the
	// greedy scan over the given denominations.
	ErrNoExactChange = errors.New("dynamic: no exact change for amount")
)

// maxFibIndex is the largest n with Fibonacci(n) representable in uint64.
const maxFibIndex = 93

// Fibonacci computes the n-th Fibonacci number (F(0)=0, F(1)=1) bottom-up.
// Only two DP cells are kept; no table is allocated.
// Returns ErrNegative for n < 0 and ErrFibOverflow for n > 93.
// Complexity: O(n) time, O(1) memory.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > maxFibIndex {
		return 0, ErrFibOverflow
	}
	if n <= 1 {
		return uint64(n), nil
	}
	prev, cur := uint64(0), uint64(1)
	for i := 2; i <= n; i++ {
		prev, cur = cur, prev+cur
	}

	return cur, nil
}

// CoinChange makes exact change for amount greedily: denominations are
// tried largest-first, each taken as many times as it fits. The returned
// slice lists every coin used, largest first. The input slice is not
// mutated; zero denominations are ignored.
//
// Greedy is exact for canonical coin systems. For a non-canonical system it
// may fail where a DP solution exists; that failure is reported as
// ErrNoExactChange, never a wrong answer.
//
// Returns ErrNoCoins for an empty set and ErrNoExactChange when a remainder
// survives the scan. Changing a zero amount yields an empty slice.
// Complexity: O(d log d + amount/minCoin) for d denominations.
func CoinChange(coins []uint, amount uint) ([]uint, error) {
	if len(coins) == 0 {
		return nil, ErrNoCoins
	}
	denoms := make([]uint, len(coins))
	copy(denoms, coins)
	sort.Slice(denoms, func(i, j int) bool { return denoms[i] > denoms[j] })

	change := make([]uint, 0)
	remaining := amount
	for _, coin := range denoms {
		if coin == 0 {
			continue
		}
		for remaining >= coin {
			change = append(change, coin)
			remaining -= coin
		}
	}
	if remaining != 0 {
		return nil, ErrNoExactChange
	}

	return change, nil
}
