package slots

import "fmt"

// CreateFixedReelOrder lays out every symbol count times so that no two
// adjacent positions hold the same symbol. The result is deterministic:
// each position takes the symbol with the most copies left that differs
// from the previous one, lower index first on ties.
func CreateFixedReelOrder(counts []int) ([]int, error) {
	remaining := make([]int, len(counts))
	total := 0
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("negative count %d for symbol %d", c, i)
		}
		remaining[i] = c
		total += c
	}

	order := make([]int, 0, total)
	last := -1
	for len(order) < total {
		pick := -1
		for sym, left := range remaining {
			if left == 0 || sym == last {
				continue
			}
			if pick == -1 || left > remaining[pick] {
				pick = sym
			}
		}
		if pick == -1 {
			return nil, fmt.Errorf("cannot avoid adjacent repeats of symbol %d with counts %v", last, counts)
		}
		order = append(order, pick)
		remaining[pick]--
		last = pick
	}

	return order, nil
}
