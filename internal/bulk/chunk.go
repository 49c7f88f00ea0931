package bulk

import "github.com/campuspass/campuspass/constants"

// clampChunkSize bounds a requested chunk size; zero means the default.
func clampChunkSize(n int) int {
	if n == 0 {
		return constants.DefaultChunkSize
	}
	if n < constants.MinChunkSize {
		return constants.MinChunkSize
	}
	if n > constants.MaxChunkSize {
		return constants.MaxChunkSize
	}
	return n
}

// chunks splits items into consecutive sub-slices of at most size elements,
// preserving input order.
func chunks[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return [][]T{items}
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
