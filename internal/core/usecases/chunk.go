// internal/core/usecases/chunk.go
package usecases

// ChunkRange returns the half-open slice [start, end) of n sorted recipes
// handled by chunk out of total. When n <= total each chunk holds one recipe;
// otherwise chunks hold ceil(n/total). A chunk past the end is empty
// (start == end).
func ChunkRange(n, chunk, total int) (start, end int) {
	if n <= 0 || total <= 0 || chunk < 0 {
		return 0, 0
	}

	size := 1
	if n > total {
		size = (n + total - 1) / total
	}

	start = chunk * size
	if start >= n {
		return n, n
	}
	end = start + size
	if end > n {
		end = n
	}
	return start, end
}
