//go:build go1.21

// Package arena provides a chunked bump allocator for values of a single type.
//
// Unlike a byte-oriented arena, [Arena] allocates typed chunks ([]T) and hands
// out pointers into them. Go's garbage collector treats each chunk as an
// ordinary slice backing array: as long as any pointer returned by [Arena.New]
// is reachable, the chunk holding it is kept alive and never moved, so a
// pointer returned by [Arena.New] stays valid, and stable, for as long as the
// [Arena] itself is reachable. No unsafe code is required to get this
// guarantee.
//
// Chunks double in size as the arena grows, starting from a small initial
// chunk, so that allocation is amortized O(1) and large arenas end up making
// few, large underlying allocations.
package arena

// Arena allocates values of type T out of growable chunks.
//
// The zero Arena is empty and ready to use.
type Arena[T any] struct {
	chunks [][]T
	len    int // number of elements used in the last chunk
}

const minChunkSize = 8

// New allocates a new T on the arena, initialized to value, and returns a
// pointer to it.
//
// The returned pointer remains valid for as long as the Arena is reachable:
// the arena never reclaims or moves memory it has handed out.
func (a *Arena[T]) New(value T) *T {
	if len(a.chunks) == 0 || a.len == cap(a.chunks[len(a.chunks)-1]) {
		a.grow()
	}

	i := len(a.chunks) - 1
	a.chunks[i] = a.chunks[i][:a.len+1]
	a.chunks[i][a.len] = value

	p := &a.chunks[i][a.len]
	a.len++

	return p
}

func (a *Arena[T]) grow() {
	size := minChunkSize
	if n := len(a.chunks); n > 0 {
		size = cap(a.chunks[n-1]) * 2
	}

	a.chunks = append(a.chunks, make([]T, 0, size))
	a.len = 0
}

// Len reports the total number of values allocated from this arena.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}

	n := a.len
	for _, c := range a.chunks[:len(a.chunks)-1] {
		n += cap(c)
	}

	return n
}
