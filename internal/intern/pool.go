// Package intern deduplicates the storage of repeated strings, such as
// namespace URIs and attribute values shared by many nodes.
//
// Go already compares strings by content, so interning never changes
// equality semantics; it only avoids keeping N copies of the same bytes
// around. The pool is sharded by a dolthub/maphash hash of the string to keep
// interning cheap under concurrent readers.
package intern

import (
	"github.com/dolthub/maphash"

	"github.com/flier/xdoc/internal/xsync"
)

const shardCount = 16

// Pool interns strings, returning a canonical copy for repeated content.
type Pool struct {
	hash   maphash.Hasher[string]
	shards [shardCount]xsync.Map[string, string]
}

// NewPool constructs an empty Pool.
func NewPool() *Pool {
	return &Pool{hash: maphash.NewHasher[string]()}
}

// Intern returns a string with the same content as s. Repeated calls with
// equal content return the exact same backing string, saving memory when the
// same namespace URI or attribute value recurs across many nodes.
func (p *Pool) Intern(s string) string {
	shard := &p.shards[p.hash.Hash(s)%shardCount]

	if v, ok := shard.Load(s); ok {
		return v
	}

	v, _ := shard.LoadOrStore(s, func() string { return s })

	return v
}
