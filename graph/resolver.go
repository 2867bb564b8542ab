package graph

import (
	"github.com/clusty-go/clusty/bytestore"
	"github.com/clusty-go/clusty/numtext"
)

// Resolver maps a raw identifier token read from an endpoint column to a dense local
// index, allocating a fresh index the first time a token is seen. A Resolver is owned
// exclusively by the mapper goroutine of the loader pipeline; nothing else touches it
// while a load is in progress.
type Resolver interface {
	// Resolve returns the local index for raw, allocating one on first sight. ok is
	// false when raw cannot be interpreted as a valid identifier (the numbered variant
	// rejects anything that isn't a non-negative decimal integer).
	Resolve(raw []byte) (id int32, ok bool)
	// NumIDs returns how many distinct local indices have been allocated so far.
	NumIDs() int
	// Name returns the external text for a local index, used by the renderer.
	Name(id int32) string
}

// NamedResolver implements Resolver for arbitrary byte-string identifiers: raw tokens
// are interned into a bytestore.Store (so the adjacency and renderer can hold stable
// string views instead of copies) and looked up through an open-addressed hash table
// keyed by that interned string, the Go analogue of the reference implementation's
// unordered_map<string_view, int, Murmur64_full> names-to-ids table.
type NamedResolver struct {
	store *bytestore.Store
	index *namedIndex
	names []string
}

// NewNamedResolver creates an empty NamedResolver, sized for roughly capacityHint
// distinct identifiers (0 picks a small default).
func NewNamedResolver(capacityHint int) *NamedResolver {
	if capacityHint <= 0 {
		capacityHint = 1024
	}

	return &NamedResolver{
		store: bytestore.NewStore(bytestore.DefaultChunkSize),
		index: newNamedIndex(capacityHint),
		names: make([]string, 0, capacityHint),
	}
}

// Resolve never fails for the named variant: any byte string is a valid identifier.
func (r *NamedResolver) Resolve(raw []byte) (int32, bool) {
	// Indexing with string(raw) directly does not allocate a new backing array; the
	// compiler recognizes this pattern as a read-only, non-escaping conversion.
	if id, ok := r.index.lookup(string(raw)); ok {
		return id, true
	}

	name := r.store.AppendView(raw)
	id := int32(len(r.names))
	r.names = append(r.names, name)
	r.index.insert(name, id)

	return id, true
}

func (r *NamedResolver) NumIDs() int { return len(r.names) }

func (r *NamedResolver) Name(id int32) string { return r.names[id] }

// NumberedResolver implements Resolver for non-negative decimal integer identifiers:
// the raw token is parsed as an integer "global id" and mapped to a dense local index
// through a sentinel-filled slice, the same global2local/local2global pair the
// reference implementation's numbered variant keeps.
type NumberedResolver struct {
	global2local []int32
	local2global []int32
}

// NewNumberedResolver creates an empty NumberedResolver.
func NewNumberedResolver() *NumberedResolver {
	return &NumberedResolver{}
}

const noLocalID int32 = -1

// Resolve parses raw as a non-negative decimal integer. ok is false if raw is not a
// clean non-negative integer token.
func (r *NumberedResolver) Resolve(raw []byte) (int32, bool) {
	global, n, ok := numtext.ParseInt(raw)
	if !ok || n != len(raw) || global < 0 {
		return 0, false
	}

	if int(global) >= len(r.global2local) {
		grown := make([]int32, global+1)
		for i := range grown {
			grown[i] = noLocalID
		}

		copy(grown, r.global2local)
		r.global2local = grown
	}

	if local := r.global2local[global]; local != noLocalID {
		return local, true
	}

	local := int32(len(r.local2global))
	r.global2local[global] = local
	r.local2global = append(r.local2global, int32(global))

	return local, true
}

func (r *NumberedResolver) NumIDs() int { return len(r.local2global) }

func (r *NumberedResolver) Name(id int32) string {
	return numtext.FormatInt(int64(r.local2global[id]))
}
