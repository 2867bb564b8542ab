// Package bytestore implements the chunked, append-only byte arena the loader uses to
// intern object names: fixed-size chunks hold the raw bytes of every name encountered,
// and since a chunk is never reallocated once created, every []byte handed back from
// Append stays valid for the lifetime of the Store. This mirrors the reference
// implementation's chunked_vector<char>, used as the backing store for a
// names-to-ids table that keys on string views into the arena rather than copied
// strings.
package bytestore
