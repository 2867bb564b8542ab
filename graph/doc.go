// Package graph loads a tabular text distance file into an Adjacency: a
// dense local index per distinct object plus, for every index, a sorted and
// deduplicated list of (neighbor, distance) pairs. Loading runs a fixed
// pipeline of four thread classes — one loader, a pool of parsers, one mapper,
// and a pool of updaters — coordinated entirely through the queue package's
// bounded queues, priority queue and semaphore, mirroring the reference
// implementation's loader/parser/mapper/updater thread split in
// graph_sparse.h. The named and numbered identifier variants share this
// pipeline and differ only in how a raw id token becomes a local index,
// captured behind the Resolver interface.
package graph
