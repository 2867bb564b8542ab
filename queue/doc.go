// Package queue provides the concurrency primitives the sparse graph loader's pipeline
// is built from: a counting Semaphore, a bounded FIFO Queue, and a PriorityQueue that
// redelivers items in ascending key order regardless of the order concurrent producers
// pushed them in. These mirror the reference implementation's Semaphore, parallel_queue
// and parallel_priority_queue classes, expressed with Go's mutex/condition-variable and
// channel idioms instead of hand-rolled wait loops.
package queue
