// Package printqueue provides the QueueEntry entity for the shared, multi-user
// batch print queue. Entries are FIFO by time added; batches of a fixed standard
// size are cut from the oldest unprinted entries and committed atomically.
package printqueue
