/*
Package jobs provides a bounded FIFO of closures run by a fixed pool of
worker goroutines, plus a sync-point barrier primitive for coordinating
them with code outside the pool.

A JobSystem's queue is a fixed-capacity ring buffer behind one mutex and
two condition variables: Schedule blocks while the queue is full, Work
blocks while it is empty. ScheduleSyncPoint and ScheduleNotConcurrent
build on a second barrier (also mutex + two condition variables) so that
every worker reaches a rendezvous point before work resumes — the same
two-phase wait/wake protocol as a standard barrier, expressed as ordinary
jobs pushed through the same queue.

JobSystem itself does not serialize access to any external state; the
silo package's Store is not safe for concurrent mutation, so callers
scheduling store-mutating jobs must either confine all mutation to
ScheduleNotConcurrent critical sections or otherwise ensure jobs that
touch the same archetype never run concurrently.
*/
package jobs
