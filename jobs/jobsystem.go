package jobs

import "runtime"

// Option configures a JobSystem at construction.
type Option func(*jobSystemOptions)

type jobSystemOptions struct {
	callerWorks bool
}

// WithCallerWorks tells the JobSystem that the caller's own goroutine will
// also call Work in the scheduling loop (e.g. a main loop that runs
// Work alongside the pool instead of only scheduling). It only adjusts
// sync-point barrier accounting; it never spawns an extra goroutine.
func WithCallerWorks() Option {
	return func(o *jobSystemOptions) { o.callerWorks = true }
}

// JobSystem runs scheduled closures on a fixed pool of worker goroutines
// behind a bounded queue, with a barrier primitive for sync points.
type JobSystem struct {
	queue   *ring
	bar     *barrier
	workers int
}

// NewJobSystem starts a worker pool sized to runtime.GOMAXPROCS(0) (Go's
// analogue of hardware_concurrency), backed by a queue of queueCapacity
// pending jobs. Workers start immediately and run until the process
// exits; JobSystem has no Stop.
func NewJobSystem(queueCapacity int, opts ...Option) *JobSystem {
	var o jobSystemOptions
	for _, opt := range opts {
		opt(&o)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	nworkers := workers
	if o.callerWorks {
		nworkers++
	}

	j := &JobSystem{
		queue:   newRing(queueCapacity),
		bar:     newBarrier(nworkers),
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		go func() {
			for {
				j.queue.pop()()
			}
		}()
	}
	return j
}

// Schedule enqueues job, blocking while the queue is full.
func (j *JobSystem) Schedule(job func()) {
	j.queue.push(job)
}

// Work pops and runs one job, blocking while the queue is empty. A job
// that panics propagates out of Work unmodified.
func (j *JobSystem) Work() {
	j.queue.pop()()
}

// ScheduleSyncPoint schedules a barrier: every worker (and the caller, if
// constructed with WithCallerWorks) blocks at this point in the queue
// until all of them have reached it.
func (j *JobSystem) ScheduleSyncPoint() {
	for i := 1; i < j.bar.nworkers; i++ {
		j.Schedule(j.bar.waiterJob)
	}
	j.Schedule(j.bar.wakeJob)
}

// ScheduleNotConcurrent runs job inside a full barrier: every other
// participant is blocked for the duration, so job is guaranteed to run
// with no other scheduled job executing concurrently.
func (j *JobSystem) ScheduleNotConcurrent(job func()) {
	for i := 1; i < j.bar.nworkers; i++ {
		j.Schedule(j.bar.waiterJob)
	}
	j.Schedule(job)
	j.Schedule(j.bar.wakeJob)
}

// Workers returns the barrier's participant count: the worker pool size,
// plus one more if the JobSystem was constructed with WithCallerWorks.
func (j *JobSystem) Workers() int {
	return j.bar.nworkers
}
