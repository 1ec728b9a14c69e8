// Package store holds the authoritative in-memory budgeting state and
// its fire-and-forget persistence machinery.
package store

import (
	"context"
	"log/slog"
)

// saveQueue issues persistence writes in mutation order without ever
// blocking the mutating caller. Each queued job carries a full-state
// snapshot, so when the queue backs up it is safe to drop the stalest
// pending write: last-write-wins.
type saveQueue struct {
	name string
	jobs chan func(context.Context) error
	done chan struct{}
}

func newSaveQueue(name string) *saveQueue {
	q := &saveQueue{
		name: name,
		jobs: make(chan func(context.Context) error, 16),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *saveQueue) run() {
	defer close(q.done)
	for job := range q.jobs {
		if err := job(context.Background()); err != nil {
			// Failed saves are logged and dropped; the in-memory
			// state stays authoritative until the next save.
			slog.Error("Failed to persist state", "store", q.name, "error", err)
		}
	}
}

// enqueue hands a snapshot write to the background writer.
func (q *saveQueue) enqueue(job func(context.Context) error) {
	for {
		select {
		case q.jobs <- job:
			return
		default:
		}
		// Queue full: discard the oldest pending snapshot and retry.
		select {
		case <-q.jobs:
		default:
		}
	}
}

// close drains all pending writes and stops the writer. Only called
// during shutdown, after mutations have ceased.
func (q *saveQueue) close() {
	close(q.jobs)
	<-q.done
}
