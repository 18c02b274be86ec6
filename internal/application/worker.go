package application

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("coordinator closed")

// worker is the single background lane for network and file I/O. Jobs run
// one at a time in submission order, so the local state files never see
// concurrent writers. Callers block until their job completes or their
// context is cancelled; a job whose context died while queued is skipped.
type worker struct {
	jobs chan workerJob
	stop chan struct{}
}

type workerJob struct {
	ctx  context.Context
	run  func(context.Context) error
	done chan error
}

func newWorker() *worker {
	w := &worker{
		jobs: make(chan workerJob),
		stop: make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *worker) loop() {
	for {
		select {
		case <-w.stop:
			return
		case job := <-w.jobs:
			if err := job.ctx.Err(); err != nil {
				job.done <- err
				continue
			}
			job.done <- job.run(job.ctx)
		}
	}
}

func (w *worker) Do(ctx context.Context, run func(context.Context) error) error {
	done := make(chan error, 1)

	select {
	case w.jobs <- workerJob{ctx: ctx, run: run, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	case <-w.stop:
		return ErrClosed
	}

	// done is buffered, so an abandoned job does not block the lane.
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *worker) Close() {
	close(w.stop)
}
