package units

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tychoish/fun/ers"
	"github.com/tychoish/fun/fnx"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"

	"github.com/tychoish/itemq/queue"
)

// Every worker polls IsEmpty between operations and exits once it
// observes an empty queue. The check is not synchronized with the
// operation that follows it: a worker may act once more after another
// worker removed the last item. Each operation tolerates an empty queue,
// so this only costs a wasted iteration.

// NewReducerWorker reverses the queue and reports the sum of its
// values until the queue is empty.
func NewReducerWorker(q *queue.Queue, out io.Writer, interval time.Duration) fnx.Worker {
	return func(ctx context.Context) (err error) {
		start := time.Now()
		count := 0
		defer func() {
			grip.Context(ctx).Info(message.Fields{
				"op":         "reducer",
				"iterations": count,
				"dur":        time.Since(start).String(),
				"err":        err != nil,
			})
		}()

		for !q.IsEmpty() {
			q.Reverse()
			if _, err = fmt.Fprintln(out, "sum of values in reversed queue:", q.Sum()); err != nil {
				return ers.Wrap(err, "writing sum")
			}
			count++

			if !pause(ctx, interval) {
				return nil
			}
		}

		return nil
	}
}

// NewListerWorker writes a positional listing of the queue until the
// queue is empty.
func NewListerWorker(q *queue.Queue, out io.Writer, format queue.ListingFormat, interval time.Duration) fnx.Worker {
	return func(ctx context.Context) (err error) {
		start := time.Now()
		count := 0
		defer func() {
			grip.Context(ctx).Info(message.Fields{
				"op":         "lister",
				"format":     format,
				"iterations": count,
				"dur":        time.Since(start).String(),
				"err":        err != nil,
			})
		}()

		for !q.IsEmpty() {
			if err = q.Render(out, format); err != nil {
				return ers.Wrapf(err, "rendering %s listing", format)
			}
			count++

			if !pause(ctx, interval) {
				return nil
			}
		}

		return nil
	}
}

// NewThinningWorker removes one random item per interval until the
// queue is empty.
func NewThinningWorker(q *queue.Queue, interval time.Duration) fnx.Worker {
	return func(ctx context.Context) error {
		start := time.Now()
		removed := thin(ctx, q, func(ctx context.Context) bool { return pause(ctx, interval) })

		grip.Context(ctx).Info(message.Fields{
			"op":      "thinning",
			"removed": removed,
			"dur":     time.Since(start).String(),
		})

		return nil
	}
}

// thin calls wait before each removal and returns the number of items
// it removed. Another worker may drain the queue while wait blocks, in
// which case the removal finds nothing and thin stops.
func thin(ctx context.Context, q *queue.Queue, wait func(context.Context) bool) int {
	logger := grip.Context(ctx)
	removed := 0

	for !q.IsEmpty() {
		if !wait(ctx) {
			return removed
		}

		it, err := q.RemoveRandomItem()
		if ers.Is(err, queue.ErrEmptyQueue) {
			return removed
		}
		removed++

		logger.Debug(message.Fields{
			"op":    "remove random item",
			"label": it.Label,
			"value": it.Value,
		})
	}

	return removed
}

// pause waits for the interval and reports false if the context was
// canceled first.
func pause(ctx context.Context, interval time.Duration) bool {
	if interval <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
