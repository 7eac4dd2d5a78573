package units

import (
	"context"
	"io"
	"time"

	"github.com/tychoish/fun/fnx"
	"github.com/tychoish/fun/irt"
	"github.com/tychoish/fun/wpa"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"

	"github.com/tychoish/itemq/queue"
)

type Intervals struct {
	Reducer  time.Duration
	Lister   time.Duration
	Thinning time.Duration
}

func DefaultIntervals() Intervals {
	return Intervals{
		Reducer:  500 * time.Millisecond,
		Lister:   500 * time.Millisecond,
		Thinning: 300 * time.Millisecond,
	}
}

// Workers returns the reducer, lister and thinning workers for q, all
// writing to out.
func Workers(q *queue.Queue, out io.Writer, format queue.ListingFormat, iv Intervals) []fnx.Worker {
	return []fnx.Worker{
		NewReducerWorker(q, out, iv.Reducer),
		NewListerWorker(q, out, format, iv.Lister),
		NewThinningWorker(q, iv.Thinning),
	}
}

// RunAll runs every worker concurrently and waits for all of them to
// return. Errors and panics from one worker do not stop the others;
// they are aggregated into the returned error.
func RunAll(ctx context.Context, workers ...fnx.Worker) error {
	err := wpa.RunWithPool(irt.Slice(workers),
		wpa.WorkerGroupConfNumWorkers(max(len(workers), 1)),
		wpa.WorkerGroupConfContinueOnError(),
		wpa.WorkerGroupConfContinueOnPanic(),
	).Run(ctx)

	grip.Context(ctx).Debug(message.Fields{
		"op":      "run workers",
		"workers": len(workers),
		"ok":      err == nil,
	})

	return err
}
