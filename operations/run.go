package operations

import (
	"context"
	"os"
	"time"

	"github.com/tychoish/cmdr"
	"github.com/tychoish/fun/ers"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"

	"github.com/tychoish/itemq"
	"github.com/tychoish/itemq/units"
)

func Run() *cmdr.Commander {
	return cmdr.MakeCommander().
		SetName("run").
		SetUsage("fill the queue and drain it with the reducer, lister and thinning workers").
		Flags(queueFlags()...).
		With(QueueOperationSpec().SetAction(RunWorkers).Add)
}

func List() *cmdr.Commander {
	return cmdr.MakeCommander().
		SetName("list").
		SetUsage("fill the queue and print a single listing").
		Flags(queueFlags()...).
		With(QueueOperationSpec().SetAction(ListOnce).Add)
}

// RunWorkers fills the shared queue and runs the three workers against
// it until each has observed the queue empty.
func RunWorkers(ctx context.Context, conf *itemq.Configuration) error {
	q := itemq.Queue(ctx)
	if q == nil {
		return ers.New("queue is not configured")
	}

	start := time.Now()
	units.Populate(q, conf.Random(itemq.RandomStreamPopulate), conf.Items)

	logger := grip.Context(ctx)
	logger.Info(message.Fields{
		"op":      "populated queue",
		"items":   q.Len(),
		"sum":     q.Sum(),
		"listing": conf.ListingFormat(),
	})

	err := units.RunAll(ctx, units.Workers(q, os.Stdout, conf.ListingFormat(), conf.Intervals())...)

	logger.Info(message.Fields{
		"op":    "workers complete",
		"dur":   time.Since(start).String(),
		"items": q.Len(),
		"err":   err != nil,
	})

	return err
}

func ListOnce(ctx context.Context, conf *itemq.Configuration) error {
	q := itemq.Queue(ctx)
	if q == nil {
		return ers.New("queue is not configured")
	}

	units.Populate(q, conf.Random(itemq.RandomStreamPopulate), conf.Items)
	return q.Render(os.Stdout, conf.ListingFormat())
}
