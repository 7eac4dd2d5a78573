package itemq

import (
	"context"

	"github.com/tychoish/grip"

	"github.com/tychoish/itemq/queue"
)

type ctxKey string

const (
	confCtxKey  ctxKey = "itemq-conf"
	queueCtxKey ctxKey = "itemq-queue"
)

func WithConfiguration(ctx context.Context, conf *Configuration) context.Context {
	if HasAppConfiguration(ctx) {
		return ctx
	}
	return context.WithValue(ctx, confCtxKey, conf)
}

func AppConfiguration(ctx context.Context) *Configuration {
	val, ok := ctx.Value(confCtxKey).(*Configuration)
	if !ok {
		grip.Critical("configuration not loaded in context")
		return nil
	}

	if val == nil {
		grip.Alert("found nil configuration in context")
		return nil
	}
	return val
}

func HasAppConfiguration(ctx context.Context) bool {
	_, ok := ctx.Value(confCtxKey).(*Configuration)
	return ok
}

const (
	RandomStreamPopulate uint64 = iota + 1
	RandomStreamRemoval
)

// WithQueue builds the shared queue for the configuration and attaches
// it to the context. Every worker started from this context receives
// the same handle.
func WithQueue(ctx context.Context, conf *Configuration) context.Context {
	if HasQueue(ctx) {
		return ctx
	}

	q := queue.New(
		queue.WithRandom(conf.Random(RandomStreamRemoval)),
		queue.WithLogger(grip.Context(ctx)),
	)
	return context.WithValue(ctx, queueCtxKey, q)
}

func Queue(ctx context.Context) *queue.Queue {
	q, ok := ctx.Value(queueCtxKey).(*queue.Queue)
	if !ok {
		grip.Critical("queue not attached to context")
		return nil
	}
	return q
}

func HasQueue(ctx context.Context) bool {
	_, ok := ctx.Value(queueCtxKey).(*queue.Queue)
	return ok
}
