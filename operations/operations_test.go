package operations

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"

	"github.com/tychoish/itemq"
)

func testConfiguration(t *testing.T) *itemq.Configuration {
	t.Helper()
	conf := itemq.DefaultConfiguration()
	conf.Items = 16
	conf.Seed = 1234
	conf.DisablePacing()
	assert.NotError(t, conf.Validate())
	return conf
}

func TestOperations(t *testing.T) {
	t.Run("RunWorkersDrainsQueue", func(t *testing.T) {
		conf := testConfiguration(t)
		ctx := itemq.WithQueue(itemq.WithConfiguration(t.Context(), conf), conf)

		assert.NotError(t, RunWorkers(ctx, conf))
		check.True(t, itemq.Queue(ctx).IsEmpty())
	})
	t.Run("ListOnceKeepsItems", func(t *testing.T) {
		conf := testConfiguration(t)
		ctx := itemq.WithQueue(t.Context(), conf)

		assert.NotError(t, ListOnce(ctx, conf))
		check.Equal(t, itemq.Queue(ctx).Len(), conf.Items)
	})
	t.Run("MissingQueue", func(t *testing.T) {
		conf := testConfiguration(t)
		assert.Error(t, RunWorkers(t.Context(), conf))
		assert.Error(t, ListOnce(t.Context(), conf))
	})
	t.Run("BuildTimeUnset", func(t *testing.T) {
		check.Equal(t, buildTime(), "<UNKNOWN>")
	})
	t.Run("CommanderBuilds", func(t *testing.T) {
		check.True(t, Commander() != nil)
	})
}
