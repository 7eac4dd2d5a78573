package units

import (
	"math/rand/v2"
	"strings"

	"github.com/tychoish/itemq/queue"
)

const (
	MinLabelLength = 2
	MaxLabelLength = 5
	MaxItemValue   = 255
)

// RandomItem produces an item with a lowercase label of 2 to 5
// characters and a value in [0, 255].
func RandomItem(rng *rand.Rand) queue.Item {
	size := MinLabelLength + rng.IntN(MaxLabelLength-MinLabelLength+1)

	label := &strings.Builder{}
	label.Grow(size)
	for range size {
		label.WriteByte(byte('a' + rng.IntN(26)))
	}

	return queue.Item{Label: label.String(), Value: rng.IntN(MaxItemValue + 1)}
}

// Populate enqueues count random items.
func Populate(q *queue.Queue, rng *rand.Rand, count int) {
	for range count {
		q.Enqueue(RandomItem(rng))
	}
}
