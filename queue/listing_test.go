package queue

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestListing(t *testing.T) {
	q := New()
	fill(q, scenarioItems()...)
	q.Reverse()

	t.Run("Plain", func(t *testing.T) {
		expected := strings.Join([]string{
			"pos:  0 | str:    ef | val:  30",
			"pos:  1 | str:    cd | val:  20",
			"pos:  2 | str:    ab | val:  10",
			"",
			"",
		}, "\n")
		assert.Equal(t, q.Format(), expected)

		buf := &bytes.Buffer{}
		assert.NotError(t, q.PrintItems(buf))
		assert.Equal(t, buf.String(), expected)

		buf.Reset()
		assert.NotError(t, q.Render(buf, ListingPlain))
		assert.Equal(t, buf.String(), expected)
	})
	t.Run("Table", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, q.Render(buf, ListingTable))
		out := buf.String()
		check.True(t, strings.Contains(out, "LABEL"))
		lines := strings.Split(strings.TrimSpace(out), "\n")
		// header, separator, and one row per item
		assert.Equal(t, len(lines), 5)
		check.True(t, strings.Contains(lines[2], "ef"))
		check.True(t, strings.Contains(lines[4], "ab"))
	})
	t.Run("JSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, q.Render(buf, ListingJSON))
		var entries []Entry
		assert.NotError(t, json.Unmarshal(buf.Bytes(), &entries))
		assert.Equal(t, len(entries), 3)
		check.Equal(t, entries[0], Entry{Position: 0, Label: "ef", Value: 30})
	})
	t.Run("Invalid", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.ErrorIs(t, q.Render(buf, ListingFormat("xml")), ErrInvalidFormat)
		assert.Zero(t, buf.Len())
		assert.ErrorIs(t, ListingFormat("yaml").Validate(), ErrInvalidFormat)
		assert.NotError(t, ListingTable.Validate())
	})
	t.Run("WriteErrors", func(t *testing.T) {
		for _, format := range []ListingFormat{ListingPlain, ListingTable, ListingJSON} {
			t.Run(string(format), func(t *testing.T) {
				w := &failingWriter{err: errors.New("disk full")}
				err := q.Render(w, format)
				assert.Error(t, err)
				check.True(t, errors.Is(err, w.err))
			})
		}
	})
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, New().Format(), "\n")
	})
	t.Run("DoesNotMutate", func(t *testing.T) {
		before := q.Snapshot()
		_ = q.Format()
		after := q.Snapshot()
		assert.Equal(t, len(before), len(after))
		for idx := range before {
			check.Equal(t, before[idx], after[idx])
		}
	})
}

type failingWriter struct{ err error }

func (w *failingWriter) Write([]byte) (int, error) { return 0, w.err }
