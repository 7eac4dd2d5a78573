package queue

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/tychoish/fun/ers"
)

// Entry is one row of a listing: an item and its zero-based position.
type Entry struct {
	Position int    `bson:"pos" json:"pos" yaml:"pos"`
	Label    string `bson:"label" json:"label" yaml:"label"`
	Value    int    `bson:"value" json:"value" yaml:"value"`
}

type ListingFormat string

// ErrInvalidFormat is returned for listing formats other than the
// ones defined in this package.
const ErrInvalidFormat ers.Error = "invalid listing format"

const (
	ListingPlain ListingFormat = "plain"
	ListingTable ListingFormat = "table"
	ListingJSON  ListingFormat = "json"
)

func (f ListingFormat) Validate() error {
	switch f {
	case ListingPlain, ListingTable, ListingJSON:
		return nil
	default:
		return ers.Wrapf(ErrInvalidFormat, "%q", string(f))
	}
}

// Entries returns the positional listing of the queue as of a single
// critical section.
func (q *Queue) Entries() []Entry {
	items := q.Snapshot()
	out := make([]Entry, len(items))
	for idx, it := range items {
		out[idx] = Entry{Position: idx, Label: it.Label, Value: it.Value}
	}
	return out
}

// Format renders the plain listing: one line per item followed by a
// blank line.
func (q *Queue) Format() string {
	buf := &strings.Builder{}
	writePlain(buf, q.Entries())
	return buf.String()
}

// PrintItems writes the plain listing to w.
func (q *Queue) PrintItems(w io.Writer) error {
	_, err := io.WriteString(w, q.Format())
	return err
}

// Render writes the listing to w in the given format.
func (q *Queue) Render(w io.Writer, format ListingFormat) error {
	entries := q.Entries()

	switch format {
	case ListingPlain, "":
		buf := &strings.Builder{}
		writePlain(buf, entries)
		_, err := io.WriteString(w, buf.String())
		return err
	case ListingTable:
		ew := &errWriter{w: w}
		table := tabby.NewCustom(tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0))
		table.AddHeader("POS", "LABEL", "VALUE")
		for _, e := range entries {
			table.AddLine(e.Position, e.Label, e.Value)
		}
		table.Print()
		return ers.Wrap(ew.err, "writing table listing")
	case ListingJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return ers.Wrap(enc.Encode(entries), "encoding listing")
	default:
		return format.Validate()
	}
}

func writePlain(buf *strings.Builder, entries []Entry) {
	for _, e := range entries {
		fmt.Fprintf(buf, "pos: %2d | str: %5s | val: %3d\n", e.Position, e.Label, e.Value)
	}
	buf.WriteString("\n")
}

// errWriter keeps the first write error, since tabby does not return
// one. Writes after a failure are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
