package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"

	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/mcode"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects the output encoding.
type Format string

const (
	FormatTSV Format = "tsv"
	FormatCSV Format = "csv"
	FormatDOT Format = "dot"
)

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTSV, FormatCSV, FormatDOT:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write emits res (tsv, csv) or g clustered by res (dot).
func Write(w io.Writer, f Format, g *core.Graph, res *mcode.Result) error {
	switch f {
	case FormatTSV:
		return WriteMembership(w, res, '\t')
	case FormatCSV:
		return WriteMembership(w, res, ',')
	case FormatDOT:
		return WriteGraphviz(w, g, WithClusters(res))
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteMembership writes one row per identifier in identifier order.
func WriteMembership(w io.Writer, res *mcode.Result, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	for _, id := range slices.Sorted(maps.Keys(res.Membership)) {
		if err := cw.Write([]string{id, strconv.Itoa(res.Membership[id])}); err != nil {
			return fmt.Errorf("export: membership: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: membership: %w", err)
	}
	return nil
}

// GraphvizOption configures WriteGraphviz.
type GraphvizOption func(*graphvizConfig)

type graphvizConfig struct {
	clusters *mcode.Result
}

// WithClusters groups nodes of multi-member complexes into cluster blocks.
func WithClusters(res *mcode.Result) GraphvizOption {
	return func(c *graphvizConfig) { c.clusters = res }
}

var plainID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dotID quotes identifiers that are not plain DOT names.
func dotID(id string) string {
	if plainID.MatchString(id) {
		return id
	}
	return strconv.Quote(id)
}

// WriteGraphviz writes g in DOT text, edges in insertion order.
func WriteGraphviz(w io.Writer, g *core.Graph, opts ...GraphvizOption) error {
	var cfg graphvizConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph {")
	if cfg.clusters != nil {
		groups := cfg.clusters.Complexes()
		for _, c := range slices.Sorted(maps.Keys(groups)) {
			members := groups[c]
			if len(members) < 2 {
				continue
			}
			fmt.Fprintf(bw, "\tsubgraph cluster_%d {\n", c)
			for _, id := range members {
				fmt.Fprintf(bw, "\t\t%s\n", dotID(id))
			}
			fmt.Fprintln(bw, "\t}")
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "\t%s -- %s\n", dotID(g.ID(e.A)), dotID(g.ID(e.B)))
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: graphviz: %w", err)
	}
	return nil
}
