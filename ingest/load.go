package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcode/core"
)

// Load parses r and returns the kept triples in input order.
func Load(r io.Reader, opts ...Option) ([]Triple, Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		out   []Triple
		stats Stats
	)
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, ErrEmptyInput
		}
		return nil, stats, fmt.Errorf("%w: line 1: %v", ErrMalformedRow, err)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, stats, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, pe.Line, pe.Err)
			}
			return nil, stats, fmt.Errorf("ingest: read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		stats.Rows++

		if len(rec) < 3 {
			return nil, stats, fmt.Errorf("%w: line %d: %d fields", ErrMalformedRow, line, len(rec))
		}
		score, err := strconv.ParseUint(strings.TrimSpace(rec[2]), 10, 16)
		if err != nil {
			return nil, stats, fmt.Errorf("%w: line %d: score %q", ErrMalformedRow, line, rec[2])
		}

		a, b := o.translate(rec[0]), o.translate(rec[1])
		if a == o.Unknown || b == o.Unknown {
			stats.DroppedUnknown++
			continue
		}
		if uint16(score) < o.MinScore {
			stats.DroppedScore++
			continue
		}
		out = append(out, Triple{A: a, B: b, Score: uint16(score)})
		stats.Kept++
	}

	return out, stats, nil
}

func (o Options) translate(id string) string {
	id = strings.TrimSpace(id)
	if o.Mapping == nil {
		return id
	}
	if m, ok := o.Mapping[id]; ok {
		return m
	}
	return o.Unknown
}

// Build adds every triple to a new graph in order.
func Build(triples []Triple) *core.Graph {
	g := core.NewGraph(core.WithCapacity(len(triples)))
	for _, t := range triples {
		g.AddEdge(t.A, t.B, t.Score)
	}
	return g
}

// LoadMapping reads a tab-separated translation table whose second column
// holds "target|..." and third column the source identifier. Lines with
// fewer columns are skipped.
func LoadMapping(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	m := make(map[string]string)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: mapping: %w", err)
		}
		if len(rec) < 3 {
			continue
		}
		target, _, _ := strings.Cut(rec[1], "|")
		m[strings.TrimSpace(rec[2])] = strings.TrimSpace(target)
	}
}
