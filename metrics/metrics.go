package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "mcode"

// Stage names used with ObserveStage.
const (
	StageLoad   = "load"
	StageScore  = "score"
	StageAssign = "assign"
	StageExport = "export"
)

// Registry groups every collector of a run.
type Registry struct {
	registry *prometheus.Registry

	RowsTotal         *prometheus.CounterVec
	NodesScoredTotal  prometheus.Counter
	CacheLookupsTotal *prometheus.CounterVec
	ComplexesFound    prometheus.Gauge
	GraphNodes        prometheus.Gauge
	GraphEdges        prometheus.Gauge
	StageDuration     *prometheus.HistogramVec
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.RowsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Edge-list rows by outcome",
		},
		[]string{"outcome"}, // kept, unknown, low_score
	)
	r.NodesScoredTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nodes_scored_total",
		Help:      "Nodes that received a computed weight",
	})
	r.CacheLookupsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Weight cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)
	r.ComplexesFound = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "complexes",
		Help:      "Complexes in the last assignment",
	})
	r.GraphNodes = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_nodes",
		Help:      "Nodes in the interaction graph",
	})
	r.GraphEdges = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_edges",
		Help:      "Edges in the interaction graph",
	})
	r.StageDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages in seconds",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
		},
		[]string{"stage"},
	)
	return r
}

// Prometheus exposes the underlying registry.
func (r *Registry) Prometheus() *prometheus.Registry { return r.registry }

// ObserveStage records how long stage took.
func (r *Registry) ObserveStage(stage string, d time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordRows adds loader outcome counts.
func (r *Registry) RecordRows(kept, unknown, lowScore int) {
	r.RowsTotal.WithLabelValues("kept").Add(float64(kept))
	r.RowsTotal.WithLabelValues("unknown").Add(float64(unknown))
	r.RowsTotal.WithLabelValues("low_score").Add(float64(lowScore))
}

// RecordGraph sets the graph size gauges.
func (r *Registry) RecordGraph(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// RecordCache counts a cache hit or miss.
func (r *Registry) RecordCache(hit bool) {
	if hit {
		r.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	r.CacheLookupsTotal.WithLabelValues("miss").Inc()
}

// WriteText writes every gathered family in the text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
