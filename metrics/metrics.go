// Package metrics instruments graph traversals with Prometheus collectors
// held in a private registry, exported as a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "travelgraph"

// Recorder holds all collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	Traversals        *prometheus.CounterVec
	TraversalDuration *prometheus.HistogramVec
	GraphVertices     prometheus.Gauge
	GraphEdges        prometheus.Gauge
}

// New creates a Recorder registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Traversals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "traversals_total",
			Help:      "Total number of graph traversals, labelled by algorithm.",
		}, []string{"algorithm"}),
		TraversalDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "traversal_duration_seconds",
			Help:      "Graph traversal latency in seconds, labelled by algorithm.",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1, 1},
		}, []string{"algorithm"}),
		GraphVertices: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Number of vertices in the current graph.",
		}),
		GraphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_edges",
			Help:      "Number of undirected edges in the current graph.",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for testutil or an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObserveTraversal counts one traversal and records how long it took.
func (r *Recorder) ObserveTraversal(algorithm string, d time.Duration) {
	if r == nil {
		return
	}
	r.Traversals.WithLabelValues(algorithm).Inc()
	r.TraversalDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

// Track starts a timer; call the returned func when the traversal ends.
//
//	defer rec.Track("dijkstra")()
func (r *Recorder) Track(algorithm string) func() {
	start := time.Now()

	return func() { r.ObserveTraversal(algorithm, time.Since(start)) }
}

// SetGraphSize records the vertex and edge counts of the graph in use.
func (r *Recorder) SetGraphSize(vertices, edges int) {
	if r == nil {
		return
	}
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// WriteTextfile writes all metrics to path in the Prometheus text format,
// atomically, for the node-exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write textfile %s: %w", path, err)
	}

	return nil
}
