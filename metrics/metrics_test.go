package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travelgraph/metrics"
)

func TestRecorder_ObserveTraversal(t *testing.T) {
	r := metrics.New()
	r.ObserveTraversal("dijkstra", time.Millisecond)
	r.ObserveTraversal("dijkstra", 2*time.Millisecond)
	r.Track("bfs")()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Traversals.WithLabelValues("dijkstra")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Traversals.WithLabelValues("bfs")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.TraversalDuration))
}

func TestRecorder_GraphSize(t *testing.T) {
	r := metrics.New()
	r.SetGraphSize(30, 435)

	expected := `
# HELP travelgraph_graph_edges Number of undirected edges in the current graph.
# TYPE travelgraph_graph_edges gauge
travelgraph_graph_edges 435
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "travelgraph_graph_edges"))
	assert.Equal(t, 30.0, testutil.ToFloat64(r.GraphVertices))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.New()
	r.ObserveTraversal("prim", time.Microsecond)
	path := filepath.Join(t.TempDir(), "travelgraph.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `travelgraph_traversals_total{algorithm="prim"} 1`)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.ObserveTraversal("bfs", time.Second)
		r.Track("bfs")()
		r.SetGraphSize(1, 1)
	})
	assert.NoError(t, r.WriteTextfile("/nonexistent/dir/x.prom"))
	assert.Nil(t, r.Registry())
}
