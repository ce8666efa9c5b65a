package metrics

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finder_recomputes_total",
		Help: "The total number of recomputed result views",
	}, []string{"kind"})
	recomputeSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finder_recompute_seconds",
		Help:    "Time spent filtering and sorting one view",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"kind"})
	resultItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "finder_result_items",
		Help: "Number of items in the latest result view",
	}, []string{"kind"})
	collectionsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finder_collections_loaded_total",
		Help: "The total number of loaded collection files",
	}, []string{"kind"})
	collectionItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "finder_collection_items",
		Help: "Number of items in the latest loaded collection",
	}, []string{"kind"})
)

// Recorder reports controller recomputes for one collection kind.
type Recorder struct {
	kind string
}

func NewRecorder(kind string) *Recorder {
	return &Recorder{kind: kind}
}

func (r *Recorder) Recomputed(session string, elapsed time.Duration, shown int, total int) {
	recomputes.WithLabelValues(r.kind).Inc()
	recomputeSeconds.WithLabelValues(r.kind).Observe(elapsed.Seconds())
	resultItems.WithLabelValues(r.kind).Set(float64(shown))
}

func CollectionLoaded(kind string, items int) {
	collectionsLoaded.WithLabelValues(kind).Inc()
	collectionItems.WithLabelValues(kind).Set(float64(items))
}

// Handler serves /metrics and, when profiling is set, the pprof endpoints.
func Handler(profiling bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if profiling {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return mux
}
