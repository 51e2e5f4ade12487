package observability

import (
	"net/http"
	"sync"

	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	DirectionDecode = "decode"
	DirectionEncode = "encode"
)

var (
	registerOnce sync.Once

	codecRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixwire",
			Subsystem: "codec",
			Name:      "records_total",
			Help:      "Records decoded or encoded, by outcome.",
		},
		[]string{"schema", "direction", "result"},
	)
	codecBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixwire",
			Subsystem: "codec",
			Name:      "bytes_total",
			Help:      "Wire bytes of successfully decoded or encoded records.",
		},
		[]string{"schema", "direction"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(codecRecords, codecBytes)
	})
}

// RecordCodec counts one decode or encode attempt. err is classified with
// protocol.Classify; n is only counted on success.
func RecordCodec(schema, direction string, n int, err error) {
	RegisterMetrics()
	codecRecords.WithLabelValues(schema, direction, protocol.Classify(err)).Inc()
	if err == nil {
		codecBytes.WithLabelValues(schema, direction).Add(float64(n))
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	RegisterMetrics()
	return promhttp.Handler()
}
