package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ingestion Prometheus metrics.
var (
	ResourcesIngestedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lectern",
			Name:      "resources_ingested_total",
			Help:      "Total number of successfully ingested resources",
		},
	)

	IngestFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lectern",
			Name:      "ingest_failures_total",
			Help:      "Total fatal ingestion failures by pipeline stage",
		},
		[]string{"stage"}, // "blob" / "catalog"
	)

	ExtractionFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lectern",
			Name:      "extraction_failures_total",
			Help:      "Total payloads whose text extraction failed",
		},
	)

	OrphanedBlobsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lectern",
			Name:      "orphaned_blobs_total",
			Help:      "Total blobs left orphaned by failed catalog writes",
		},
	)

	BlobBytesWrittenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lectern",
			Name:      "blob_bytes_written_total",
			Help:      "Total payload bytes written to the blob store",
		},
	)
)

var ingestMetricsRegistered bool

// RegisterIngestMetrics registers Prometheus ingestion metrics. Must be called once from main.
func RegisterIngestMetrics() {
	if ingestMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResourcesIngestedTotal)
	prometheus.MustRegister(IngestFailuresTotal)
	prometheus.MustRegister(ExtractionFailuresTotal)
	prometheus.MustRegister(OrphanedBlobsTotal)
	prometheus.MustRegister(BlobBytesWrittenTotal)
	ingestMetricsRegistered = true
}
