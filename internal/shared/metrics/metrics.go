package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	enhanceRequestsTotal atomic.Uint64
	enhanceFailedTotal   atomic.Uint64
	resumesSavedTotal    atomic.Uint64
	resumesDeletedTotal  atomic.Uint64
	storeFailuresTotal   atomic.Uint64

	enhanceDuration = newHistogram([]float64{1, 10, 100, 250, 500, 750, 1000, 2000, 5000})
)

// IncEnhanceRequests counts an accepted enhancement request.
func IncEnhanceRequests() {
	enhanceRequestsTotal.Add(1)
}

// IncEnhanceFailed counts an enhancement that ended in an internal failure.
func IncEnhanceFailed() {
	enhanceFailedTotal.Add(1)
}

// IncResumesSaved counts a persisted resume.
func IncResumesSaved() {
	resumesSavedTotal.Add(1)
}

// IncResumesDeleted counts a deleted resume.
func IncResumesDeleted() {
	resumesDeletedTotal.Add(1)
}

// IncStoreFailures counts a durable backend fault.
func IncStoreFailures() {
	storeFailuresTotal.Add(1)
}

// ObserveEnhanceDurationMs records an enhancement duration in milliseconds.
func ObserveEnhanceDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	enhanceDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "enhance_requests_total", "Total enhancement requests accepted", enhanceRequestsTotal.Load())
	writeCounter(&buf, "enhance_failed_total", "Total enhancement requests failed", enhanceFailedTotal.Load())
	writeCounter(&buf, "resumes_saved_total", "Total resumes saved", resumesSavedTotal.Load())
	writeCounter(&buf, "resumes_deleted_total", "Total resumes deleted", resumesDeletedTotal.Load())
	writeCounter(&buf, "store_failures_total", "Total durable store faults", storeFailuresTotal.Load())
	writeHistogram(&buf, "enhance_duration_ms", "Enhancement duration in milliseconds", enhanceDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; writeHistogram accumulates them.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
