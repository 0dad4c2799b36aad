package vector

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Capacity  int // Slots in the block
	ElemSize  int // Bytes per slot
	SizeBytes int // Capacity * ElemSize
}

// SizeBytes returns the size of the block in bytes.
func (a *Arena[T]) SizeBytes() int {
	n, _ := blockBytes[T](a.Capacity())
	return n
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:  a.Capacity(),
		ElemSize:  elemSize[T](),
		SizeBytes: a.SizeBytes(),
	}
}

// Stats is a snapshot of a vector's occupancy and cumulative relocation work.
type Stats struct {
	Size          int     // Live elements
	Capacity      int     // Slots in the current arena
	Utilization   float64 // Size / Capacity (0.0-1.0), 0 when Capacity is 0
	Reallocations uint64  // Arenas adopted over the vector's lifetime
	Relocations   uint64  // Elements moved or copied into a new arena
}

// StatsSource is anything that can report vector Stats.
type StatsSource interface {
	Stats() Stats
}

// Stats returns a snapshot of the vector's statistics. Safe to call
// concurrently with mutations.
func (v *Vector[T]) Stats() Stats {
	s := Stats{
		Size:          int(v.stats.size.Load()),
		Capacity:      int(v.stats.capacity.Load()),
		Reallocations: v.stats.reallocations.Load(),
		Relocations:   v.stats.relocations.Load(),
	}
	if s.Capacity > 0 {
		s.Utilization = float64(s.Size) / float64(s.Capacity)
	}
	return s
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	return v.Stats().Utilization
}

const metricsPrefix = "vector_"

type statsCollector struct {
	src StatsSource

	size          *prometheus.Desc
	capacity      *prometheus.Desc
	utilization   *prometheus.Desc
	reallocations *prometheus.Desc
	relocations   *prometheus.Desc
}

// NewCollector returns a prometheus.Collector exporting the Stats of src with
// a constant "vector" label set to name.
func NewCollector(name string, src StatsSource) prometheus.Collector {
	labels := prometheus.Labels{"vector": name}
	return &statsCollector{
		src: src,
		size: prometheus.NewDesc(
			metricsPrefix+"size",
			"The current number of live elements.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			metricsPrefix+"capacity",
			"The current number of slots in the backing arena.",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			metricsPrefix+"utilization",
			"The ratio of live elements to capacity.",
			nil, labels,
		),
		reallocations: prometheus.NewDesc(
			metricsPrefix+"reallocations_total",
			"The number of times the backing arena was replaced.",
			nil, labels,
		),
		relocations: prometheus.NewDesc(
			metricsPrefix+"relocations_total",
			"The number of elements moved or copied into a new arena.",
			nil, labels,
		),
	}
}

func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.utilization
	ch <- c.reallocations
	ch <- c.relocations
}

func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, s.Utilization)
	ch <- prometheus.MustNewConstMetric(c.reallocations, prometheus.CounterValue, float64(s.Reallocations))
	ch <- prometheus.MustNewConstMetric(c.relocations, prometheus.CounterValue, float64(s.Relocations))
}

// Register registers collectors with reg, ignoring ones that are already
// registered. A nil reg is a no-op.
func Register(reg prometheus.Registerer, collectors ...prometheus.Collector) {
	if reg == nil {
		return
	}
	for _, collector := range collectors {
		err := reg.Register(collector)
		if err != nil {
			var alreadyRegisteredError prometheus.AlreadyRegisteredError
			if !errors.As(err, &alreadyRegisteredError) {
				panic(err)
			}
		}
	}
}
