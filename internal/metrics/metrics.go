// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smart_fridge"

// Result label values.
const (
	ResultOK       = "ok"
	ResultFailed   = "failed"
	ResultBusy     = "busy"
	ResultFallback = "fallback"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	scans          *prometheus.CounterVec
	recipes        *prometheus.CounterVec
	itemsMerged    prometheus.Counter
	inventoryItems prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Image scans by result.",
		}, []string{"result"}),
		recipes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_total",
			Help:      "Recipe requests by result.",
		}, []string{"result"}),
		itemsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detected_items_merged_total",
			Help:      "Items added to the inventory from scans.",
		}),
		inventoryItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_items",
			Help:      "Current number of items in the inventory.",
		}),
	}
	reg.MustRegister(
		m.scans,
		m.recipes,
		m.itemsMerged,
		m.inventoryItems,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveScan(result string, merged int) {
	if m == nil {
		return
	}
	m.scans.WithLabelValues(result).Inc()
	if merged > 0 {
		m.itemsMerged.Add(float64(merged))
	}
}

func (m *Metrics) ObserveRecipe(result string) {
	if m == nil {
		return
	}
	m.recipes.WithLabelValues(result).Inc()
}

func (m *Metrics) SetInventorySize(n int) {
	if m == nil {
		return
	}
	m.inventoryItems.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
