// Package metrics содержит счётчики операций с реестром проката.
// Метрики регистрируются в собственном prometheus.Registry и не публикуются по сети.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Названия операций.
const (
	OpAdd    = "add"
	OpList   = "list"
	OpRemove = "remove"
	OpUpdate = "update"
)

// Результаты операций.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
)

// Metrics хранит счётчики операций и размер реестра.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	records    prometheus.Gauge
}

// New создает набор метрик и регистрирует его.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "movie_rental",
			Name:      "operations_total",
			Help:      "Number of registry operations by result.",
		}, []string{"operation", "result"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "movie_rental",
			Name:      "records",
			Help:      "Number of rentals currently stored.",
		}),
	}
	m.registry.MustRegister(m.operations, m.records)
	return m
}

// Observe учитывает выполненную операцию.
func (m *Metrics) Observe(operation string, found bool) {
	result := ResultOK
	if !found {
		result = ResultNotFound
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// SetRecords фиксирует текущее количество записей.
func (m *Metrics) SetRecords(n int) {
	m.records.Set(float64(n))
}

// Snapshot собирает текущие значения в виде "имя{метки}" -> значение.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			labels := metric.GetLabel()
			if len(labels) > 0 {
				key += "{"
				for i, lp := range labels {
					if i > 0 {
						key += ","
					}
					key += lp.GetName() + "=" + lp.GetValue()
				}
				key += "}"
			}
			switch {
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[key] = metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
