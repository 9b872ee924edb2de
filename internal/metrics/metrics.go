package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace    = "backprop"
	networkLabel = "network"
)

// Observer is the process wide metrics instance, registered with the default prometheus registry.
var Observer = New()

func init() {
	prometheus.MustRegister(Observer.collectors()...)
}

// Metrics tracks the progress of training sessions, labelled by network id.
type Metrics struct {
	Iterations *prometheus.CounterVec
	Evaluated  *prometheus.CounterVec
	Loss       *prometheus.GaugeVec
	Accuracy   *prometheus.GaugeVec
}

// New creates a new unregistered set of metrics.
func New() *Metrics {
	return &Metrics{
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "iterations_total",
				Help:      "Number of training iterations.",
			}, []string{networkLabel}),
		Evaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Number of evaluated records.",
			}, []string{networkLabel}),
		Loss: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "window_loss",
				Help:      "Mean squared error over the last training samples.",
			}, []string{networkLabel}),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy",
				Help:      "Share of evaluated records classified correctly.",
			}, []string{networkLabel}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Iterations, m.Evaluated, m.Loss, m.Accuracy}
}

// Register registers all metrics with the given registerer.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			return fmt.Errorf("could not register metrics: %w", err)
		}
	}
	return nil
}

// Iterate counts one training iteration for the network.
func (m *Metrics) Iterate(id string) {
	m.Iterations.WithLabelValues(id).Inc()
}

// Evaluate counts one evaluated record for the network.
func (m *Metrics) Evaluate(id string) {
	m.Evaluated.WithLabelValues(id).Inc()
}

// SetLoss sets the current window loss of the network.
func (m *Metrics) SetLoss(id string, loss float64) {
	m.Loss.WithLabelValues(id).Set(loss)
}

// SetAccuracy sets the current evaluation accuracy of the network.
func (m *Metrics) SetAccuracy(id string, accuracy float64) {
	m.Accuracy.WithLabelValues(id).Set(accuracy)
}
