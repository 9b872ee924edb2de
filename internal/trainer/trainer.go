package trainer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/drakos74/backprop/internal/buffer"
	"github.com/drakos74/backprop/internal/data"
	"github.com/drakos74/backprop/internal/metrics"
	"github.com/drakos74/backprop/internal/net"
	"github.com/drakos74/backprop/internal/storage"
)

const (
	// SnapshotLabel is the storage label of the trained network.
	SnapshotLabel = "snapshot"
	// ReportLabel is the storage label of the session report.
	ReportLabel = "report"
)

// Source provides the records of a session, returning io.EOF when exhausted.
type Source interface {
	Next() (data.Record, error)
}

// Report summarises a training session.
type Report struct {
	ID         string     `json:"id"`
	Iterations int        `json:"iterations"`
	Loss       float64    `json:"loss"`
	Training   ErrorStats `json:"training"`
	Evaluated  int        `json:"evaluated"`
	Correct    int        `json:"correct"`
	Accuracy   float64    `json:"accuracy"`
	MSE        float64    `json:"mse"`
	Evaluation ErrorStats `json:"evaluation"`
}

// ErrorStats describes the distribution of the per sample squared error.
type ErrorStats struct {
	Mean  float64 `json:"mean"`
	StDev float64 `json:"stdev"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func newErrorStats(s buffer.Stats) ErrorStats {
	return ErrorStats{
		Mean:  s.Avg(),
		StDev: s.StDev(),
		Min:   s.Min(),
		Max:   s.Max(),
	}
}

// Option adjusts a trainer.
type Option func(t *Trainer)

// WithMetrics sets the metrics the trainer reports to.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Trainer) {
		t.metrics = m
	}
}

// WithStorage sets the storage for the trained network and the report.
func WithStorage(p storage.Persistence) Option {
	return func(t *Trainer) {
		t.storage = p
	}
}

// Trainer trains a network on the first records of a source and evaluates it on the rest.
type Trainer struct {
	network *net.Network
	config  Config
	loss    *buffer.Loss
	eval    *buffer.Stats
	metrics *metrics.Metrics
	storage storage.Persistence
	mutex   *sync.RWMutex
	report  Report
}

// New creates a new trainer for the given network.
func New(network *net.Network, config Config, opts ...Option) *Trainer {
	config = config.WithDefaults()
	t := &Trainer{
		network: network,
		config:  config,
		loss:    buffer.NewLoss(config.Window),
		eval:    buffer.NewStats(),
		metrics: metrics.Observer,
		storage: storage.NewVoidStorage(),
		mutex:   new(sync.RWMutex),
		report: Report{
			ID: network.ID(),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewNetwork creates the network described by the config.
// A non zero seed makes the initial weights reproducible.
func NewNetwork(config Config) (*net.Network, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	opts := make([]net.Option, 0)
	if config.Seed != 0 {
		opts = append(opts, net.WithSource(rand.NewSource(config.Seed)))
	}
	return net.New(config.Network, opts...)
}

// Load restores a previously stored network.
func Load(p storage.Persistence, id string) (*net.Network, error) {
	var snapshot net.Snapshot
	if err := p.Load(storage.Key{ID: id, Label: SnapshotLabel}, &snapshot); err != nil {
		return nil, fmt.Errorf("could not load network '%s': %w", id, err)
	}
	return net.Restore(snapshot)
}

// Network returns the trained network.
func (t *Trainer) Network() *net.Network {
	return t.network
}

// Status returns the report of the session so far.
func (t *Trainer) Status() Report {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.report
}

// Run consumes the source until it is exhausted or the context is cancelled.
// The first Train records are used for training, the rest for evaluation.
// The network and the report are stored once the source is exhausted.
func (t *Trainer) Run(ctx context.Context, src Source) (Report, error) {
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return t.Status(), ctx.Err()
		default:
		}

		record, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return t.Status(), fmt.Errorf("could not read record %d: %w", i, err)
		}

		if i < t.config.Train {
			err = t.train(record)
		} else {
			err = t.evaluate(record)
		}
		if err != nil {
			return t.Status(), fmt.Errorf("record %d: %w", i, err)
		}
	}

	report := t.Status()
	log.Info().
		Str("id", report.ID).
		Int("iterations", report.Iterations).
		Float64("loss", report.Loss).
		Float64("train_mse", report.Training.Mean).
		Float64("train_stdev", report.Training.StDev).
		Float64("train_max", report.Training.Max).
		Int("evaluated", report.Evaluated).
		Float64("accuracy", report.Accuracy).
		Float64("mse", report.MSE).
		Msg("training complete")

	if err := t.store(report); err != nil {
		return report, err
	}
	return report, nil
}

func (t *Trainer) train(record data.Record) error {
	if err := t.network.Iterate(record.Features, record.Label); err != nil {
		return fmt.Errorf("could not train: %w", err)
	}
	e := t.loss.Push(t.network.Output(), record.Label)
	loss := t.loss.Window()

	total := t.loss.Total()

	t.mutex.Lock()
	t.report.Iterations = total.Count()
	t.report.Loss = loss
	t.report.Training = newErrorStats(total)
	iterations := t.report.Iterations
	t.mutex.Unlock()

	t.metrics.Iterate(t.network.ID())
	t.metrics.SetLoss(t.network.ID(), loss)

	log.Trace().
		Int("iteration", iterations).
		Floats64("input", record.Features).
		Float64("error", e).
		Msg("train")
	if t.loss.Ready() && iterations%t.config.Window == 0 {
		log.Debug().
			Int("iteration", iterations).
			Float64("loss", loss).
			Msg("training progress")
	}
	return nil
}

func (t *Trainer) evaluate(record data.Record) error {
	output, err := t.network.Predict(record.Features)
	if err != nil {
		return fmt.Errorf("could not evaluate: %w", err)
	}
	t.eval.Push(buffer.SquaredError(output, record.Label))
	correct := Classify(output[0]) == Classify(record.Label[0])

	t.mutex.Lock()
	t.report.Evaluated = t.eval.Count()
	if correct {
		t.report.Correct++
	}
	t.report.Accuracy = float64(t.report.Correct) / float64(t.report.Evaluated)
	t.report.MSE = t.eval.Avg()
	t.report.Evaluation = newErrorStats(*t.eval)
	accuracy := t.report.Accuracy
	t.mutex.Unlock()

	t.metrics.Evaluate(t.network.ID())
	t.metrics.SetAccuracy(t.network.ID(), accuracy)

	log.Debug().
		Float64("true", record.Label[0]).
		Float64("network", output[0]).
		Msg("decision")
	return nil
}

func (t *Trainer) store(report Report) error {
	id := t.network.ID()
	if err := t.storage.Store(storage.Key{ID: id, Label: SnapshotLabel}, t.network.Snapshot()); err != nil {
		return fmt.Errorf("could not store network '%s': %w", id, err)
	}
	if err := t.storage.Store(storage.Key{ID: id, Label: ReportLabel}, report); err != nil {
		return fmt.Errorf("could not store report '%s': %w", id, err)
	}
	return nil
}

// Classify maps a value to class 1 if it is above the threshold, 0 otherwise.
func Classify(v float64) int {
	if v > Threshold {
		return 1
	}
	return 0
}
