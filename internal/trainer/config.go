package trainer

import (
	"fmt"

	"github.com/drakos74/backprop/internal/data"
	"github.com/drakos74/backprop/internal/net"
)

const (
	// DefaultTrain is the number of records used for training before evaluation starts.
	DefaultTrain = 40000
	// DefaultWindow is the number of samples the training loss is averaged over.
	DefaultWindow = 1000
	// Threshold splits the network output into the two classes.
	Threshold = 0.5
)

// DataConfig points to a fixed width data file.
type DataConfig struct {
	Path string `json:"path"`
	data.Format
}

// Config defines a training session.
type Config struct {
	Network  net.Parameters `json:"network"`
	Data     DataConfig     `json:"data"`
	Train    int            `json:"train"`
	Window   int            `json:"window"`
	Storage  string         `json:"storage"`
	Seed     uint64         `json:"seed"`
	LogLevel string         `json:"log_level"`
	Metrics  string         `json:"metrics"`
}

// WithDefaults fills in the zero values of the optional fields.
func (c Config) WithDefaults() Config {
	if c.Train == 0 {
		c.Train = DefaultTrain
	}
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	if c.Data.Format == (data.Format{}) {
		c.Data.Format = data.DefaultFormat()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

// Validate checks the network parameters against the data format.
func (c Config) Validate() error {
	if err := c.Network.Validate(); err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}
	if err := c.Data.Format.Validate(); err != nil {
		return fmt.Errorf("invalid data: %w", err)
	}
	nodes := c.Network.Nodes
	if nodes[0] != c.Data.Features {
		return fmt.Errorf("%d input nodes for %d features: %w", nodes[0], c.Data.Features, net.ConfigurationErr)
	}
	if nodes[len(nodes)-1] != 1 {
		return fmt.Errorf("%d output nodes for a single label: %w", nodes[len(nodes)-1], net.ConfigurationErr)
	}
	if c.Train < 0 || c.Window < 1 {
		return fmt.Errorf("train %d window %d: %w", c.Train, c.Window, net.ConfigurationErr)
	}
	return nil
}
