package tops

import (
	"github.com/hashicorp/go-multierror"
	"github.com/rcrowley/go-metrics"
)

const defaultReadSize = 8192

// Config governs a Stream. Obtain one with NewConfig and tweak fields
// before passing it to NewStream; a nil config gets the defaults.
type Config struct {
	// ReadSize is the chunk size used when refilling the stream buffer
	// from the underlying reader. Larger values trade latency for fewer
	// reads.
	ReadSize int

	// MetricRegistry receives the stream's throughput metrics
	// (incoming-byte-rate, incoming-message-rate, message-size, and a
	// per-kind incoming-message-rate-for-* meter). Defaults to a registry
	// local to the stream.
	MetricRegistry metrics.Registry
}

// NewConfig returns a Config with sane defaults.
func NewConfig() *Config {
	return &Config{
		ReadSize:       defaultReadSize,
		MetricRegistry: metrics.NewRegistry(),
	}
}

// Validate checks the configuration and reports every violation at once
// rather than stopping at the first.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.ReadSize <= 0 {
		result = multierror.Append(result, ConfigurationError("ReadSize must be greater than 0"))
	}
	if c.MetricRegistry == nil {
		result = multierror.Append(result, ConfigurationError("MetricRegistry must not be nil"))
	}
	return result.ErrorOrNil()
}
