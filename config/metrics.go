package config

// Metrics tracks the configuration of the Prometheus export endpoint.
type Metrics struct {
	// ListenAddr is the metrics server listen address. Empty disables the
	// endpoint unless overridden on the command line.
	ListenAddr string
}

// NewMetrics instantiates a new Metrics config with default values.
func NewMetrics() Metrics {
	return Metrics{}
}
