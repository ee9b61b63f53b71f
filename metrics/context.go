// Package metrics provides an OpenTelemetry-backed meter.Context and an HTTP
// server exposing the collected counters as Prometheus metrics.
package metrics

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/seekstream/meter"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/metric/instrument"
	"go.opentelemetry.io/otel/metric/instrument/syncint64"
	"go.opentelemetry.io/otel/metric/unit"
)

const meterName = "seekstream/meter"

// Context is a meter.Context whose counters mirror every increment to
// OpenTelemetry synchronous instruments while keeping a local atomic
// accumulator, so Value stays queryable without a metrics reader.
type Context struct {
	counters map[string]*otelCounter
}

var _ meter.Context = (*Context)(nil)

// NewContext creates a Context with instruments registered on the global
// meter provider. Create it after the provider is installed (see NewServer)
// or the mirrored increments go to the no-op provider.
func NewContext() (*Context, error) {
	m := global.MeterProvider().Meter(meterName)
	c := &Context{
		counters: make(map[string]*otelCounter, 4),
	}
	for _, d := range []struct {
		name     string
		unit     meter.Unit
		instName string
		instUnit unit.Unit
		desc     string
	}{
		{meter.ReadBytes, meter.Bytes, "meter/read_bytes", unit.Bytes,
			"The cumulative number of bytes read through metered streams"},
		{meter.ReadOperations, meter.Count, "meter/read_operations", unit.Dimensionless,
			"The cumulative number of successful read operations on metered streams"},
		{meter.WriteBytes, meter.Bytes, "meter/write_bytes", unit.Bytes,
			"The cumulative number of bytes written through metered streams"},
		{meter.WriteOperations, meter.Count, "meter/write_operations", unit.Dimensionless,
			"The cumulative number of successful write operations on metered streams"},
	} {
		inst, err := m.SyncInt64().Counter(d.instName,
			instrument.WithUnit(d.instUnit),
			instrument.WithDescription(d.desc),
		)
		if err != nil {
			return nil, err
		}
		c.counters[d.name] = &otelCounter{unit: d.unit, inst: inst}
	}
	return c, nil
}

// Initialize is a no-op; the context carries no configurable state.
func (c *Context) Initialize(map[string]string) error {
	return nil
}

// Counter returns the handle for the given name and unit, failing fast with
// meter.ErrUnsupportedCounter for anything outside the fixed vocabulary.
func (c *Context) Counter(name string, u meter.Unit) (meter.Counter, error) {
	ctr, ok := c.counters[name]
	if !ok || ctr.unit != u {
		return nil, fmt.Errorf("%w: %s (%s)", meter.ErrUnsupportedCounter, name, u)
	}
	return ctr, nil
}

type otelCounter struct {
	val  atomic.Int64
	unit meter.Unit
	inst syncint64.Counter
}

func (c *otelCounter) Inc() {
	c.Add(1)
}

func (c *otelCounter) Add(n int64) {
	if n < 0 {
		panic("metrics: counter cannot decrease in value")
	}
	c.val.Add(n)
	c.inst.Add(context.Background(), n)
}

func (c *otelCounter) Value() int64 {
	return c.val.Load()
}
