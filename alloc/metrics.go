package alloc

import (
	"errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reserveBytesOpts = prometheus.CounterOpts{
		Name: "collections_alloc_reserved_bytes_total",
		Help: "Total bytes reserved from a resource",
	}
	releaseBytesOpts = prometheus.CounterOpts{
		Name: "collections_alloc_released_bytes_total",
		Help: "Total bytes released back to a resource",
	}
	reservationsOpts = prometheus.CounterOpts{
		Name: "collections_alloc_reservations_total",
		Help: "Reservation attempts by outcome",
	}
	inUseOpts = prometheus.GaugeOpts{
		Name: "collections_alloc_in_use_bytes",
		Help: "Bytes currently reserved from a resource",
	}
)

// Instrumented wraps a Resource with Prometheus metrics, labelled by name.
type Instrumented struct {
	inner Resource

	reserved  prometheus.Counter
	released  prometheus.Counter
	succeeded prometheus.Counter
	failed    prometheus.Counter
	inUse     prometheus.Gauge
}

// Instrument registers the allocation metrics on reg (reusing collectors that
// are already registered) and returns r wrapped to update them.
//
//	res, err := alloc.Instrument(alloc.NewBounded(64<<20), prometheus.DefaultRegisterer, "parser")
func Instrument(r Resource, reg prometheus.Registerer, name string) (*Instrumented, error) {
	reserved := prometheus.NewCounterVec(reserveBytesOpts, []string{"resource"})
	released := prometheus.NewCounterVec(releaseBytesOpts, []string{"resource"})
	outcomes := prometheus.NewCounterVec(reservationsOpts, []string{"resource", "outcome"})
	inUse := prometheus.NewGaugeVec(inUseOpts, []string{"resource"})

	var err error
	if reserved, err = register(reg, reserved); err != nil {
		return nil, err
	}
	if released, err = register(reg, released); err != nil {
		return nil, err
	}
	if outcomes, err = register(reg, outcomes); err != nil {
		return nil, err
	}
	if inUse, err = register(reg, inUse); err != nil {
		return nil, err
	}

	return &Instrumented{
		inner:     r,
		reserved:  reserved.WithLabelValues(name),
		released:  released.WithLabelValues(name),
		succeeded: outcomes.WithLabelValues(name, "ok"),
		failed:    outcomes.WithLabelValues(name, "failed"),
		inUse:     inUse.WithLabelValues(name),
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ID implements Resource.
func (m *Instrumented) ID() uuid.UUID { return m.inner.ID() }

// Limit implements Resource.
func (m *Instrumented) Limit() int { return m.inner.Limit() }

// Reserve implements Resource.
func (m *Instrumented) Reserve(bytes int) error {
	if err := m.inner.Reserve(bytes); err != nil {
		m.failed.Inc()
		return err
	}
	m.succeeded.Inc()
	m.reserved.Add(float64(bytes))
	m.inUse.Add(float64(bytes))
	return nil
}

// Release implements Resource.
func (m *Instrumented) Release(bytes int) {
	m.inner.Release(bytes)
	m.released.Add(float64(bytes))
	m.inUse.Sub(float64(bytes))
}

// Unwrap returns the wrapped resource.
func (m *Instrumented) Unwrap() Resource { return m.inner }
