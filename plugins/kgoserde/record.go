// Package kgoserde builds and reads franz-go records whose keys and values
// are converted by serde implementations, carrying the trace context in the
// record headers.
package kgoserde

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/serde"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/propagation"
)

// Codec converts between typed key/value pairs and *kgo.Record. A nil key
// serde produces and expects records without keys.
type Codec[K, V any] struct {
	key        serde.Serde[K]
	value      serde.Serde[V]
	propagator propagation.TextMapPropagator
}

type Option func(*options)

type options struct {
	propagator propagation.TextMapPropagator
}

// WithPropagator sets how the trace context is written to and read from
// headers. W3C trace context is used by default.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(o *options) {
		o.propagator = p
	}
}

func New[K, V any](key serde.Serde[K], value serde.Serde[V], opts ...Option) *Codec[K, V] {
	o := options{propagator: propagation.TraceContext{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Codec[K, V]{
		key:        key,
		value:      value,
		propagator: o.propagator,
	}
}

// Record builds a record for topic. The span context of ctx, if any, is
// injected into the headers.
func (c *Codec[K, V]) Record(ctx context.Context, topic string, key K, value V) (*kgo.Record, error) {
	record := &kgo.Record{Topic: topic}

	if c.key != nil {
		k, err := c.key.Serialize(topic, key)
		if err != nil {
			return nil, errors.Wrap(err, "kgoserde: key")
		}
		record.Key = k
	}

	v, err := c.value.Serialize(topic, value)
	if err != nil {
		return nil, errors.Wrap(err, "kgoserde: value")
	}
	record.Value = v

	c.propagator.Inject(ctx, NewHeadersCarrier(&record.Headers))
	return record, nil
}

// Read converts the key and value of r. The returned context carries the
// span context found in the headers.
func (c *Codec[K, V]) Read(ctx context.Context, r *kgo.Record) (context.Context, K, V, error) {
	var (
		key   K
		value V
		err   error
	)

	ctx = c.propagator.Extract(ctx, NewHeadersCarrier(&r.Headers))

	if c.key != nil && r.Key != nil {
		if key, err = c.key.Deserialize(r.Topic, r.Key); err != nil {
			return ctx, key, value, errors.Wrap(err, "kgoserde: key")
		}
	}

	if value, err = c.value.Deserialize(r.Topic, r.Value); err != nil {
		return ctx, key, value, errors.Wrap(err, "kgoserde: value")
	}

	return ctx, key, value, nil
}
