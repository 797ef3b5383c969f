package kgoserde

import (
	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/propagation"
)

var _ propagation.TextMapCarrier = HeadersCarrier{}

// HeadersCarrier exposes record headers to otel propagators.
type HeadersCarrier struct {
	Headers *[]kgo.RecordHeader
}

func NewHeadersCarrier(headers *[]kgo.RecordHeader) HeadersCarrier {
	return HeadersCarrier{Headers: headers}
}

func (c HeadersCarrier) Get(key string) string {
	for _, h := range *c.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// Set overwrites every header named key, appending one when none exists.
func (c HeadersCarrier) Set(key, value string) {
	found := false
	for i, h := range *c.Headers {
		if h.Key == key {
			(*c.Headers)[i].Value = []byte(value)
			found = true
		}
	}

	if !found {
		*c.Headers = append(*c.Headers, kgo.RecordHeader{Key: key, Value: []byte(value)})
	}
}

func (c HeadersCarrier) Keys() []string {
	keys := make([]string, len(*c.Headers))
	for i, h := range *c.Headers {
		keys[i] = h.Key
	}
	return keys
}
