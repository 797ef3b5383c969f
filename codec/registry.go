package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/logger"
	"github.com/hugolhafner/go-serializer/property"
	"google.golang.org/protobuf/proto"
)

var (
	enumType          = reflect.TypeFor[Enum]()
	defaulterType     = reflect.TypeFor[Defaulter]()
	protoMessageType  = reflect.TypeFor[proto.Message]()
	jsonMarshalerType = reflect.TypeFor[jsonMarshaler]()
	textMarshalerType = reflect.TypeFor[textMarshaler]()
	defaultRegistry   = NewRegistry()
	predeclaredLeaves = []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[uintptr](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
	}
)

type jsonMarshaler interface {
	MarshalJSON() ([]byte, error)
}

type textMarshaler interface {
	MarshalText() ([]byte, error)
}

// Registry maps types to their codecs. Built-in leaf types are present from
// construction; codecs for every other type are derived on first use and
// cached. A Registry is safe for concurrent use.
//
// Register custom serializers before the types that contain them are first
// converted: derived codecs keep the codec that was current at derivation.
type Registry struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]Codec
	logger logger.Logger
}

type RegistryOption func(*Registry)

func WithLogger(l logger.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		codecs: make(map[reflect.Type]Codec),
		logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, t := range predeclaredLeaves {
		c, _ := leafCodec(t)
		r.codecs[t] = c
	}
	r.codecs[reflect.TypeFor[any]()] = &interfaceCodec{typ: reflect.TypeFor[any](), registry: r}

	return r
}

// Default returns the process wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register makes s the conversion for T in r, replacing any previous codec.
func Register[T any](r *Registry, s TypeSerializer[T]) {
	t := reflect.TypeFor[T]()

	r.mu.Lock()
	r.codecs[t] = &typedCodec[T]{typed: s}
	r.mu.Unlock()

	r.logger.Debug("registered type serializer", "type", t.String())
}

// Lookup returns the codec for t, deriving and caching it when needed.
func (r *Registry) Lookup(t reflect.Type) (Codec, error) {
	if t == nil {
		return nil, errors.Wrap(ErrUnsupportedType, "nil type")
	}

	r.mu.RLock()
	c, ok := r.codecs[t]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var derived []reflect.Type
	c, err := r.resolve(t, &derived)
	if err != nil {
		// codecs derived alongside a failing type may hold its placeholder
		for _, d := range derived {
			delete(r.codecs, d)
		}
		r.logger.Debug("codec derivation failed", "type", t.String(), "error", err)
		return nil, err
	}

	return c, nil
}

// resolve must be called with r.mu held for writing.
func (r *Registry) resolve(t reflect.Type, derived *[]reflect.Type) (Codec, error) {
	if c, ok := r.codecs[t]; ok {
		return c, nil
	}

	placeholder := &deferred{}
	r.codecs[t] = placeholder
	*derived = append(*derived, t)

	c, err := r.derive(t, derived)
	if err != nil {
		return nil, err
	}

	placeholder.Codec = c
	r.codecs[t] = c
	r.logger.Debug("derived codec", "type", t.String(), "codec", fmt.Sprintf("%T", c))

	return c, nil
}

func (r *Registry) derive(t reflect.Type, derived *[]reflect.Type) (Codec, error) {
	if list, ok := property.Of(t); ok {
		return r.deriveAggregate(t, list, derived)
	}

	if t.Kind() == reflect.Pointer && t.Implements(protoMessageType) {
		return &protoCodec{typ: t}, nil
	}

	if implements(t, jsonMarshalerType) || implements(t, textMarshalerType) {
		return &nativeCodec{typ: t}, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem, err := r.resolve(t.Elem(), derived)
		if err != nil {
			return nil, err
		}
		return &pointerCodec{typ: t, elem: elem}, nil
	case reflect.Interface:
		return &interfaceCodec{typ: t, registry: r}, nil
	case reflect.Slice:
		elem, err := r.resolve(t.Elem(), derived)
		if err != nil {
			return nil, err
		}
		return &sliceCodec{typ: t, elem: elem}, nil
	case reflect.Array:
		elem, err := r.resolve(t.Elem(), derived)
		if err != nil {
			return nil, err
		}
		return &arrayCodec{typ: t, elem: elem}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, errors.Wrapf(ErrUnsupportedType, "%s: map keys must be strings", t)
		}
		elem, err := r.resolve(t.Elem(), derived)
		if err != nil {
			return nil, err
		}
		return &mapCodec{typ: t, elem: elem}, nil
	case reflect.Struct:
		return &nativeCodec{typ: t}, nil
	default:
		return leafCodec(t)
	}
}

func (r *Registry) deriveAggregate(t reflect.Type, list property.List, derived *[]reflect.Type) (Codec, error) {
	if err := property.Validate(t, list); err != nil {
		return nil, err
	}

	fields := make([]field, len(list))
	for i, d := range list {
		c, err := r.resolve(d.Type(), derived)
		if err != nil {
			return nil, withPath(err, d.Name())
		}
		fields[i] = field{desc: d, codec: c, defaults: reflect.PointerTo(d.Type()).Implements(defaulterType)}
	}

	return &aggregateCodec{typ: t, fields: fields}, nil
}

func leafCodec(t reflect.Type) (Codec, error) {
	switch t.Kind() {
	case reflect.Bool:
		return boolCodec{}, nil
	case reflect.String:
		return stringCodec{}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &intCodec{typ: t, enum: implements(t, enumType)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &uintCodec{typ: t, enum: implements(t, enumType)}, nil
	case reflect.Float32, reflect.Float64:
		return &floatCodec{typ: t}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%s", t)
	}
}

func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface))
}
