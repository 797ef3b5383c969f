// Package codec converts Go values to and from wire nodes. Conversion is
// dispatched on the static type of each value through a Registry which maps
// a reflect.Type to the Codec that handles it.
package codec

import (
	"reflect"

	"github.com/hugolhafner/go-serializer/wire"
)

// DecodeOptions control how nodes are converted back into values. They are
// passed down unchanged to every nested conversion.
type DecodeOptions struct {
	// PropertiesRequired fails decoding with a MissingFieldError when a
	// declared property is absent from the input.
	PropertiesRequired bool
}

// Codec is the reflection level conversion for one type.
type Codec interface {
	// Encode builds a node from v. It must not modify v.
	Encode(v reflect.Value) (wire.Node, error)
	// Decode writes the value held by n into v, which is addressable.
	Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error
}

// TypeSerializer is the typed form of a Codec. Register one to take over the
// conversion of T, for example to build types that need a constructor.
// Implementations may call Encode and Decode to convert nested values.
type TypeSerializer[T any] interface {
	Serialize(value T) (wire.Node, error)
	Deserialize(n *wire.Node, opts DecodeOptions) (T, error)
}

// Enum is implemented by enumerated types that can tell whether a decoded
// value is one of their declared enumerators.
type Enum interface {
	Valid() bool
}

// Defaulter is implemented by types whose blank value is not the zero value.
// SetDefaults is called on every freshly allocated value before decoding,
// and on aggregate fields that are still zero in their owner, whether or
// not the input has a member for them.
type Defaulter interface {
	SetDefaults()
}

var (
	_ Codec = (*typedCodec[int])(nil)
	_ Codec = (*deferred)(nil)
)

type funcSerializer[T any] struct {
	serialize   func(T) (wire.Node, error)
	deserialize func(*wire.Node, DecodeOptions) (T, error)
}

// Funcs builds a TypeSerializer from a pair of functions.
func Funcs[T any](
	serialize func(T) (wire.Node, error), deserialize func(*wire.Node, DecodeOptions) (T, error),
) TypeSerializer[T] {
	return funcSerializer[T]{serialize: serialize, deserialize: deserialize}
}

func (f funcSerializer[T]) Serialize(value T) (wire.Node, error) {
	return f.serialize(value)
}

func (f funcSerializer[T]) Deserialize(n *wire.Node, opts DecodeOptions) (T, error) {
	return f.deserialize(n, opts)
}

type typedCodec[T any] struct {
	typed TypeSerializer[T]
}

func (c *typedCodec[T]) Encode(v reflect.Value) (wire.Node, error) {
	var value T
	reflect.ValueOf(&value).Elem().Set(v)
	return c.typed.Serialize(value)
}

func (c *typedCodec[T]) Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	value, err := c.typed.Deserialize(n, opts)
	if err != nil {
		return err
	}

	v.Set(reflect.ValueOf(&value).Elem())
	return nil
}

// deferred stands in for a codec that is still being derived, so that
// recursive types can refer to themselves.
type deferred struct {
	Codec
}

// Encode converts v using the codec registered or derived for T.
func Encode[T any](r *Registry, v T) (wire.Node, error) {
	return EncodeValue(r, reflect.ValueOf(&v).Elem())
}

// EncodeValue converts v using the codec for its type.
func EncodeValue(r *Registry, v reflect.Value) (wire.Node, error) {
	c, err := r.Lookup(v.Type())
	if err != nil {
		return wire.Node{}, err
	}
	return c.Encode(v)
}

// Decode converts n into a blank T. No partially decoded value is returned
// on failure.
func Decode[T any](r *Registry, n *wire.Node, opts DecodeOptions) (T, error) {
	out := Blank(reflect.TypeFor[T]())
	if err := DecodeValue(r, n, out, opts); err != nil {
		var zero T
		return zero, err
	}
	return *out.Addr().Interface().(*T), nil
}

// DecodeValue converts n into v, which must be addressable.
func DecodeValue(r *Registry, n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	c, err := r.Lookup(v.Type())
	if err != nil {
		return err
	}
	return c.Decode(n, v, opts)
}

// Blank returns an addressable fresh value of t: the zero value, with
// SetDefaults applied when *t implements Defaulter.
func Blank(t reflect.Type) reflect.Value {
	v := reflect.New(t)
	if d, ok := v.Interface().(Defaulter); ok {
		d.SetDefaults()
	}
	return v.Elem()
}
