package codec

import (
	"reflect"

	"github.com/hugolhafner/go-serializer/property"
	"github.com/hugolhafner/go-serializer/wire"
)

type field struct {
	desc  property.Descriptor
	codec Codec
	// defaults is set when the field type implements Defaulter
	defaults bool
}

// aggregateCodec converts a type that declares a property list. Members are
// written in declaration order and looked up by name when reading.
type aggregateCodec struct {
	typ    reflect.Type
	fields []field
}

func (c *aggregateCodec) Encode(v reflect.Value) (wire.Node, error) {
	if !v.CanAddr() {
		// one copy up front instead of one per accessor call
		cp := reflect.New(c.typ).Elem()
		cp.Set(v)
		v = cp
	}

	obj := wire.Object()
	for _, f := range c.fields {
		child, err := f.codec.Encode(f.desc.Get(v))
		if err != nil {
			return wire.Node{}, withPath(err, f.desc.Name())
		}
		if err := wire.Set(&obj, f.desc.Name(), child); err != nil {
			return wire.Node{}, withPath(err, f.desc.Name())
		}
	}

	return obj, nil
}

func (c *aggregateCodec) Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	if k := wire.KindOf(n); k != wire.KindObject {
		if k == wire.KindNull {
			return nil
		}
		return mismatch(c.typ, n)
	}

	for _, f := range c.fields {
		name := f.desc.Name()
		child, ok := wire.Member(n, name)
		if !ok && opts.PropertiesRequired {
			return &MissingFieldError{Property: name}
		}

		// decode into a copy of the current value so nested aggregates keep
		// their defaults for members the input leaves out
		fv := reflect.New(f.desc.Type()).Elem()
		fv.Set(f.desc.Get(v))
		blank := f.defaults && fv.IsZero()
		if blank {
			fv.Set(Blank(f.desc.Type()))
		}

		if !ok {
			if blank {
				f.desc.Set(v, fv)
			}
			continue
		}

		if err := f.codec.Decode(child, fv, opts); err != nil {
			return withPath(err, name)
		}
		f.desc.Set(v, fv)
	}

	return nil
}
