package codec

import (
	"cmp"
	"reflect"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/wire"
)

// pointerCodec writes nil as null and follows non-nil pointers.
type pointerCodec struct {
	typ  reflect.Type
	elem Codec
}

func (c *pointerCodec) Encode(v reflect.Value) (wire.Node, error) {
	if v.IsNil() {
		return wire.Null(), nil
	}
	return c.elem.Encode(v.Elem())
}

func (c *pointerCodec) Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	if isNull(n) {
		v.SetZero()
		return nil
	}

	p := reflect.New(c.typ.Elem())
	if v.IsNil() {
		p.Elem().Set(Blank(c.typ.Elem()))
	} else {
		p.Elem().Set(v.Elem())
	}
	if err := c.elem.Decode(n, p.Elem(), opts); err != nil {
		return err
	}

	v.Set(p)
	return nil
}

// sliceCodec writes a sequence as an array, element by element. A nil slice
// is written as an empty array; null decodes to a nil slice.
type sliceCodec struct {
	typ  reflect.Type
	elem Codec
}

func (c *sliceCodec) Encode(v reflect.Value) (wire.Node, error) {
	if v.IsNil() {
		return wire.Array([]wire.Node{}), nil
	}
	return encodeElements(c.elem, v)
}

func (c *sliceCodec) Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	if isNull(n) {
		v.SetZero()
		return nil
	}

	items, err := elements(c.typ, n)
	if err != nil {
		return err
	}

	s := reflect.MakeSlice(c.typ, len(items), len(items))
	if err := decodeElements(c.elem, items, s, opts); err != nil {
		return err
	}

	v.Set(s)
	return nil
}

// arrayCodec handles fixed size arrays. The input must have exactly as many
// elements as the array.
type arrayCodec struct {
	typ  reflect.Type
	elem Codec
}

func (c *arrayCodec) Encode(v reflect.Value) (wire.Node, error) {
	return encodeElements(c.elem, v)
}

func (c *arrayCodec) Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	items, err := elements(c.typ, n)
	if err != nil {
		return err
	}
	if len(items) != c.typ.Len() {
		return &TypeMismatchError{
			Expected: c.typ.String(),
			Actual:   "array of " + strconv.Itoa(len(items)) + " elements",
		}
	}

	a := reflect.New(c.typ).Elem()
	if err := decodeElements(c.elem, items, a, opts); err != nil {
		return err
	}

	v.Set(a)
	return nil
}

func encodeElements(elem Codec, v reflect.Value) (wire.Node, error) {
	items := make([]wire.Node, v.Len())
	for i := range items {
		item, err := elem.Encode(v.Index(i))
		if err != nil {
			return wire.Node{}, withPath(err, index(i))
		}
		items[i] = item
	}
	return wire.Array(items), nil
}

func elements(t reflect.Type, n *wire.Node) ([]wire.Node, error) {
	if wire.KindOf(n) != wire.KindArray {
		return nil, mismatch(t, n)
	}
	return wire.Elements(n)
}

// decodeElements fills dst, a slice or array of len(items), in order.
func decodeElements(elem Codec, items []wire.Node, dst reflect.Value, opts DecodeOptions) error {
	et := dst.Type().Elem()
	for i := range items {
		ev := dst.Index(i)
		ev.Set(Blank(et))
		if err := elem.Decode(&items[i], ev, opts); err != nil {
			return withPath(err, index(i))
		}
	}
	return nil
}

// mapCodec handles maps keyed by strings. Members are written in key order.
type mapCodec struct {
	typ  reflect.Type
	elem Codec
}

func (c *mapCodec) Encode(v reflect.Value) (wire.Node, error) {
	if v.IsNil() {
		return wire.Null(), nil
	}

	keys := v.MapKeys()
	slices.SortFunc(
		keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.String(), b.String())
		},
	)

	obj := wire.Object()
	for _, k := range keys {
		child, err := c.elem.Encode(v.MapIndex(k))
		if err != nil {
			return wire.Node{}, withPath(err, k.String())
		}
		if err := wire.Set(&obj, k.String(), child); err != nil {
			return wire.Node{}, withPath(err, k.String())
		}
	}

	return obj, nil
}

func (c *mapCodec) Decode(n *wire.Node, v reflect.Value, opts DecodeOptions) error {
	if isNull(n) {
		v.SetZero()
		return nil
	}
	if wire.KindOf(n) != wire.KindObject {
		return mismatch(c.typ, n)
	}

	members, err := wire.Members(n)
	if err != nil {
		return err
	}

	m := reflect.MakeMapWithSize(c.typ, len(members))
	for key, member := range members {
		ev := Blank(c.typ.Elem())
		if err := c.elem.Decode(&member, ev, opts); err != nil {
			return withPath(err, key)
		}
		m.SetMapIndex(reflect.ValueOf(key).Convert(c.typ.Key()), ev)
	}

	v.Set(m)
	return nil
}

// interfaceCodec encodes the dynamic value held by an interface. Only the
// empty interface can be decoded; it receives the generic form of the node.
type interfaceCodec struct {
	typ      reflect.Type
	registry *Registry
}

func (c *interfaceCodec) Encode(v reflect.Value) (wire.Node, error) {
	if v.IsNil() {
		return wire.Null(), nil
	}
	return EncodeValue(c.registry, v.Elem())
}

func (c *interfaceCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		v.SetZero()
		return nil
	}
	if c.typ.NumMethod() != 0 {
		return errors.Wrapf(ErrUnsupportedType, "cannot decode into interface %s", c.typ)
	}

	g, err := generic(n)
	if err != nil {
		return err
	}
	if g == nil {
		v.SetZero()
		return nil
	}

	v.Set(reflect.ValueOf(g))
	return nil
}

// generic converts n to the values encoding/json uses for an empty
// interface: map[string]any, []any, float64, string, bool and nil.
func generic(n *wire.Node) (any, error) {
	switch k := wire.KindOf(n); k {
	case wire.KindNull:
		return nil, nil
	case wire.KindBool:
		b, err := wire.BoolValue(n)
		return b, err
	case wire.KindString:
		s, err := wire.StringValue(n)
		return s, err
	case wire.KindNumber:
		lit, err := wire.NumberLiteral(n)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, &TypeMismatchError{Expected: "float64", Actual: "number " + lit}
		}
		return f, nil
	case wire.KindArray:
		items, err := wire.Elements(n)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i := range items {
			if out[i], err = generic(&items[i]); err != nil {
				return nil, withPath(err, index(i))
			}
		}
		return out, nil
	case wire.KindObject:
		members, err := wire.Members(n)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(members))
		for key, member := range members {
			if out[key], err = generic(&member); err != nil {
				return nil, withPath(err, key)
			}
		}
		return out, nil
	default:
		return nil, &TypeMismatchError{Expected: "json value", Actual: k.String()}
	}
}
