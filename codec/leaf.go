package codec

import (
	"math"
	"reflect"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/wire"
)

// Leaf codecs leave the destination untouched when the node is null.

type boolCodec struct{}

func (boolCodec) Encode(v reflect.Value) (wire.Node, error) {
	return wire.Bool(v.Bool()), nil
}

func (boolCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	b, err := wire.BoolValue(n)
	if err != nil {
		return mismatch(v.Type(), n)
	}
	v.SetBool(b)
	return nil
}

type stringCodec struct{}

func (stringCodec) Encode(v reflect.Value) (wire.Node, error) {
	return wire.String(v.String()), nil
}

func (stringCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	s, err := wire.StringValue(n)
	if err != nil {
		return mismatch(v.Type(), n)
	}
	v.SetString(s)
	return nil
}

type intCodec struct {
	typ  reflect.Type
	enum bool
}

func (c *intCodec) Encode(v reflect.Value) (wire.Node, error) {
	return wire.Int(v.Int()), nil
}

func (c *intCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	lit, err := wire.NumberLiteral(n)
	if err != nil {
		return mismatch(c.typ, n)
	}

	i, err := strconv.ParseInt(lit, 10, c.typ.Bits())
	if err != nil {
		return &TypeMismatchError{Expected: c.typ.String(), Actual: "number " + lit}
	}

	v.SetInt(i)
	if c.enum {
		return checkEnum(v)
	}
	return nil
}

type uintCodec struct {
	typ  reflect.Type
	enum bool
}

func (c *uintCodec) Encode(v reflect.Value) (wire.Node, error) {
	return wire.Uint(v.Uint()), nil
}

func (c *uintCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	lit, err := wire.NumberLiteral(n)
	if err != nil {
		return mismatch(c.typ, n)
	}

	u, err := strconv.ParseUint(lit, 10, c.typ.Bits())
	if err != nil {
		return &TypeMismatchError{Expected: c.typ.String(), Actual: "number " + lit}
	}

	v.SetUint(u)
	if c.enum {
		return checkEnum(v)
	}
	return nil
}

type floatCodec struct {
	typ reflect.Type
}

func (c *floatCodec) Encode(v reflect.Value) (wire.Node, error) {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return wire.Node{}, errors.Wrapf(ErrUnsupportedValue, "%s %v", c.typ, f)
	}
	return wire.Float(f, c.typ.Bits()), nil
}

func (c *floatCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	lit, err := wire.NumberLiteral(n)
	if err != nil {
		return mismatch(c.typ, n)
	}

	f, err := strconv.ParseFloat(lit, c.typ.Bits())
	if err != nil {
		return &TypeMismatchError{Expected: c.typ.String(), Actual: "number " + lit}
	}

	v.SetFloat(f)
	return nil
}

func checkEnum(v reflect.Value) error {
	e, ok := v.Addr().Interface().(Enum)
	if !ok || e.Valid() {
		return nil
	}
	return errors.Wrapf(ErrEnumOutOfRange, "%s(%v)", v.Type(), v.Interface())
}

func isNull(n *wire.Node) bool {
	return wire.KindOf(n) == wire.KindNull
}

func mismatch(t reflect.Type, n *wire.Node) error {
	return &TypeMismatchError{Expected: t.String(), Actual: wire.KindOf(n).String()}
}
