package codec

import (
	"reflect"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/wire"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// nativeCodec hands types that declare no properties to sonic, which
// honours json struct tags and the json and text marshaler interfaces.
type nativeCodec struct {
	typ reflect.Type
}

func (c *nativeCodec) Encode(v reflect.Value) (wire.Node, error) {
	target := v.Interface()
	if v.CanAddr() {
		target = v.Addr().Interface()
	}

	s, err := sonic.ConfigStd.MarshalToString(target)
	if err != nil {
		return wire.Node{}, errors.Wrapf(err, "codec: encode %s", c.typ)
	}
	return wire.Raw(s), nil
}

func (c *nativeCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		return nil
	}

	raw, err := n.MarshalJSON()
	if err != nil {
		return err
	}

	p := reflect.New(c.typ)
	p.Elem().Set(v)
	if err := sonic.ConfigStd.Unmarshal(raw, p.Interface()); err != nil {
		return errors.Wrapf(err, "codec: decode %s", c.typ)
	}

	v.Set(p.Elem())
	return nil
}

// protoCodec converts protobuf messages using the canonical protobuf JSON
// mapping.
type protoCodec struct {
	typ reflect.Type
}

func (c *protoCodec) Encode(v reflect.Value) (wire.Node, error) {
	if v.IsNil() {
		return wire.Null(), nil
	}

	b, err := protojson.Marshal(v.Interface().(proto.Message))
	if err != nil {
		return wire.Node{}, errors.Wrapf(err, "codec: encode %s", c.typ)
	}

	// protojson output has unstable whitespace; reparse so the enclosing
	// document renders deterministically
	return wire.Parse(string(b))
}

func (c *protoCodec) Decode(n *wire.Node, v reflect.Value, _ DecodeOptions) error {
	if isNull(n) {
		v.SetZero()
		return nil
	}

	raw, err := n.MarshalJSON()
	if err != nil {
		return err
	}

	msg := reflect.New(c.typ.Elem())
	if err := protojson.Unmarshal(raw, msg.Interface().(proto.Message)); err != nil {
		return errors.Wrapf(err, "codec: decode %s", c.typ)
	}

	v.Set(msg)
	return nil
}
