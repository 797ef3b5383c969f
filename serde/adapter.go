package serde

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var ErrUnexpectedType = errors.New("serde: unexpected value type")

func cast[T any](value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		return typed, errors.Wrapf(ErrUnexpectedType, "expected %v, got %T", reflect.TypeFor[T](), value)
	}
	return typed, nil
}

type deserializerAdapter[T any] struct {
	typed Deserializer[T]
}

func (a deserializerAdapter[T]) Deserialize(topic string, data []byte) (any, error) {
	return a.typed.Deserialize(topic, data)
}

type serializerAdapter[T any] struct {
	typed Serializer[T]
}

func (a serializerAdapter[T]) Serialize(topic string, value any) ([]byte, error) {
	typed, err := cast[T](value)
	if err != nil {
		return nil, err
	}
	return a.typed.Serialize(topic, typed)
}

type serdeAdapter[T any] struct {
	typed Serde[T]
}

func (a serdeAdapter[T]) Deserialize(topic string, data []byte) (any, error) {
	return a.typed.Deserialize(topic, data)
}

func (a serdeAdapter[T]) Serialize(topic string, value any) ([]byte, error) {
	typed, err := cast[T](value)
	if err != nil {
		return nil, err
	}
	return a.typed.Serialize(topic, typed)
}
