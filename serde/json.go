package serde

import (
	"github.com/cockroachdb/errors"
	serializer "github.com/hugolhafner/go-serializer"
)

var _ Serde[int] = jsonSerde[int]{}

type jsonSerde[T any] struct {
	s *serializer.JSON
}

// JSON returns a Serde converting T through s. A nil s uses default
// settings.
func JSON[T any](s *serializer.JSON) Serde[T] {
	if s == nil {
		s = serializer.New(serializer.Settings{})
	}
	return jsonSerde[T]{s: s}
}

func (j jsonSerde[T]) Serialize(topic string, value T) ([]byte, error) {
	text, err := serializer.Serialize(j.s, value)
	if err != nil {
		return nil, errors.Wrapf(err, "serde: serialize for topic %q", topic)
	}
	return []byte(text), nil
}

func (j jsonSerde[T]) Deserialize(topic string, data []byte) (T, error) {
	v, err := serializer.Deserialize[T](j.s, string(data))
	if err != nil {
		return v, errors.Wrapf(err, "serde: deserialize from topic %q", topic)
	}
	return v, nil
}
