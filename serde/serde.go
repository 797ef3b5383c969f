// Package serde adapts a serializer to the byte oriented, topic scoped
// interfaces used by record transports.
//
// The typed interfaces (Serde, Serializer, Deserializer) are what
// application code builds, usually with JSON. Transports that handle
// records of many value types at once hold the untyped forms instead; the
// ToUntyped helpers bridge the two and reject values of the wrong dynamic
// type with ErrUnexpectedType.
package serde

// Serde converts values of T for one topic in both directions.
type Serde[T any] interface {
	Serializer[T]
	Deserializer[T]
}

type Serializer[T any] interface {
	// Serialize encodes value for topic. The topic is only used to label
	// errors by the serdes in this package.
	Serialize(topic string, value T) ([]byte, error)
}

type Deserializer[T any] interface {
	Deserialize(topic string, data []byte) (T, error)
}

// UntypedDeserializer returns the decoded value boxed in an any.
type UntypedDeserializer interface {
	Deserialize(topic string, data []byte) (any, error)
}

// UntypedSerializer accepts any value and fails when it is not of the
// type the underlying serializer converts.
type UntypedSerializer interface {
	Serialize(topic string, value any) ([]byte, error)
}

type UntypedSerde interface {
	UntypedSerializer
	UntypedDeserializer
}
