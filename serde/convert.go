package serde

// ToUntypedDeserializer boxes the values produced by d.
func ToUntypedDeserializer[T any](d Deserializer[T]) UntypedDeserializer {
	return deserializerAdapter[T]{typed: d}
}

// ToUntypedSerializer checks that each value is a T before passing it to s.
func ToUntypedSerializer[T any](s Serializer[T]) UntypedSerializer {
	return serializerAdapter[T]{typed: s}
}

// ToUntyped combines ToUntypedSerializer and ToUntypedDeserializer.
func ToUntyped[T any](s Serde[T]) UntypedSerde {
	return serdeAdapter[T]{typed: s}
}
