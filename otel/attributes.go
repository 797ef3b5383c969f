package otel

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	AttrOperation = attribute.Key("serializer.operation")
	AttrType      = attribute.Key("serializer.type")
	AttrStatus    = attribute.Key("serializer.status")
	AttrErrorKind = attribute.Key("serializer.error.kind")
	AttrPretty    = attribute.Key("serializer.pretty")
	AttrStrict    = attribute.Key("serializer.properties_required")
)

// Operation values
const (
	OperationSerialize   = "serialize"
	OperationDeserialize = "deserialize"
)

// Status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error kind values
const (
	ErrorKindParse       = "parse"
	ErrorKindMissing     = "missing_field"
	ErrorKindMismatch    = "type_mismatch"
	ErrorKindUnsupported = "unsupported"
	ErrorKindOther       = "other"
)
