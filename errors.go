package serializer

import (
	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/codec"
	"github.com/hugolhafner/go-serializer/otel"
	"github.com/hugolhafner/go-serializer/wire"
)

var (
	ErrInvalidTarget = errors.New("serializer: target must be a non-nil pointer")

	ErrParse            = wire.ErrParse
	ErrMissingField     = codec.ErrMissingField
	ErrTypeMismatch     = codec.ErrTypeMismatch
	ErrUnsupportedType  = codec.ErrUnsupportedType
	ErrUnsupportedValue = codec.ErrUnsupportedValue
)

type (
	ParseError        = wire.ParseError
	MissingFieldError = codec.MissingFieldError
	TypeMismatchError = codec.TypeMismatchError
)

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return otel.ErrorKindParse
	case errors.Is(err, ErrMissingField):
		return otel.ErrorKindMissing
	case errors.Is(err, ErrTypeMismatch):
		return otel.ErrorKindMismatch
	case errors.Is(err, ErrUnsupportedType), errors.Is(err, ErrUnsupportedValue):
		return otel.ErrorKindUnsupported
	default:
		return otel.ErrorKindOther
	}
}
