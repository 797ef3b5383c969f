// Package serializer converts values of types that declare a property list to
// and from JSON text.
//
//	type Point struct{ X, Y float64 }
//
//	func (Point) Properties() property.List {
//		return property.List{
//			property.Make(func(p *Point) *float64 { return &p.X }, "x"),
//			property.Make(func(p *Point) *float64 { return &p.Y }, "y"),
//		}
//	}
//
//	s := serializer.New(serializer.Settings{})
//	text, err := s.Serialize(Point{X: 1, Y: 2}) // {"x":1,"y":2}
//	p, err := serializer.Deserialize[Point](s, text)
package serializer

import (
	"context"
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/codec"
	"github.com/hugolhafner/go-serializer/otel"
	"github.com/hugolhafner/go-serializer/wire"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const Version = "v0.1.0" // x-release-please-version

// JSON is the serializer entry point. It holds no state between calls and
// is safe for concurrent use.
type JSON struct {
	settings Settings
	config   Config
}

func New(settings Settings, opts ...ConfigOption) *JSON {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return NewWithConfig(settings, config)
}

func NewWithConfig(settings Settings, config Config) *JSON {
	return &JSON{
		settings: settings,
		config:   config.withDefaults(),
	}
}

func (s *JSON) Settings() Settings {
	return s.settings
}

func (s *JSON) Registry() *codec.Registry {
	return s.config.Registry
}

// Serialize converts v, dispatching on its dynamic type.
func (s *JSON) Serialize(v any) (string, error) {
	return s.SerializeContext(context.Background(), v)
}

func (s *JSON) SerializeContext(ctx context.Context, v any) (string, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		rv = reflect.ValueOf(&v).Elem()
	}
	return s.serialize(ctx, rv)
}

// Deserialize parses text into out, which must be a non-nil pointer. out is
// only written when the whole document converts successfully.
func (s *JSON) Deserialize(text string, out any) error {
	return s.DeserializeContext(context.Background(), text, out)
}

func (s *JSON) DeserializeContext(ctx context.Context, text string, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Wrapf(ErrInvalidTarget, "got %T", out)
	}

	v, err := s.deserialize(ctx, text, rv.Type().Elem())
	if err != nil {
		return err
	}

	rv.Elem().Set(v)
	return nil
}

// Serialize converts v dispatching on the static type T, so interface
// typed values keep their declared type at the root.
func Serialize[T any](s *JSON, v T) (string, error) {
	return s.serialize(context.Background(), reflect.ValueOf(&v).Elem())
}

// Deserialize parses text into a new T.
func Deserialize[T any](s *JSON, text string) (T, error) {
	v, err := s.deserialize(context.Background(), text, reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return *v.Addr().Interface().(*T), nil
}

// Register makes ts the conversion for T in the serializer's registry.
func Register[T any](s *JSON, ts codec.TypeSerializer[T]) {
	codec.Register(s.config.Registry, ts)
}

func (s *JSON) serialize(ctx context.Context, v reflect.Value) (text string, err error) {
	ctx, span := s.config.Telemetry.Tracer.Start(
		ctx, "serializer.Serialize", trace.WithAttributes(
			otel.AttrType.String(v.Type().String()),
			otel.AttrPretty.Bool(s.settings.Pretty),
		),
	)
	start := time.Now()
	defer func() {
		s.record(ctx, span, otel.OperationSerialize, v.Type(), start, len(text), err)
	}()

	root, err := codec.EncodeValue(s.config.Registry, v)
	if err != nil {
		return "", err
	}

	var out []byte
	if s.settings.Pretty {
		out, err = wire.Pretty(&root)
	} else {
		out, err = wire.Compact(&root)
	}
	if err != nil {
		return "", errors.Wrap(err, "serializer: stringify")
	}

	return string(out), nil
}

func (s *JSON) deserialize(ctx context.Context, text string, t reflect.Type) (v reflect.Value, err error) {
	ctx, span := s.config.Telemetry.Tracer.Start(
		ctx, "serializer.Deserialize", trace.WithAttributes(
			otel.AttrType.String(t.String()),
			otel.AttrStrict.Bool(s.settings.PropertiesRequired),
		),
	)
	start := time.Now()
	defer func() {
		s.record(ctx, span, otel.OperationDeserialize, t, start, len(text), err)
	}()

	root, err := wire.Parse(text)
	if err != nil {
		return reflect.Value{}, err
	}

	v = codec.Blank(t)
	opts := codec.DecodeOptions{PropertiesRequired: s.settings.PropertiesRequired}
	if err := codec.DecodeValue(s.config.Registry, &root, v, opts); err != nil {
		return reflect.Value{}, err
	}

	return v, nil
}

func (s *JSON) record(
	ctx context.Context, span trace.Span, op string, t reflect.Type, start time.Time, size int, err error,
) {
	defer span.End()
	tel := s.config.Telemetry
	base := []attribute.KeyValue{otel.AttrOperation.String(op), otel.AttrType.String(t.String())}

	status := otel.StatusSuccess
	if err != nil {
		status = otel.StatusError
		kind := errorKind(err)
		tel.Errors.Add(ctx, 1, metric.WithAttributes(otel.AttrOperation.String(op), otel.AttrErrorKind.String(kind)))
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		s.config.Logger.Debug(op+" failed", "type", t.String(), "kind", kind, "error", err)
	} else {
		tel.Size.Record(ctx, int64(size), metric.WithAttributes(base...))
	}

	tel.Calls.Add(ctx, 1, metric.WithAttributes(append(base, otel.AttrStatus.String(status))...))
	tel.Duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(base...))
}
