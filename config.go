package serializer

import (
	"github.com/hugolhafner/go-serializer/codec"
	"github.com/hugolhafner/go-serializer/logger"
	"github.com/hugolhafner/go-serializer/otel"
)

// Settings are the format level switches of a serializer.
type Settings struct {
	// PropertiesRequired makes Deserialize fail with a MissingFieldError
	// when a declared property is absent from the input.
	PropertiesRequired bool
	// Pretty renders output indented, one member or element per line.
	Pretty bool
}

// Config holds the collaborators of a serializer. Nil fields are replaced by
// their defaults.
type Config struct {
	Logger    logger.Logger
	Registry  *codec.Registry
	Telemetry *otel.Telemetry
}

type ConfigOption func(*Config)

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRegistry sets the codec registry. The process wide codec.Default() is
// used otherwise.
func WithRegistry(r *codec.Registry) ConfigOption {
	return func(c *Config) {
		c.Registry = r
	}
}

func WithTelemetry(t *otel.Telemetry) ConfigOption {
	return func(c *Config) {
		c.Telemetry = t
	}
}

func defaultConfig() Config {
	return Config{
		Logger:    logger.NewNoopLogger(),
		Registry:  codec.Default(),
		Telemetry: otel.Noop(),
	}
}

func (c Config) withDefaults() Config {
	d := defaultConfig()
	if c.Logger != nil {
		d.Logger = c.Logger
	}
	if c.Registry != nil {
		d.Registry = c.Registry
	}
	if c.Telemetry != nil {
		d.Telemetry = c.Telemetry
	}
	return d
}
