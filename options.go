package spline

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// MaxPrecision is the largest supported number of decimal places.
const MaxPrecision = 15

// Options configures the construction of segments and splines.
//
// Options can be decoded from TOML or YAML documents, for example:
//
//	default_precision = 2
//	lut_resolution = 64
//	max_error = 0.001
//
//	[precision]
//	hue = 0
//	shade = 3
type Options struct {
	// Precision maps axis names to the number of decimal places that values
	// on that axis are rounded to.
	Precision map[string]int `toml:"precision" yaml:"precision"`
	// DefaultPrecision applies to axes missing from Precision.
	DefaultPrecision int `toml:"default_precision" yaml:"default_precision"`
	// LUTResolution is the number of equally sized parameter steps sampled
	// into a segment's lookup table.
	LUTResolution int `toml:"lut_resolution" yaml:"lut_resolution"`
	// MaxError enables adaptive sampling when positive. Intervals of the
	// lookup table are bisected until linear interpolation deviates from the
	// curve, as measured by the integral over the interval, by less than
	// MaxError on every axis.
	MaxError float64 `toml:"max_error" yaml:"max_error"`
	// MaxIterations caps the number of bisections done by adaptive sampling.
	MaxIterations int `toml:"max_iterations" yaml:"max_iterations"`
}

// DefaultOptions returns options with a precision of 2 decimal places, a
// lookup table resolution of 100 and adaptive sampling disabled.
func DefaultOptions() Options {
	return Options{
		DefaultPrecision: 2,
		LUTResolution:    100,
		MaxIterations:    1000,
	}
}

// WithPrecision returns a copy of o that rounds values on axis to places
// decimal places.
func (o Options) WithPrecision(axis string, places int) Options {
	p := maps.Clone(o.Precision)
	if p == nil {
		p = make(map[string]int)
	}
	p[axis] = places
	o.Precision = p
	return o
}

// Validate checks that all settings are in range.
func (o Options) Validate() error {
	if o.DefaultPrecision < 0 || o.DefaultPrecision > MaxPrecision {
		return invalid("default_precision", "%d not in [0, %d]", o.DefaultPrecision, MaxPrecision)
	}
	for _, axis := range sortedKeys(o.Precision) {
		if p := o.Precision[axis]; p < 0 || p > MaxPrecision {
			return invalid("precision", "axis %q: %d not in [0, %d]", axis, p, MaxPrecision)
		}
	}
	if o.LUTResolution < 1 {
		return invalid("lut_resolution", "must be at least 1, got %d", o.LUTResolution)
	}
	if o.MaxError < 0 || math.IsNaN(o.MaxError) || math.IsInf(o.MaxError, 0) {
		return invalid("max_error", "must be finite and non-negative, got %g", o.MaxError)
	}
	if o.MaxIterations < 0 {
		return invalid("max_iterations", "must be non-negative, got %d", o.MaxIterations)
	}
	return nil
}

func precisionOf[A Axis](o Options, axis A) int {
	if p, ok := o.Precision[string(axis)]; ok {
		return p
	}
	return o.DefaultPrecision
}

// DecodeOptionsTOML reads options from a TOML document. Settings missing
// from the document keep their values from [DefaultOptions]. Unknown keys are
// rejected.
func DecodeOptionsTOML(r io.Reader) (Options, error) {
	o := DefaultOptions()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&o); err != nil {
		return Options{}, fmt.Errorf("decoding TOML options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// DecodeOptionsYAML reads options from a YAML document. Settings missing
// from the document keep their values from [DefaultOptions]. Unknown keys are
// rejected.
func DecodeOptionsYAML(r io.Reader) (Options, error) {
	o := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("decoding YAML options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
