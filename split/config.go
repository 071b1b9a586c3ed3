package split

import "math"

// Default values for the split configuration (percentages of the container height).
const (
	DefaultTopHeight        = 60.0
	DefaultMinTopHeight     = 20.0
	DefaultMaxTopHeight     = 80.0
	DefaultDividerThickness = 1
)

// Config holds the immutable configuration of a split.
// MinTop <= MaxTop is the caller's responsibility and is not validated.
type Config struct {
	DefaultTop       float64
	MinTop           float64
	MaxTop           float64
	DividerThickness int
}

// Option configures a split at construction time.
type Option func(*Config)

// WithDefaultTop sets the initial top height percentage.
func WithDefaultTop(percent float64) Option {
	return func(c *Config) {
		c.DefaultTop = percent
	}
}

// WithMinTop sets the lower bound of the top height percentage.
func WithMinTop(percent float64) Option {
	return func(c *Config) {
		c.MinTop = percent
	}
}

// WithMaxTop sets the upper bound of the top height percentage.
func WithMaxTop(percent float64) Option {
	return func(c *Config) {
		c.MaxTop = percent
	}
}

// WithDividerThickness sets the divider size in cells. Negative values are treated as 0.
func WithDividerThickness(cells int) Option {
	return func(c *Config) {
		if cells < 0 {
			cells = 0
		}
		c.DividerThickness = cells
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	c := Config{
		DefaultTop:       DefaultTopHeight,
		MinTop:           DefaultMinTopHeight,
		MaxTop:           DefaultMaxTopHeight,
		DividerThickness: DefaultDividerThickness,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Clamp constrains r to [lo, hi]. NaN clamps to lo, and lo wins when lo > hi.
func Clamp(r, lo, hi float64) float64 {
	if math.IsNaN(r) {
		return lo
	}
	if r > hi {
		r = hi
	}
	if r < lo {
		r = lo
	}
	return r
}
