package bpdecoder

// Method selects the check-node update rule.
type Method int

const (
	// SumProduct computes exact check-to-bit messages via the tanh-domain
	// product rule.
	SumProduct Method = iota

	// MinSum approximates the check-to-bit magnitude with the minimum
	// incoming magnitude, scaled by an alpha damping factor.
	MinSum
)

// Schedule selects the order in which messages are updated within an
// iteration.
type Schedule int

const (
	// Parallel updates every check, then every bit, simultaneously
	// ("flooding" schedule).
	Parallel Schedule = iota

	// Serial updates bits one at a time, in natural order (or shuffled,
	// see WithRandomSerial), propagating each bit's effect immediately.
	Serial

	// SerialRelative updates bits one at a time in descending order of
	// current reliability |λ[j]|. The sort is stable over the previous
	// round's order, so ties keep index order in the first round and the
	// previous round's relative order after that.
	SerialRelative
)

// Config configures a Decoder. It is passed to New and applies to every
// Decode call made on that Decoder.
type Config struct {
	Method       Method
	Schedule     Schedule
	MaxIter      int
	MsScale      float64
	RandomSerial bool
}

// Option is a functional option for Config.
type Option func(*Config)

// WithMethod sets the check-node update rule. Default SumProduct.
func WithMethod(m Method) Option {
	return func(c *Config) {
		c.Method = m
	}
}

// WithSchedule sets the message-passing schedule. Default Parallel.
func WithSchedule(s Schedule) Option {
	return func(c *Config) {
		c.Schedule = s
	}
}

// WithMaxIter sets the maximum number of iterations. Must be positive;
// non-positive values panic. Default 50.
func WithMaxIter(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			panic(ErrNonPositiveMaxIter.Error())
		}
		c.MaxIter = n
	}
}

// WithMsScale sets the fixed min-sum damping factor alpha. A value of 0
// (the default) selects the adaptive schedule alpha(t) = 1 - 2^(-t)
// instead of a constant. Negative values panic.
func WithMsScale(alpha float64) Option {
	return func(c *Config) {
		if alpha < 0 {
			panic(ErrNegativeMsScale.Error())
		}
		c.MsScale = alpha
	}
}

// WithRandomSerial enables per-iteration random shuffling of the bit
// order under the Serial schedule. Ignored under Parallel and
// SerialRelative. Requires a non-nil random source be passed to New.
func WithRandomSerial(enabled bool) Option {
	return func(c *Config) {
		c.RandomSerial = enabled
	}
}

// DefaultConfig returns the baseline configuration: sum-product, parallel
// schedule, 50 iterations, adaptive min-sum scale, fixed bit order.
func DefaultConfig() Config {
	return Config{
		Method:       SumProduct,
		Schedule:     Parallel,
		MaxIter:      50,
		MsScale:      0,
		RandomSerial: false,
	}
}

// NewConfig builds a Config from DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
