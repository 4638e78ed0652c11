package session

import "time"

// Config holds session manager configuration.
type Config struct {
	// TTL is the session time-to-live (idle timeout).
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	// TouchInterval is the minimum time between activity updates
	// (0 = extend on every request).
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"5m"`
}

// defaultConfig returns default configuration.
func defaultConfig() *Config {
	return &Config{
		TTL:           7 * 24 * time.Hour,
		TouchInterval: 5 * time.Minute,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithTTL sets the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithTouchInterval sets the minimum time between session activity updates.
func WithTouchInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval >= 0 {
			c.TouchInterval = interval
		}
	}
}
