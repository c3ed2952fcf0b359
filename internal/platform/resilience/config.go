package resilience

import "time"

// CircuitBreakerConfig tunes a CircuitBreaker. Non-positive thresholds and
// timeouts fall back to DefaultCircuitBreakerConfig.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	def := DefaultCircuitBreakerConfig()
	c.FailureThreshold = atLeastOne(c.FailureThreshold, def.FailureThreshold)
	c.HalfOpenMaxReq = atLeastOne(c.HalfOpenMaxReq, def.HalfOpenMaxReq)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = def.OpenTimeout
	}
	return c
}

// LogFields returns the effective settings as logger key/value pairs.
func (c CircuitBreakerConfig) LogFields() []any {
	c = c.withDefaults()
	return []any{
		"circuit_enabled", c.Enabled,
		"circuit_failure_threshold", c.FailureThreshold,
		"circuit_open_timeout", c.OpenTimeout.String(),
		"circuit_half_open_max_req", c.HalfOpenMaxReq,
	}
}

func atLeastOne(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
