package models

// CircuitBreakerState represents the state of a circuit breaker
type CircuitBreakerState int

const (
	// CircuitBreakerClosed - normal operation, requests flow through
	CircuitBreakerClosed CircuitBreakerState = iota
	// CircuitBreakerOpen - failures exceeded threshold, requests are rejected
	CircuitBreakerOpen
	// CircuitBreakerHalfOpen - probing whether the downstream has recovered
	CircuitBreakerHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case CircuitBreakerClosed:
		return "closed"
	case CircuitBreakerOpen:
		return "open"
	case CircuitBreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}
