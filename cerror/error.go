package cerror

import "fmt"

// ConfigError reports a solver configuration value that violates its
// constraint. Construction of a solver with such a config must fail outright,
// there is no clamping.
type ConfigError struct {
	Field  string
	Reason string
}

func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("capsim: invalid config: %s %s", e.Field, e.Reason)
}

// QueryError wraps a fault reported by the shape-query provider during a
// single resolve call. It is recoverable: the resolve returns whatever was
// computed up to the failing query.
type QueryError struct {
	Op  string
	Err error
}

func NewQueryError(op string, err error) *QueryError {
	return &QueryError{Op: op, Err: err}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("capsim: %s query failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
