// Package errors provides structured error types used across the application.
// We prefer these over raw fmt.Errorf strings to enable reliable checks with
// errors.Is / errors.As and to carry minimal context about the failure.
package errors

import (
	"errors"
	"fmt"
)

// ConfigError indicates a missing or invalid runtime setting. Always fatal:
// the run aborts before any network call is made.
type ConfigError struct {
	Op  string // where it happened (package.Function)
	Msg string // human friendly message (no secrets)
	Err error  // underlying cause (optional)
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("config: %s: %s", e.Op, e.Msg)
}

func (e *ConfigError) Unwrap() error     { return e.Err }
func (e *ConfigError) Operation() string { return e.Op }
func (e *ConfigError) Message() string   { return e.Msg }

func NewConfig(op, msg string, err error) error {
	return &ConfigError{Op: op, Msg: msg, Err: err}
}

// UpstreamError represents failures talking to the LibCal API: transport
// errors, bad token exchanges, or an explicit error payload in the response.
// Always fatal: the run aborts before row generation starts.
type UpstreamError struct {
	Op     string
	Msg    string
	Err    error
	System string // optional system name e.g. "libcal" / "oauth"
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "<nil>"
	}
	sys := e.System
	if sys == "" {
		sys = "upstream"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", sys, e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", sys, e.Op, e.Msg)
}

func (e *UpstreamError) Unwrap() error     { return e.Err }
func (e *UpstreamError) Operation() string { return e.Op }
func (e *UpstreamError) Message() string   { return e.Msg }

func NewUpstream(op, system, msg string, err error) error {
	return &UpstreamError{Op: op, System: system, Msg: msg, Err: err}
}

// ParseError indicates a clock-time token that does not match the 12-hour
// grammar. Never fatal: the affected row degrades to blank normalized fields.
type ParseError struct {
	Op    string
	Token string // the offending input token
	Msg   string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("parse: %s: %s: %q", e.Op, e.Msg, e.Token)
}

func (e *ParseError) Operation() string { return e.Op }
func (e *ParseError) Message() string   { return e.Msg }

func NewParse(op, msg, token string) error {
	return &ParseError{Op: op, Msg: msg, Token: token}
}

// ExtractionError indicates that no open/close window could be recovered from
// a date entry (neither structured fields nor free text yielded times).
// Never fatal: the affected row degrades to blank normalized fields.
type ExtractionError struct {
	Op  string
	Msg string
	Err error
}

func (e *ExtractionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("extract: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("extract: %s: %s", e.Op, e.Msg)
}

func (e *ExtractionError) Unwrap() error     { return e.Err }
func (e *ExtractionError) Operation() string { return e.Op }
func (e *ExtractionError) Message() string   { return e.Msg }

func NewExtraction(op, msg string, err error) error {
	return &ExtractionError{Op: op, Msg: msg, Err: err}
}

// DBError represents reporting-database access/operation failures.
type DBError struct {
	Op  string
	Msg string
	Err error
}

func (e *DBError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("db: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("db: %s: %s", e.Op, e.Msg)
}

func (e *DBError) Unwrap() error     { return e.Err }
func (e *DBError) Operation() string { return e.Op }
func (e *DBError) Message() string   { return e.Msg }

func NewDB(op, msg string, err error) error { return &DBError{Op: op, Msg: msg, Err: err} }

// IsKind helpers: allow callers to check error kind without type assertions.
// Example: if errors.Is(err, errors.ErrConfig) { ... }
var (
	ErrConfig     = &ConfigError{}
	ErrUpstream   = &UpstreamError{}
	ErrParse      = &ParseError{}
	ErrExtraction = &ExtractionError{}
	ErrDB         = &DBError{}
)

// Is enables errors.Is(err, ErrConfig) via errors.As semantics.
// We delegate to errors.As with the zero-value pointer of each type.
func Is(err, target error) bool {
	if err == nil || target == nil {
		return errors.Is(err, target)
	}
	switch target.(type) {
	case *ConfigError:
		var c *ConfigError
		return errors.As(err, &c)
	case *UpstreamError:
		var u *UpstreamError
		return errors.As(err, &u)
	case *ParseError:
		var p *ParseError
		return errors.As(err, &p)
	case *ExtractionError:
		var x *ExtractionError
		return errors.As(err, &x)
	case *DBError:
		var d *DBError
		return errors.As(err, &d)
	default:
		return errors.Is(err, target)
	}
}
