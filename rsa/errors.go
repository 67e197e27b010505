package rsa

import (
	"fmt"
	"strings"
)

// ArgTypeError reports a parameter whose dynamic type does not match the
// declared kind. Raised before any native call.
type ArgTypeError struct {
	Param string
	Want  string
	Got   any
}

func (e *ArgTypeError) Error() string {
	return fmt.Sprintf("parameter %s: want %s, got %T (%v)", e.Param, e.Want, e.Got, e.Got)
}

// RangeError reports a numeric parameter outside its legal [Min, Max] range.
type RangeError struct {
	Param    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("parameter %s: %v out of range (%v, %v)", e.Param, e.Value, e.Min, e.Max)
}

// SetError reports a value not in a closed set of accepted values.
type SetError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *SetError) Error() string {
	return fmt.Sprintf("parameter %s: %q not in {%s}", e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

// EnumError reports a string token that is not a member of a closed device
// enumeration.
type EnumError struct {
	Enum  string
	Token string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("no %s value %q", e.Enum, e.Token)
}

// ComboError reports two individually valid parameter values whose
// combination the device cannot honor.
type ComboError struct {
	A, B   string
	Reason string
}

func (e *ComboError) Error() string {
	return fmt.Sprintf("invalid combination %s with %s: %s", e.A, e.B, e.Reason)
}

// NotConfiguredError reports a query for a setting that has never been set.
type NotConfiguredError struct {
	Setting string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s has not been configured", e.Setting)
}

// DeviceError is a native call that returned a non-success status. The
// symbolic name is surfaced; the numeric code is kept for diagnostics.
type DeviceError struct {
	Op     string
	Status Status
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Status.Name(), int32(e.Status))
}

// DegradedCause identifies which acquisition-status condition compromised a
// capture. Ordered by severity, most severe first.
type DegradedCause int

const (
	CauseInputOverrange DegradedCause = iota
	CauseInputBufferPressure
	CauseInputBufferOverflow
	CauseOutputBufferPressure
	CauseOutputBufferOverflow
)

func (c DegradedCause) String() string {
	switch c {
	case CauseInputOverrange:
		return "input overrange"
	case CauseInputBufferPressure:
		return "input buffer >= 75% full"
	case CauseInputBufferOverflow:
		return "input buffer overflow"
	case CauseOutputBufferPressure:
		return "output buffer >= 75% full"
	case CauseOutputBufferOverflow:
		return "output buffer overflow"
	}
	return "unknown"
}

// DegradedError reports sticky acquisition-status bits set during a capture
// that otherwise completed. Only the most severe detected cause is carried.
type DegradedError struct {
	Cause DegradedCause
	Bits  uint32
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("acquisition degraded: %s (status bits 0x%x)", e.Cause, e.Bits)
}

// ConnectError reports a failed connect attempt.
type ConnectError struct {
	DeviceID int
	Reason   string
	Err      error
}

func (e *ConnectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connect device %d: %s: %v", e.DeviceID, e.Reason, e.Err)
	}
	return fmt.Sprintf("connect device %d: %s", e.DeviceID, e.Reason)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// ExhaustedError reports a retried operation that failed on every attempt.
type ExhaustedError struct {
	Op       string
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s failed %d consecutive times: %v", e.Op, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
