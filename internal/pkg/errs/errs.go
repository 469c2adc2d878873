package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidState      = errors.New("invalid state")
	ErrAlreadyExists     = errors.New("already exists")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrRefundFailed      = errors.New("refund failed")
)

// sanitize strips line breaks from values that end up in error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object with the given identifier
// does not exist in the underlying store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause, typically a store error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError indicates that an operation is not legal for the current
// state of an entity, for example cancelling a shipped order or creating an
// order for a deactivated user. The message always names the current state.
type InvalidStateError struct {
	Entity  string
	Current string
	Detail  string
}

// NewInvalidStateError creates an InvalidStateError for the given entity,
// its current state and a short description of what was attempted.
func NewInvalidStateError(entity, current, detail string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Detail: detail}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is %s, %s", ErrInvalidState, e.Entity, e.Current, e.Detail))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// AlreadyExistsError indicates a uniqueness violation, for example a user
// registration with an email that is already taken.
type AlreadyExistsError struct {
	ParamName string
	Value     string
}

// NewAlreadyExistsError creates an AlreadyExistsError for the conflicting value.
func NewAlreadyExistsError(paramName, value string) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, Value: value}
}

func (e *AlreadyExistsError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s", ErrAlreadyExists, e.ParamName, e.Value))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// PaymentFailedError indicates that the payment gateway declined a charge.
// Message carries the gateway's own description of the decline.
type PaymentFailedError struct {
	Message string
}

// NewPaymentFailedError creates a PaymentFailedError carrying the gateway message.
func NewPaymentFailedError(message string) *PaymentFailedError {
	return &PaymentFailedError{Message: message}
}

func (e *PaymentFailedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrPaymentFailed, e.Message))
}

func (e *PaymentFailedError) Unwrap() error {
	return ErrPaymentFailed
}

// RefundFailedError indicates that the payment gateway declined a refund.
type RefundFailedError struct {
	Message string
}

// NewRefundFailedError creates a RefundFailedError carrying the gateway message.
func NewRefundFailedError(message string) *RefundFailedError {
	return &RefundFailedError{Message: message}
}

func (e *RefundFailedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrRefundFailed, e.Message))
}

func (e *RefundFailedError) Unwrap() error {
	return ErrRefundFailed
}
