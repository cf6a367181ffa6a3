package property

import (
	"fmt"

	"github.com/moisespsena-go/tracederror"
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalProperty = errors.New("illegal property")
)

// InvalidArgumentError reports misuse of the API: a target that is not an
// object reference, an empty property name, an unknown type tag or a value
// rejected on write.
type InvalidArgumentError struct {
	Argument string // Name of the offending argument.
	Err      error  // Pre-formatted error.
}

func invalidArgument(argument, format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Err: fmt.Errorf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument " + e.Argument + ": " + e.Err.Error()
}

func (e *InvalidArgumentError) Cause() error {
	return e.Err
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IllegalPropertyError indicates that a property name does not exist on the
// given object.
type IllegalPropertyError struct {
	name     string
	instance interface{}
	cause    error
}

// NewIllegalPropertyError fails with an InvalidArgumentError if name is empty
// or instance is not an object reference.
func NewIllegalPropertyError(name string, instance interface{}) (*IllegalPropertyError, error) {
	if err := CheckInstance(instance); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, invalidArgument("name", "property name has to be a non-empty string")
	}
	return &IllegalPropertyError{name: name, instance: instance}, nil
}

func (e *IllegalPropertyError) IllegalProperty() string {
	return e.name
}

func (e *IllegalPropertyError) Instance() interface{} {
	return e.instance
}

func (e *IllegalPropertyError) Error() string {
	msg := `property "` + e.name + `" does not exist on given object`
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns why the lookup failed, if known.
func (e *IllegalPropertyError) Unwrap() error {
	return e.cause
}

func (e *IllegalPropertyError) Is(target error) bool {
	return target == ErrIllegalProperty
}

// GetIllegalPropertyError finds an IllegalPropertyError in the cause chain
// of err.
func GetIllegalPropertyError(err error) (e *IllegalPropertyError, ok bool) {
	for err != nil {
		switch t := err.(type) {
		case *IllegalPropertyError:
			return t, true
		case tracederror.Causer:
			err = t.Cause()
		case interface{ Unwrap() error }:
			err = t.Unwrap()
		default:
			return
		}
	}
	return
}

func IsIllegalProperty(err error) bool {
	_, ok := GetIllegalPropertyError(err)
	return ok
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
