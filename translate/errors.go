package translate

import (
	"errors"
	"fmt"

	semerrors "github.com/c360studio/semstreams/pkg/errs"
)

const component = "translate"

// Sentinel errors.
var (
	// ErrConfiguration means no translator is registered for an axiom type.
	ErrConfiguration = errors.New("no translator registered")

	// ErrTranslation means the graph does not have the shape an axiom needs.
	ErrTranslation = errors.New("cannot translate")

	// ErrIllegalArgument means a caller passed a nil or anonymous value
	// where a named one is required.
	ErrIllegalArgument = errors.New("illegal argument")
)

func translationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTranslation, fmt.Sprintf(format, args...))
}

func illegalArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, fmt.Sprintf(format, args...))
}

// classify attaches a semstreams error class unless err already has one.
func classify(err error, method, action string) error {
	if err == nil {
		return nil
	}
	var ce *semerrors.ClassifiedError
	if errors.As(err, &ce) {
		return err
	}
	switch {
	case errors.Is(err, ErrConfiguration):
		return semerrors.WrapFatal(err, component, method, action)
	case errors.Is(err, ErrTranslation), errors.Is(err, ErrIllegalArgument):
		return semerrors.WrapInvalid(err, component, method, action)
	default:
		return semerrors.Wrap(err, component, method, action)
	}
}

// IsTranslationError reports whether err is a recoverable read failure.
func IsTranslationError(err error) bool {
	return errors.Is(err, ErrTranslation)
}

// IsIllegalArgument reports whether err was caused by a bad argument.
func IsIllegalArgument(err error) bool {
	return errors.Is(err, ErrIllegalArgument)
}

// IsConfigurationError reports whether err is a missing registration.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
