package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/types"
)

// RenderOptions contains options for rendering components and URIs.
type RenderOptions = types.RenderOptions

const (
	// ErrInvalidComponent is returned when a component cannot be made
	// grammar-valid from the given raw value.
	ErrInvalidComponent errorutil.Error = "invalid component"
	// ErrTypeMismatch is returned by [Same] when an argument is not a
	// component value.
	ErrTypeMismatch errorutil.Error = "type mismatch"
	// ErrUnsupportedOperation is returned by operations that a composite
	// part does not support.
	ErrUnsupportedOperation errorutil.Error = "unsupported operation"
)

func newInvalidComponentErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidComponent, args...) //errtrace:skip
}

// Component is the common contract of all URI component and part values.
type Component interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	fmt.Stringer
	// IsZero reports whether the component is absent from the URI.
	IsZero() bool
}

// componentOf unpacks a component value from val, accepting both value and
// pointer forms of every component kind.
func componentOf(val any) (Component, bool) {
	switch v := val.(type) {
	case Scheme:
		return v, true
	case *Scheme:
		if v == nil {
			return nil, false
		}
		return *v, true
	case User:
		return v, true
	case *User:
		if v == nil {
			return nil, false
		}
		return *v, true
	case Password:
		return v, true
	case *Password:
		if v == nil {
			return nil, false
		}
		return *v, true
	case Host:
		return v, true
	case *Host:
		if v == nil {
			return nil, false
		}
		return *v, true
	case Port:
		return v, true
	case *Port:
		if v == nil {
			return nil, false
		}
		return *v, true
	case Path:
		return v, true
	case *Path:
		if v == nil {
			return nil, false
		}
		return *v, true
	case Query:
		return v, true
	case *Query:
		if v == nil {
			return nil, false
		}
		return *v, true
	case Fragment:
		return v, true
	case *Fragment:
		if v == nil {
			return nil, false
		}
		return *v, true
	case UserInfo:
		return v, true
	case *UserInfo:
		if v == nil {
			return nil, false
		}
		return *v, true
	}
	return nil, false
}

// Same reports whether v1 and v2 are component values rendering to identical
// delimited forms. Unlike the per-type Equal methods, which return false for
// foreign types, Same treats a non-component argument as a contract
// violation and returns [ErrTypeMismatch].
func Same(v1, v2 any) (bool, error) {
	c1, ok := componentOf(v1)
	if !ok {
		return false, errtrace.Wrap(errorutil.NewWrapperError(ErrTypeMismatch, "%T is not a component", v1))
	}
	c2, ok := componentOf(v2)
	if !ok {
		return false, errtrace.Wrap(errorutil.NewWrapperError(ErrTypeMismatch, "%T is not a component", v2))
	}
	return c1.Render(nil) == c2.Render(nil), nil
}

func equalComponents(c Component, val any) bool {
	other, ok := componentOf(val)
	if !ok {
		return false
	}
	return c.Render(nil) == other.Render(nil)
}

func componentLogValue(kind, content string, defined bool) slog.Value {
	if !defined {
		return slog.GroupValue(
			slog.String("kind", kind),
			slog.Bool("defined", false),
		)
	}
	return slog.GroupValue(
		slog.String("kind", kind),
		slog.Bool("defined", true),
		slog.String("content", content),
	)
}
