package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Scheme is the URI scheme component.
// The zero value means the scheme is absent.
type Scheme struct {
	name    string
	defined bool
}

// NewScheme returns a Scheme constructed from raw. The scheme grammar allows
// no percent-encoding: raw must be a letter followed by letters, digits or
// "+", "-", ".". The name is normalized to lower case.
func NewScheme(raw string) (Scheme, error) {
	name := util.LCase(raw)
	if !grammar.IsScheme(name) {
		return Scheme{}, errtrace.Wrap(newInvalidComponentErr("scheme %q", raw))
	}
	return Scheme{name: name, defined: true}, nil
}

// Content returns the normalized scheme name and a flag indicating whether
// the scheme is defined.
func (sc Scheme) Content() (string, bool) { return sc.name, sc.defined }

// Is reports whether the scheme carries the given name, compared
// case-insensitively. An absent scheme matches nothing.
func (sc Scheme) Is(name string) bool {
	return sc.defined && util.EqFold(sc.name, name)
}

// WithContent returns a new Scheme constructed from raw; the receiver is
// left untouched.
func (sc Scheme) WithContent(raw string) (Scheme, error) {
	return errtrace.Wrap2(NewScheme(raw))
}

// RenderTo writes the delimited form "name:" to w; an absent scheme writes
// nothing.
func (sc Scheme) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !sc.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(sc.name, ":")
	return errtrace.Wrap2(cw.Result())
}

// Render returns the delimited form of the scheme.
func (sc Scheme) Render(opts *RenderOptions) string {
	if !sc.defined {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sc.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the scheme name; an absent scheme returns "".
func (sc Scheme) String() string { return sc.name }

// Format implements fmt.Formatter for custom formatting of the scheme.
func (sc Scheme) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, sc.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(sc.String()))
		return
	default:
		type hideMethods Scheme
		type Scheme hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Scheme(sc))
		return
	}
}

// LogValue implements slog.LogValuer.
func (sc Scheme) LogValue() slog.Value {
	return componentLogValue("scheme", sc.name, sc.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (sc Scheme) Equal(val any) bool { return equalComponents(sc, val) }

// IsZero reports whether the scheme is absent.
func (sc Scheme) IsZero() bool { return !sc.defined }

// IsValid checks whether the scheme is syntactically valid.
func (sc Scheme) IsValid() bool { return sc.defined && grammar.IsScheme(sc.name) }
