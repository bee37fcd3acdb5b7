package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Port is the port component of the authority part.
// The zero value means the port is absent.
type Port struct {
	port    uint16
	defined bool
}

// NewPort returns a Port holding port. Any uint16 is a valid port, so the
// constructor cannot fail.
func NewPort(port uint16) Port {
	return Port{port: port, defined: true}
}

// ParsePort parses s as a decimal port number. The empty string, non-digit
// input and values above 65535 are rejected.
func ParsePort[T constraints.Byteseq](s T) (Port, error) {
	if len(s) == 0 || !grammar.IsPort(s) {
		return Port{}, errtrace.Wrap(newInvalidComponentErr("port %q", string(s)))
	}
	n, err := strconv.ParseUint(string(s), 10, 16)
	if err != nil {
		return Port{}, errtrace.Wrap(newInvalidComponentErr(err))
	}
	return NewPort(uint16(n)), nil
}

// Content returns the port number and a flag indicating whether the port is
// defined.
func (p Port) Content() (uint16, bool) { return p.port, p.defined }

// WithContent returns a new Port parsed from raw; the receiver is left
// untouched.
func (p Port) WithContent(raw string) (Port, error) {
	return errtrace.Wrap2(ParsePort(raw))
}

// RenderTo writes the delimited form ":port" to w; an absent port writes
// nothing.
func (p Port) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !p.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(":", strconv.FormatUint(uint64(p.port), 10))
	return errtrace.Wrap2(cw.Result())
}

// Render returns the delimited form of the port.
func (p Port) Render(opts *RenderOptions) string {
	if !p.defined {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the decimal port number; an absent port returns "".
func (p Port) String() string {
	if !p.defined {
		return ""
	}
	return strconv.FormatUint(uint64(p.port), 10)
}

// Format implements fmt.Formatter for custom formatting of the port.
func (p Port) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	case 'd':
		fmt.Fprint(f, p.port)
		return
	default:
		type hideMethods Port
		type Port hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Port(p))
		return
	}
}

// LogValue implements slog.LogValuer.
func (p Port) LogValue() slog.Value {
	return componentLogValue("port", p.String(), p.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (p Port) Equal(val any) bool { return equalComponents(p, val) }

// IsZero reports whether the port is absent.
func (p Port) IsZero() bool { return !p.defined }

// IsValid checks whether the port is defined. Every defined port number is
// in range by construction.
func (p Port) IsValid() bool { return p.defined }
