package uri

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

func shouldEscapeHostChar(c byte) bool { return !grammar.IsHostChar(c) }

// Host is the host component of the authority part: a registered name or an
// IP address. The zero value means the host is absent.
type Host struct {
	name    string
	ip      net.IP
	defined bool
}

// NewHost returns a Host constructed from raw. A bracketed raw is taken as
// an IPv6 literal and must hold a valid address in IPv6 syntax, IPv4-mapped
// forms included; a dotted raw that parses as IPv4 is kept as an address;
// anything else is treated as a registered name and normalized to lower
// case.
func NewHost(raw string) (Host, error) {
	if strings.HasPrefix(raw, "[") {
		if !strings.HasSuffix(raw, "]") {
			return Host{}, errtrace.Wrap(newInvalidComponentErr("host %q", raw))
		}
		// the colon check keeps plain dotted IPv4 out of brackets, which
		// the IP-literal grammar does not admit
		inner := raw[1 : len(raw)-1]
		ip := net.ParseIP(inner)
		if ip == nil || !strings.Contains(inner, ":") {
			return Host{}, errtrace.Wrap(newInvalidComponentErr("host %q", raw))
		}
		return Host{ip: ip, defined: true}, nil
	}
	if ip := net.ParseIP(raw); ip != nil && ip.To4() != nil {
		return Host{ip: ip, defined: true}, nil
	}
	name := grammar.Escape(util.LCase(raw), shouldEscapeHostChar)
	if !grammar.IsHost(name) {
		return Host{}, errtrace.Wrap(newInvalidComponentErr("host %q", raw))
	}
	return Host{name: name, defined: true}, nil
}

// Content returns the normalized encoded host and a flag indicating whether
// the host is defined. IPv6 addresses come back bracketed; an IPv4-mapped
// literal normalizes to its dotted IPv4 form.
func (h Host) Content() (string, bool) {
	if !h.defined {
		return "", false
	}
	return h.content(), true
}

func (h Host) content() string {
	if h.ip != nil {
		if h.ip.To4() != nil {
			return h.ip.String()
		}
		return "[" + h.ip.String() + "]"
	}
	return h.name
}

// IP returns the host address when the host is an IP literal or an IPv4
// dotted form, nil otherwise.
func (h Host) IP() net.IP { return h.ip }

// WithContent returns a new Host constructed from raw; the receiver is left
// untouched.
func (h Host) WithContent(raw string) (Host, error) {
	return errtrace.Wrap2(NewHost(raw))
}

// RenderTo writes the encoded host to w. The "//" marker belongs to the URI
// authority, not to the host.
func (h Host) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !h.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(h.content())
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded host.
func (h Host) Render(opts *RenderOptions) string {
	if !h.defined {
		return ""
	}
	return h.content()
}

// String returns the encoded host; an absent host returns "".
func (h Host) String() string { return h.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the host.
func (h Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
		return
	default:
		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Host(h))
		return
	}
}

// LogValue implements slog.LogValuer.
func (h Host) LogValue() slog.Value {
	return componentLogValue("host", h.Render(nil), h.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (h Host) Equal(val any) bool { return equalComponents(h, val) }

// IsZero reports whether the host is absent.
func (h Host) IsZero() bool { return !h.defined }

// IsValid checks whether the host is syntactically valid. The empty
// registered name is valid per RFC 3986.
func (h Host) IsValid() bool {
	if !h.defined {
		return false
	}
	if h.ip != nil {
		return true
	}
	return grammar.IsHost(h.name)
}
