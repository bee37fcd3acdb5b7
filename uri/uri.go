package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// URI aggregates the component values into one generic RFC 3986 URI.
// Absent components stay zero; rendering walks the components in order and
// lets each one bring its own delimiter.
type URI struct {
	Scheme   Scheme
	UserInfo UserInfo
	Host     Host
	Port     Port
	Path     Path
	Query    Query
	Fragment Fragment
}

// Parse parses a URI from the given input s (string or []byte).
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	n, err := grammar.ParseURI(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(FromABNF(n))
}

// FromABNF builds a URI from a parsed ABNF node. End users usually don't
// need this directly and should use [Parse] instead.
func FromABNF(node *abnf.Node) (*URI, error) {
	var u URI
	var err error

	if u.Scheme, err = NewScheme(grammar.MustGetNode(node, "scheme").String()); err != nil {
		return nil, errtrace.Wrap(err)
	}

	if hp, ok := node.GetNode("hier-part"); ok && !hp.IsEmpty() {
		if an, ok := hp.GetNode("authority"); ok {
			if err = fromAuthorityNode(&u, an); err != nil {
				return nil, errtrace.Wrap(err)
			}
			if pn, ok := hp.GetNode("path-abempty"); ok && !pn.IsEmpty() {
				if u.Path, err = NewPath(pn.String()); err != nil {
					return nil, errtrace.Wrap(err)
				}
			}
		} else if u.Path, err = NewPath(hp.String()); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	// the "?"/"#" markers make the node non-empty even when the component
	// itself is empty, which is what keeps "http://x" and "http://x#" apart
	if qn, ok := node.GetNode(`"?" query`); ok && !qn.IsEmpty() {
		if u.Query, err = NewQuery(grammar.MustGetNode(qn, "query").String()); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if fn, ok := node.GetNode(`"#" fragment`); ok && !fn.IsEmpty() {
		if u.Fragment, err = NewFragment(grammar.MustGetNode(fn, "fragment").String()); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return &u, nil
}

func fromAuthorityNode(u *URI, node *abnf.Node) error {
	var err error

	if un, ok := node.GetNode("userinfo"); ok && !un.IsEmpty() {
		var user User
		if user, err = NewUser(grammar.MustGetNode(un, "user").String()); err != nil {
			return errtrace.Wrap(err)
		}
		var passwd Password
		if pn, ok := un.GetNode("password"); ok {
			if passwd, err = NewPassword(pn.String()); err != nil {
				return errtrace.Wrap(err)
			}
		}
		u.UserInfo = NewUserInfo(user, passwd)
	}

	if u.Host, err = NewHost(grammar.MustGetNode(node, "host").String()); err != nil {
		return errtrace.Wrap(err)
	}

	// ":" with no digits is tolerated on input and dropped, the port stays
	// absent.
	if pn, ok := node.GetNode("port"); ok && !pn.IsEmpty() {
		if u.Port, err = ParsePort(pn.String()); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// RenderTo writes the URI to w component by component. The "//" marker is
// written whenever the host is defined.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if u == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(func(w io.Writer) (int, error) { return u.Scheme.RenderTo(w, opts) })
	if !u.Host.IsZero() {
		cw.Fprint("//")
		cw.Call(func(w io.Writer) (int, error) { return u.UserInfo.RenderTo(w, opts) })
		cw.Call(func(w io.Writer) (int, error) { return u.Host.RenderTo(w, opts) })
		cw.Call(func(w io.Writer) (int, error) { return u.Port.RenderTo(w, opts) })
	}
	cw.Call(func(w io.Writer) (int, error) { return u.Path.RenderTo(w, opts) })
	cw.Call(func(w io.Writer) (int, error) { return u.Query.RenderTo(w, opts) })
	cw.Call(func(w io.Writer) (int, error) { return u.Fragment.RenderTo(w, opts) })
	return errtrace.Wrap2(cw.Result())
}

// Render returns the URI string.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the URI string.
func (u *URI) String() string { return u.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		var v *URI
		if u != nil {
			v = (*URI)(u)
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), v)
		return
	}
}

// LogValue implements slog.LogValuer.
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.StringValue(u.String())
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	out := *u
	if u.Host.ip != nil {
		out.Host.ip = append(u.Host.ip[:0:0], u.Host.ip...)
	}
	return &out
}

// Equal reports whether val is a URI rendering to an identical string.
func (u *URI) Equal(val any) bool {
	switch v := val.(type) {
	case URI:
		return u.Render(nil) == v.Render(nil)
	case *URI:
		return u.Render(nil) == v.Render(nil)
	}
	return false
}

// IsZero reports whether all components are absent.
func (u *URI) IsZero() bool {
	return u == nil || (u.Scheme.IsZero() && u.UserInfo.IsZero() && u.Host.IsZero() &&
		u.Port.IsZero() && u.Path.IsZero() && u.Query.IsZero() && u.Fragment.IsZero())
}

// IsValid checks whether the URI is complete and coherent: the scheme is
// mandatory, userinfo and port require a host, and with a host present the
// path must be empty or absolute.
func (u *URI) IsValid() bool {
	if u == nil || !u.Scheme.IsValid() {
		return false
	}
	if u.Host.IsZero() {
		if !u.UserInfo.IsZero() || !u.Port.IsZero() {
			return false
		}
	} else if !u.Host.IsValid() {
		return false
	}
	for _, c := range []Component{u.UserInfo, u.Port, u.Path, u.Query, u.Fragment} {
		if !c.IsZero() && !c.IsValid() {
			return false
		}
	}
	if !u.Host.IsZero() && !u.Path.IsZero() && !u.Path.IsAbsolute() {
		return false
	}
	if u.Host.IsZero() {
		if s, ok := u.Path.Content(); ok && strings.HasPrefix(s, "//") {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.Render(nil)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URI) UnmarshalText(text []byte) error {
	v, err := Parse(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*u = *v
	return nil
}
