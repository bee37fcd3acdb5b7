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

func shouldEscapeQueryChar(c byte) bool { return !grammar.IsQueryChar(c) }

// Query is the query component, kept as one opaque encoded string with no
// key-value interpretation. The zero value means the query is absent; a
// defined empty query still renders its "?" marker.
type Query struct {
	raw     string
	defined bool
}

// NewQuery returns a Query constructed from raw. Characters outside the
// query set are percent-escaped.
func NewQuery(raw string) (Query, error) {
	if !grammar.IsQuery(grammar.Escape(raw, shouldEscapeQueryChar)) {
		return Query{}, errtrace.Wrap(newInvalidComponentErr("query %q", raw))
	}
	return Query{raw: raw, defined: true}, nil
}

// Content returns the normalized encoded query and a flag indicating whether
// the query is defined.
func (q Query) Content() (string, bool) {
	if !q.defined {
		return "", false
	}
	return grammar.Escape(q.raw, shouldEscapeQueryChar), true
}

// WithContent returns a new Query constructed from raw; the receiver is
// left untouched.
func (q Query) WithContent(raw string) (Query, error) {
	return errtrace.Wrap2(NewQuery(raw))
}

// RenderTo writes the delimited form "?query" to w; an absent query writes
// nothing, a defined empty query writes "?".
func (q Query) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !q.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("?", grammar.Escape(q.raw, shouldEscapeQueryChar))
	return errtrace.Wrap2(cw.Result())
}

// Render returns the delimited form of the query.
func (q Query) Render(opts *RenderOptions) string {
	if !q.defined {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	q.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the encoded query without the "?" marker; an absent query
// returns "".
func (q Query) String() string {
	if !q.defined {
		return ""
	}
	return grammar.Escape(q.raw, shouldEscapeQueryChar)
}

// Format implements fmt.Formatter for custom formatting of the query.
func (q Query) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, q.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(q.String()))
		return
	default:
		type hideMethods Query
		type Query hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Query(q))
		return
	}
}

// LogValue implements slog.LogValuer.
func (q Query) LogValue() slog.Value {
	return componentLogValue("query", q.String(), q.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (q Query) Equal(val any) bool { return equalComponents(q, val) }

// IsZero reports whether the query is absent.
func (q Query) IsZero() bool { return !q.defined }

// IsValid checks whether the query is syntactically valid.
func (q Query) IsValid() bool {
	return q.defined && grammar.IsQuery(grammar.Escape(q.raw, shouldEscapeQueryChar))
}
