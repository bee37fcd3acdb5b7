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

func shouldEscapeFragmentChar(c byte) bool { return !grammar.IsFragmentChar(c) }

// Fragment is the fragment component. The zero value means the fragment is
// absent; a defined empty fragment still renders its "#" marker, which is
// how "http://example.com" and "http://example.com#" stay distinct.
type Fragment struct {
	raw     string
	defined bool
}

// NewFragment returns a Fragment constructed from raw. Characters outside
// the fragment set are percent-escaped.
func NewFragment(raw string) (Fragment, error) {
	if !grammar.IsFragment(grammar.Escape(raw, shouldEscapeFragmentChar)) {
		return Fragment{}, errtrace.Wrap(newInvalidComponentErr("fragment %q", raw))
	}
	return Fragment{raw: raw, defined: true}, nil
}

// Content returns the normalized encoded fragment and a flag indicating
// whether the fragment is defined.
func (fr Fragment) Content() (string, bool) {
	if !fr.defined {
		return "", false
	}
	return grammar.Escape(fr.raw, shouldEscapeFragmentChar), true
}

// Value returns the fully decoded fragment value.
func (fr Fragment) Value() string { return grammar.Unescape(fr.raw) }

// WithContent returns a new Fragment constructed from raw; the receiver is
// left untouched.
func (fr Fragment) WithContent(raw string) (Fragment, error) {
	return errtrace.Wrap2(NewFragment(raw))
}

// RenderTo writes the delimited form "#fragment" to w; an absent fragment
// writes nothing, a defined empty fragment writes "#".
func (fr Fragment) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !fr.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("#", grammar.Escape(fr.raw, shouldEscapeFragmentChar))
	return errtrace.Wrap2(cw.Result())
}

// Render returns the delimited form of the fragment.
func (fr Fragment) Render(opts *RenderOptions) string {
	if !fr.defined {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the encoded fragment without the "#" marker; an absent
// fragment returns "".
func (fr Fragment) String() string {
	if !fr.defined {
		return ""
	}
	return grammar.Escape(fr.raw, shouldEscapeFragmentChar)
}

// Format implements fmt.Formatter for custom formatting of the fragment.
func (fr Fragment) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, fr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(fr.String()))
		return
	default:
		type hideMethods Fragment
		type Fragment hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Fragment(fr))
		return
	}
}

// LogValue implements slog.LogValuer.
func (fr Fragment) LogValue() slog.Value {
	return componentLogValue("fragment", fr.String(), fr.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (fr Fragment) Equal(val any) bool { return equalComponents(fr, val) }

// IsZero reports whether the fragment is absent.
func (fr Fragment) IsZero() bool { return !fr.defined }

// IsValid checks whether the fragment is syntactically valid.
func (fr Fragment) IsValid() bool {
	return fr.defined && grammar.IsFragment(grammar.Escape(fr.raw, shouldEscapeFragmentChar))
}
