package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
)

func shouldEscapePathChar(c byte) bool { return !grammar.IsPathChar(c) }

// Path is the path component. Segments are kept as one opaque encoded
// string, "/" included. The zero value means the path is absent.
type Path struct {
	raw     string
	defined bool
}

// NewPath returns a Path constructed from raw. Characters outside the path
// set are percent-escaped, so "/toto le heros/file.xml" becomes
// "/toto%20le%20heros/file.xml".
func NewPath(raw string) (Path, error) {
	if !grammar.IsPath(grammar.Escape(raw, shouldEscapePathChar)) {
		return Path{}, errtrace.Wrap(newInvalidComponentErr("path %q", raw))
	}
	return Path{raw: raw, defined: true}, nil
}

// Content returns the normalized encoded path and a flag indicating whether
// the path is defined.
func (p Path) Content() (string, bool) {
	if !p.defined {
		return "", false
	}
	return grammar.Escape(p.raw, shouldEscapePathChar), true
}

// IsAbsolute reports whether the path starts with "/".
func (p Path) IsAbsolute() bool {
	return p.defined && strings.HasPrefix(p.raw, "/")
}

// WithContent returns a new Path constructed from raw; the receiver is left
// untouched.
func (p Path) WithContent(raw string) (Path, error) {
	return errtrace.Wrap2(NewPath(raw))
}

// RenderTo writes the encoded path to w. The path carries no delimiter of
// its own.
func (p Path) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !p.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(grammar.Escape(p.raw, shouldEscapePathChar))
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded path.
func (p Path) Render(opts *RenderOptions) string {
	if !p.defined {
		return ""
	}
	return grammar.Escape(p.raw, shouldEscapePathChar)
}

// String returns the encoded path; an absent path returns "".
func (p Path) String() string { return p.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the path.
func (p Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		type hideMethods Path
		type Path hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Path(p))
		return
	}
}

// LogValue implements slog.LogValuer.
func (p Path) LogValue() slog.Value {
	return componentLogValue("path", p.Render(nil), p.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (p Path) Equal(val any) bool { return equalComponents(p, val) }

// IsZero reports whether the path is absent.
func (p Path) IsZero() bool { return !p.defined }

// IsValid checks whether the path is syntactically valid.
func (p Path) IsValid() bool {
	return p.defined && grammar.IsPath(grammar.Escape(p.raw, shouldEscapePathChar))
}
