package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

func shouldEscapeUserChar(c byte) bool { return !grammar.IsUserChar(c) }

func shouldEscapePasswordChar(c byte) bool { return !grammar.IsPasswordChar(c) }

// User is the user component of the userinfo part.
// The zero value means the user is absent.
type User struct {
	raw     string
	defined bool
}

// NewUser returns a User constructed from raw. raw may be already
// percent-escaped or fully decoded; mixing both styles is fine.
func NewUser(raw string) (User, error) {
	if !grammar.IsUser(grammar.Escape(raw, shouldEscapeUserChar)) {
		return User{}, errtrace.Wrap(newInvalidComponentErr("user %q", raw))
	}
	return User{raw: raw, defined: true}, nil
}

// Content returns the normalized encoded user and a flag indicating whether
// the user is defined.
func (u User) Content() (string, bool) {
	if !u.defined {
		return "", false
	}
	return grammar.Escape(u.raw, shouldEscapeUserChar), true
}

// Value returns the fully decoded user value.
func (u User) Value() string { return grammar.Unescape(u.raw) }

// WithContent returns a new User constructed from raw; the receiver is left
// untouched.
func (u User) WithContent(raw string) (User, error) {
	return errtrace.Wrap2(NewUser(raw))
}

// RenderTo writes the encoded user to w. The "@" delimiter belongs to the
// userinfo part, see [UserInfo].
func (u User) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !u.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(grammar.Escape(u.raw, shouldEscapeUserChar))
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded user.
func (u User) Render(opts *RenderOptions) string {
	if !u.defined {
		return ""
	}
	return grammar.Escape(u.raw, shouldEscapeUserChar)
}

// String returns the encoded user; an absent user returns "".
func (u User) String() string { return u.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the user.
func (u User) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods User
		type User hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), User(u))
		return
	}
}

// LogValue implements slog.LogValuer.
func (u User) LogValue() slog.Value {
	return componentLogValue("user", u.Render(nil), u.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (u User) Equal(val any) bool { return equalComponents(u, val) }

// IsZero reports whether the user is absent.
func (u User) IsZero() bool { return !u.defined }

// IsValid checks whether the user is syntactically valid.
func (u User) IsValid() bool {
	return u.defined && grammar.IsUser(grammar.Escape(u.raw, shouldEscapeUserChar))
}

// Password is the password component of the userinfo part.
// The zero value means the password is absent.
type Password struct {
	raw     string
	defined bool
}

// NewPassword returns a Password constructed from raw. Unlike the user set,
// the password set admits ':' raw.
func NewPassword(raw string) (Password, error) {
	if !grammar.IsPassword(grammar.Escape(raw, shouldEscapePasswordChar)) {
		return Password{}, errtrace.Wrap(newInvalidComponentErr("password %q", raw))
	}
	return Password{raw: raw, defined: true}, nil
}

// Content returns the normalized encoded password and a flag indicating
// whether the password is defined.
func (p Password) Content() (string, bool) {
	if !p.defined {
		return "", false
	}
	return grammar.Escape(p.raw, shouldEscapePasswordChar), true
}

// Value returns the fully decoded password value.
func (p Password) Value() string { return grammar.Unescape(p.raw) }

// WithContent returns a new Password constructed from raw; the receiver is
// left untouched.
func (p Password) WithContent(raw string) (Password, error) {
	return errtrace.Wrap2(NewPassword(raw))
}

// RenderTo writes the encoded password to w. The ":" delimiter belongs to
// the userinfo part, see [UserInfo].
func (p Password) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if !p.defined {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(grammar.Escape(p.raw, shouldEscapePasswordChar))
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded password.
func (p Password) Render(opts *RenderOptions) string {
	if !p.defined {
		return ""
	}
	return grammar.Escape(p.raw, shouldEscapePasswordChar)
}

// String returns the encoded password; an absent password returns "".
func (p Password) String() string { return p.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the password.
func (p Password) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		type hideMethods Password
		type Password hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Password(p))
		return
	}
}

// LogValue implements slog.LogValuer.
func (p Password) LogValue() slog.Value {
	return componentLogValue("password", p.Render(nil), p.defined)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (p Password) Equal(val any) bool { return equalComponents(p, val) }

// IsZero reports whether the password is absent.
func (p Password) IsZero() bool { return !p.defined }

// IsValid checks whether the password is syntactically valid.
func (p Password) IsValid() bool {
	return p.defined && grammar.IsPassword(grammar.Escape(p.raw, shouldEscapePasswordChar))
}

// UserInfo is a read-only pairing of a [User] and a [Password] into one
// delimiter-aware view. It owns no validation of its own; modify the
// constituents through their own WithContent methods and build a new view.
type UserInfo struct {
	user   User
	passwd Password
}

// NewUserInfo returns a UserInfo pairing user and passwd.
func NewUserInfo(user User, passwd Password) UserInfo {
	return UserInfo{user: user, passwd: passwd}
}

// User returns the user constituent.
func (ui UserInfo) User() User { return ui.user }

// Password returns the password constituent.
func (ui UserInfo) Password() Password { return ui.passwd }

// Value always fails with [ErrUnsupportedOperation]: the composite has no
// single decoded value, read the constituents instead.
func (ui UserInfo) Value() (string, error) {
	return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedOperation, "userinfo has no value"))
}

// WithContent always fails with [ErrUnsupportedOperation]: the composite is
// modified through its user and password parts.
func (ui UserInfo) WithContent(string) (UserInfo, error) {
	return UserInfo{}, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedOperation, "userinfo is modified through its parts"))
}

// RenderTo writes the delimited form "user[:password]@" to w; an absent
// user writes nothing.
func (ui UserInfo) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if ui.user.IsZero() {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(func(w io.Writer) (int, error) { return ui.user.RenderTo(w, opts) })
	if !ui.passwd.IsZero() {
		cw.Fprint(":")
		cw.Call(func(w io.Writer) (int, error) { return ui.passwd.RenderTo(w, opts) })
	}
	cw.Fprint("@")
	return errtrace.Wrap2(cw.Result())
}

// Render returns the delimited form of the userinfo part.
func (ui UserInfo) Render(opts *RenderOptions) string {
	if ui.user.IsZero() {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ui.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the delimited form without the trailing "@".
func (ui UserInfo) String() string {
	s := ui.Render(nil)
	if len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s
}

// Format implements fmt.Formatter for custom formatting of the userinfo.
func (ui UserInfo) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ui.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(ui.String()))
		return
	default:
		type hideMethods UserInfo
		type UserInfo hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), UserInfo(ui))
		return
	}
}

// LogValue implements slog.LogValuer.
func (ui UserInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", "userinfo"),
		slog.Any("user", ui.user),
		slog.Any("password", ui.passwd),
	)
}

// Equal reports whether val is a component value with the same delimited
// form.
func (ui UserInfo) Equal(val any) bool { return equalComponents(ui, val) }

// IsZero reports whether both constituents are absent.
func (ui UserInfo) IsZero() bool { return ui.user.IsZero() && ui.passwd.IsZero() }

// IsValid checks whether the pairing is coherent: a password without a user
// cannot be rendered.
func (ui UserInfo) IsValid() bool {
	if ui.user.IsZero() {
		return ui.passwd.IsZero()
	}
	return ui.user.IsValid() && (ui.passwd.IsZero() || ui.passwd.IsValid())
}
