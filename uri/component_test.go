package uri_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghettovoice/gouri/uri"
)

func TestScheme(t *testing.T) {
	t.Parallel()

	t.Run("lower-cased", func(t *testing.T) {
		t.Parallel()

		sc, err := uri.NewScheme("HTTP")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got, ok := sc.Content(); !ok || got != "http" {
			t.Errorf("Content = %q, %t, want %q, true", got, ok, "http")
		}
		if got := sc.Render(nil); got != "http:" {
			t.Errorf("Render = %q, want %q", got, "http:")
		}
		if got := sc.String(); got != "http" {
			t.Errorf("String = %q, want %q", got, "http")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "1http", "ht tp", "http%3A"} {
			if _, err := uri.NewScheme(raw); !errors.Is(err, uri.ErrInvalidComponent) {
				t.Errorf("NewScheme(%q) error = %v, want %v", raw, err, uri.ErrInvalidComponent)
			}
		}
	})

	t.Run("with content", func(t *testing.T) {
		t.Parallel()

		s1, err := uri.NewScheme("http")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		s2, err := s1.WithContent("https")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got := s1.String(); got != "http" {
			t.Errorf("receiver changed to %q", got)
		}
		if got := s2.String(); got != "https" {
			t.Errorf("String = %q, want %q", got, "https")
		}
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		var sc uri.Scheme
		if !sc.IsZero() || sc.IsValid() {
			t.Errorf("IsZero = %t, IsValid = %t, want true, false", sc.IsZero(), sc.IsValid())
		}
		if got := sc.Render(nil); got != "" {
			t.Errorf("Render = %q, want empty", got)
		}
	})

	t.Run("is", func(t *testing.T) {
		t.Parallel()

		sc, err := uri.NewScheme("http")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !sc.Is("HTTP") {
			t.Error(`Is("HTTP") = false, want true`)
		}
		if sc.Is("https") {
			t.Error(`Is("https") = true, want false`)
		}

		var zero uri.Scheme
		if zero.Is("") {
			t.Error(`absent scheme Is("") = true, want false`)
		}
	})
}

func TestUser(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		raw         string
		wantContent string
		wantValue   string
	}{
		{"plain", "john", "john", "john"},
		{"with space", "j hn", "j%20hn", "j hn"},
		{"pre-escaped", "j%20hn", "j%20hn", "j hn"},
		{"lower hex normalized", "j%2fhn", "j%2Fhn", "j/hn"},
		{"empty", "", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.NewUser(c.raw)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got, ok := u.Content(); !ok || got != c.wantContent {
				t.Errorf("Content = %q, %t, want %q, true", got, ok, c.wantContent)
			}
			if got := u.Value(); got != c.wantValue {
				t.Errorf("Value = %q, want %q", got, c.wantValue)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	p, err := uri.NewPassword("doe")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, ok := p.Content(); !ok || got != "doe" {
		t.Errorf("Content = %q, %t, want %q, true", got, ok, "doe")
	}
	if got := p.Value(); got != "doe" {
		t.Errorf("Value = %q, want %q", got, "doe")
	}

	// the password set admits ':' raw
	p, err = uri.NewPassword("d:oe")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, _ := p.Content(); got != "d:oe" {
		t.Errorf("Content = %q, want %q", got, "d:oe")
	}
}

func TestUserInfo(t *testing.T) {
	t.Parallel()

	mustUser := func(raw string) uri.User {
		t.Helper()
		u, err := uri.NewUser(raw)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		return u
	}
	mustPasswd := func(raw string) uri.Password {
		t.Helper()
		p, err := uri.NewPassword(raw)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		return p
	}

	cases := []struct {
		name       string
		ui         uri.UserInfo
		wantRender string
		wantString string
	}{
		{"user and password", uri.NewUserInfo(mustUser("john"), mustPasswd("doe")), "john:doe@", "john:doe"},
		{"user only", uri.NewUserInfo(mustUser("john"), uri.Password{}), "john@", "john"},
		{"empty user", uri.NewUserInfo(mustUser(""), mustPasswd("doe")), ":doe@", ":doe"},
		{"zero", uri.UserInfo{}, "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ui.Render(nil); got != c.wantRender {
				t.Errorf("Render = %q, want %q", got, c.wantRender)
			}
			if got := c.ui.String(); got != c.wantString {
				t.Errorf("String = %q, want %q", got, c.wantString)
			}
		})
	}

	t.Run("unsupported operations", func(t *testing.T) {
		t.Parallel()

		ui := uri.NewUserInfo(mustUser("john"), mustPasswd("doe"))
		if _, err := ui.Value(); !errors.Is(err, uri.ErrUnsupportedOperation) {
			t.Errorf("Value error = %v, want %v", err, uri.ErrUnsupportedOperation)
		}
		if _, err := ui.WithContent("jane:doe"); !errors.Is(err, uri.ErrUnsupportedOperation) {
			t.Errorf("WithContent error = %v, want %v", err, uri.ErrUnsupportedOperation)
		}
	})

	t.Run("password without user invalid", func(t *testing.T) {
		t.Parallel()

		ui := uri.NewUserInfo(uri.User{}, mustPasswd("doe"))
		if ui.IsValid() {
			t.Error("IsValid = true, want false")
		}
		if got := ui.Render(nil); got != "" {
			t.Errorf("Render = %q, want empty", got)
		}
	})
}

func TestHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"reg-name lower-cased", "WWW.Example.COM", "www.example.com", false},
		{"reg-name escaped", "toto le heros", "toto%20le%20heros", false},
		{"empty", "", "", false},
		{"ipv4", "127.0.0.1", "127.0.0.1", false},
		{"ipv6 literal", "[2001:DB8::1]", "[2001:db8::1]", false},
		{"ipv4-mapped literal", "[::ffff:127.0.0.1]", "127.0.0.1", false},
		{"ipv6 unclosed", "[2001:db8::1", "", true},
		{"not an address literal", "[example.com]", "", true},
		{"ipv4 in brackets", "[127.0.0.1]", "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h, err := uri.NewHost(c.raw)
			if c.wantErr {
				if !errors.Is(err, uri.ErrInvalidComponent) {
					t.Fatalf("NewHost(%q) error = %v, want %v", c.raw, err, uri.ErrInvalidComponent)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got, ok := h.Content(); !ok || got != c.want {
				t.Errorf("Content = %q, %t, want %q, true", got, ok, c.want)
			}
		})
	}

	t.Run("ip accessor", func(t *testing.T) {
		t.Parallel()

		h, err := uri.NewHost("127.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if h.IP() == nil {
			t.Error("IP = nil, want address")
		}

		h, err = uri.NewHost("example.com")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if h.IP() != nil {
			t.Errorf("IP = %s, want nil", h.IP())
		}
	})
}

func TestPort(t *testing.T) {
	t.Parallel()

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		p, err := uri.ParsePort("8042")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got, ok := p.Content(); !ok || got != 8042 {
			t.Errorf("Content = %d, %t, want 8042, true", got, ok)
		}
		if got := p.Render(nil); got != ":8042" {
			t.Errorf("Render = %q, want %q", got, ":8042")
		}
		if got := p.String(); got != "8042" {
			t.Errorf("String = %q, want %q", got, "8042")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "8042a", "-1", "70000"} {
			if _, err := uri.ParsePort(raw); !errors.Is(err, uri.ErrInvalidComponent) {
				t.Errorf("ParsePort(%q) error = %v, want %v", raw, err, uri.ErrInvalidComponent)
			}
		}
	})

	t.Run("from number", func(t *testing.T) {
		t.Parallel()

		p := uri.NewPort(0)
		if p.IsZero() || !p.IsValid() {
			t.Errorf("IsZero = %t, IsValid = %t, want false, true", p.IsZero(), p.IsValid())
		}
		if got := p.Render(nil); got != ":0" {
			t.Errorf("Render = %q, want %q", got, ":0")
		}
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	p, err := uri.NewPath("/toto le heros/file.xml")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, ok := p.Content(); !ok || got != "/toto%20le%20heros/file.xml" {
		t.Errorf("Content = %q, %t, want %q, true", got, ok, "/toto%20le%20heros/file.xml")
	}
	if !p.IsAbsolute() {
		t.Error("IsAbsolute = false, want true")
	}

	p, err = uri.NewPath("over/there")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if p.IsAbsolute() {
		t.Error("IsAbsolute = true, want false")
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()

	q, err := uri.NewQuery("name=ferret")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := q.Render(nil); got != "?name=ferret" {
		t.Errorf("Render = %q, want %q", got, "?name=ferret")
	}

	// a defined empty query keeps its marker
	q, err = uri.NewQuery("")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := q.Render(nil); got != "?" {
		t.Errorf("Render = %q, want %q", got, "?")
	}
	if q.IsZero() {
		t.Error("IsZero = true, want false")
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		raw         string
		wantContent string
		wantValue   string
		wantRender  string
	}{
		{"plain", "nose", "nose", "nose", "#nose"},
		{"raw euro sign", "€", "%E2%82%AC", "€", "#%E2%82%AC"},
		{"escaped euro sign", "%E2%82%AC", "%E2%82%AC", "€", "#%E2%82%AC"},
		{"lower hex normalized", "%e2%82%ac", "%E2%82%AC", "€", "#%E2%82%AC"},
		{"empty", "", "", "", "#"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			fr, err := uri.NewFragment(c.raw)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got, ok := fr.Content(); !ok || got != c.wantContent {
				t.Errorf("Content = %q, %t, want %q, true", got, ok, c.wantContent)
			}
			if got := fr.Value(); got != c.wantValue {
				t.Errorf("Value = %q, want %q", got, c.wantValue)
			}
			if got := fr.Render(nil); got != c.wantRender {
				t.Errorf("Render = %q, want %q", got, c.wantRender)
			}
		})
	}

	t.Run("absent differs from empty", func(t *testing.T) {
		t.Parallel()

		var absent uri.Fragment
		empty, err := uri.NewFragment("")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if absent.Equal(empty) {
			t.Error("absent fragment equals defined empty fragment")
		}
		if got, ok := absent.Content(); ok || got != "" {
			t.Errorf("Content = %q, %t, want empty, false", got, ok)
		}
	})
}

func TestEqualAndSame(t *testing.T) {
	t.Parallel()

	u1, err := uri.NewUser("john")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	u2, err := uri.NewUser("john")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fr, err := uri.NewFragment("john")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !u1.Equal(u2) {
		t.Error("equal users reported unequal")
	}
	if !u1.Equal(&u2) {
		t.Error("equal users reported unequal through pointer")
	}
	if u1.Equal(fr) {
		t.Error("user equals fragment with same text")
	}
	if u1.Equal("john") {
		t.Error("user equals plain string")
	}

	if same, err := uri.Same(u1, u2); err != nil || !same {
		t.Errorf("Same = %t, %v, want true, nil", same, err)
	}
	if same, err := uri.Same(u1, fr); err != nil || same {
		t.Errorf("Same = %t, %v, want false, nil", same, err)
	}
	if _, err := uri.Same(u1, 42); !errors.Is(err, uri.ErrTypeMismatch) {
		t.Errorf("Same error = %v, want %v", err, uri.ErrTypeMismatch)
	}
	if _, err := uri.Same("john", u1); !errors.Is(err, uri.ErrTypeMismatch) {
		t.Errorf("Same error = %v, want %v", err, uri.ErrTypeMismatch)
	}
}

func TestComponentFormat(t *testing.T) {
	t.Parallel()

	sc, err := uri.NewScheme("http")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := fmt.Sprintf("%s", sc); got != "http" {
		t.Errorf("%%s = %q, want %q", got, "http")
	}
	if got := fmt.Sprintf("%q", sc); got != `"http"` {
		t.Errorf("%%q = %q, want %q", got, `"http"`)
	}

	fr, err := uri.NewFragment("nose")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := fmt.Sprintf("%s", fr); got != "nose" {
		t.Errorf("%%s = %q, want %q", got, "nose")
	}
}
