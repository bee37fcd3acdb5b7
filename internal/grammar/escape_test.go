package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		cb   func(byte) bool
		want string
	}{
		{"empty", "", nil, ""},
		{"no escape", "abc-%2Bqwe!", nil, "abc-%2Bqwe!"},
		{"escape all", "abc++qwe!", nil, "abc%2B%2Bqwe!"},
		{"escape some", "abc+?qwe!", func(c byte) bool { return c != '+' && !grammar.IsCharUnreserved(c) }, "abc+%3Fqwe!"},
		{"hex upper-cased", "%e2%82%ac", nil, "%E2%82%AC"},
		{"over-encoding collapsed", "%61bc%7E", nil, "abc~"},
		{"bare percent", "100%", nil, "100%25"},
		{"truncated triplet", "abc%2", nil, "abc%252"},
		{"space in path", "/toto le heros/file.xml", func(c byte) bool { return !grammar.IsPathChar(c) }, "/toto%20le%20heros/file.xml"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.Escape(c.str, c.cb)
			if got != c.want {
				t.Errorf("grammar.Escape(%q) = %q, want %q", c.str, got, c.want)
			}
			if got2 := grammar.Escape(got, c.cb); got2 != got {
				t.Errorf("grammar.Escape(%q) = %q, not idempotent", got, got2)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no unescape", "abc%ax%", "abc%ax%"},
		{"unescape all", "abc%E4%b8%96", "abc世"},
		{"escaped percent", "100%25", "100%"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func BenchmarkEscape(b *testing.B) {
	for b.Loop() {
		if got, want := grammar.Escape("abc++qwe!", nil), "abc%2B%2Bqwe!"; got != want {
			b.Errorf("grammar.Escape = %q, want %q", got, want)
		}
	}
}

func BenchmarkUnescape(b *testing.B) {
	for b.Loop() {
		if got, want := grammar.Unescape("abc%2B%2Bqwe!"), "abc++qwe!"; got != want {
			b.Errorf("grammar.Unescape = %q, want %q", got, want)
		}
	}
}
