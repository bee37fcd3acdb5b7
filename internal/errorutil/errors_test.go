package errorutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const sentinel errorutil.Error = "boom"

	cases := []struct {
		name string
		args []any
		want string
	}{
		{"bare sentinel", nil, "boom"},
		{"message", []any{"ctx"}, "boom: ctx"},
		{"formatted message", []any{"ctx %d", 7}, "boom: ctx 7"},
		{"wrapped error", []any{errors.New("inner")}, "boom: inner"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(sentinel, c.args...)
			if !errors.Is(err, sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", err)
			}
			if got := err.Error(); got != c.want {
				t.Errorf("Error = %q, want %q", got, c.want)
			}
		})
	}

	t.Run("already wrapped", func(t *testing.T) {
		t.Parallel()

		inner := errorutil.NewWrapperError(sentinel, "ctx")
		if got := errorutil.NewWrapperError(sentinel, inner); got != inner { //nolint:errorlint
			t.Errorf("re-wrap returned %v, want the original", got)
		}
	})
}

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	if !errorutil.IsGrammarErr(grammar.ErrMalformedInput) {
		t.Error("IsGrammarErr = false for a grammar error")
	}
	if !errorutil.IsGrammarErr(errorutil.NewWrapperError(grammar.ErrMalformedInput, "ctx")) {
		t.Error("IsGrammarErr = false for a wrapped grammar error")
	}
	if errorutil.IsGrammarErr(errors.New("plain")) {
		t.Error("IsGrammarErr = true for a plain error")
	}
	if errorutil.IsGrammarErr(nil) {
		t.Error("IsGrammarErr = true for nil")
	}
}
