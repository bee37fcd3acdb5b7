// Package uri models a Uniform Resource Identifier as a set of immutable,
// independently-validated component values according to RFC 3986.
//
// # Overview
//
// Every RFC 3986 component is its own value type: [Scheme], [User],
// [Password], [Host], [Port], [Path], [Query] and [Fragment]. The [UserInfo]
// part pairs a user and a password into one delimiter-aware view, and [URI]
// composes components into a complete identifier.
//
// A component is constructed from a raw string (already percent-escaped, or
// raw when it contains no reserved bytes) and validated against its own
// grammar; construction is all-or-nothing and fails with
// [ErrInvalidComponent]. The zero value of every component type means "absent
// from the URI", which is distinct from a component constructed from the
// empty string:
//
//	var f uri.Fragment        // absent: renders ""
//	f, _ = uri.NewFragment("") // empty: renders "#"
//
// # Normalization
//
// A defined component exposes three representations:
//
//   - Content: the normalized encoded form. Percent-triplet hex digits are
//     upper-cased, triplets that decode to a character the component allows
//     raw are collapsed to the literal character, and every byte outside the
//     component's allowed set is percent-encoded.
//   - Value (user, password and fragment): the fully decoded human-readable
//     form.
//   - Render: the delimiter-qualified form used when assembling a full URI
//     string ("scheme:", "#fragment", "user:pass@", ...).
//
//	f, _ := uri.NewFragment("%e2%82%ac")
//	f.Content() // "%E2%82%AC", true
//	f.Value()   // "€"
//	f.Render(nil) // "#%E2%82%AC"
//
// Constructors are permissive about delimiters: passing a string that
// already carries the component's own delimiter (for example "#top" to
// [NewFragment]) does not fail, the delimiter is simply encoded as part of
// the value. Strip delimiters before constructing.
//
// # Immutability and concurrency
//
// Components are immutable after construction; WithContent returns a new
// value and never mutates the receiver. All operations are pure, synchronous
// string transformations, so values are freely shareable across goroutines.
//
// # Comparison
//
// Each type implements Equal(any), which reports whether both values belong
// to the component family and render to the same delimited form. The
// package-level [Same] helper applies the same rule but reports
// [ErrTypeMismatch] when one of the arguments is not a component value.
package uri
