package grammar

// Character classes from RFC 3986 section 2 and the per-component
// sets derived from them. Each component constructor escapes its raw
// value against exactly one of these predicates.

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return IsAlphaChar(c) || IsDigitChar(c)
}

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsCharUnreserved checks the unreserved rule.
func IsCharUnreserved(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}

var subDelimChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsSubDelimChar checks the sub-delims rule.
func IsSubDelimChar(c byte) bool {
	return subDelimChars[c]
}

// IsPChar checks the pchar rule, percent-triplets aside.
func IsPChar(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c) || c == ':' || c == '@'
}

// IsSchemeChar checks the character part of the scheme rule;
// the first-byte-is-a-letter restriction is handled by the scheme grammar.
func IsSchemeChar(c byte) bool {
	return IsAlphanumChar(c) || c == '+' || c == '-' || c == '.'
}

// IsUserChar checks the user set: unreserved and sub-delims.
func IsUserChar(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsPasswordChar checks the password set: the user set plus ':'.
func IsPasswordChar(c byte) bool {
	return IsUserChar(c) || c == ':'
}

// IsHostChar checks the reg-name set: unreserved and sub-delims.
func IsHostChar(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsPathChar checks the path set: pchar plus the segment separator.
func IsPathChar(c byte) bool {
	return IsPChar(c) || c == '/'
}

// IsQueryChar checks the query set: pchar plus '/' and '?'.
func IsQueryChar(c byte) bool {
	return IsPChar(c) || c == '/' || c == '?'
}

// IsFragmentChar checks the fragment set: pchar plus '/' and '?'.
func IsFragmentChar(c byte) bool {
	return IsPChar(c) || c == '/' || c == '?'
}
