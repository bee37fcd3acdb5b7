package grammar

import (
	"github.com/ghettovoice/abnf"
)

// RFC 3986 rules assembled from abnf operators. The userinfo rule follows
// the user [":" password] split rather than the flat RFC 3986 production,
// so that the user and password components can be recovered from the parse
// tree. The IP-literal rule is a syntactic superset; exact IP validity is
// decided by net.ParseIP at the component layer.

var (
	alpha = abnf.AltFirst("ALPHA",
		abnf.Range("%x41-5A", []byte{'A'}, []byte{'Z'}),
		abnf.Range("%x61-7A", []byte{'a'}, []byte{'z'}),
	)
	digit  = abnf.Range("DIGIT", []byte{'0'}, []byte{'9'})
	hexdig = abnf.AltFirst("HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte{'A'}, []byte{'F'}),
		abnf.Range("%x61-66", []byte{'a'}, []byte{'f'}),
	)

	pctEncoded = abnf.Concat(`pct-encoded`,
		abnf.LiteralCS(`"%"`, []byte{'%'}),
		hexdig,
		hexdig,
	)

	unreserved = abnf.AltFirst(`unreserved`,
		alpha,
		digit,
		abnf.LiteralCS(`"-"`, []byte{'-'}),
		abnf.LiteralCS(`"."`, []byte{'.'}),
		abnf.LiteralCS(`"_"`, []byte{'_'}),
		abnf.LiteralCS(`"~"`, []byte{'~'}),
	)

	subDelims = abnf.AltFirst(`sub-delims`,
		abnf.LiteralCS(`"!"`, []byte{'!'}),
		abnf.LiteralCS(`"$"`, []byte{'$'}),
		abnf.LiteralCS(`"&"`, []byte{'&'}),
		abnf.LiteralCS(`"'"`, []byte{'\''}),
		abnf.LiteralCS(`"("`, []byte{'('}),
		abnf.LiteralCS(`")"`, []byte{')'}),
		abnf.LiteralCS(`"*"`, []byte{'*'}),
		abnf.LiteralCS(`"+"`, []byte{'+'}),
		abnf.LiteralCS(`","`, []byte{','}),
		abnf.LiteralCS(`";"`, []byte{';'}),
		abnf.LiteralCS(`"="`, []byte{'='}),
	)

	pchar = abnf.AltFirst(`pchar`,
		unreserved,
		pctEncoded,
		subDelims,
		abnf.LiteralCS(`":"`, []byte{':'}),
		abnf.LiteralCS(`"@"`, []byte{'@'}),
	)

	scheme = abnf.Concat(`scheme`,
		alpha,
		abnf.Repeat0Inf(`*( ALPHA / DIGIT / "+" / "-" / "." )`, abnf.AltFirst(`ALPHA / DIGIT / "+" / "-" / "."`,
			alpha,
			digit,
			abnf.LiteralCS(`"+"`, []byte{'+'}),
			abnf.LiteralCS(`"-"`, []byte{'-'}),
			abnf.LiteralCS(`"."`, []byte{'.'}),
		)),
	)

	user = abnf.Repeat0Inf(`user`, abnf.AltFirst(`unreserved / pct-encoded / sub-delims`,
		unreserved,
		pctEncoded,
		subDelims,
	))

	password = abnf.Repeat0Inf(`password`, abnf.AltFirst(`unreserved / pct-encoded / sub-delims / ":"`,
		unreserved,
		pctEncoded,
		subDelims,
		abnf.LiteralCS(`":"`, []byte{':'}),
	))

	userinfo = abnf.Concat(`userinfo`,
		user,
		abnf.Optional(`[ ":" password ]`, abnf.Concat(`":" password`,
			abnf.LiteralCS(`":"`, []byte{':'}),
			password,
		)),
	)

	regName = abnf.Repeat0Inf(`reg-name`, abnf.AltFirst(`unreserved / pct-encoded / sub-delims`,
		unreserved,
		pctEncoded,
		subDelims,
	))

	ipLiteral = abnf.Concat(`IP-literal`,
		abnf.LiteralCS(`"["`, []byte{'['}),
		abnf.Repeat1Inf(`1*( HEXDIG / ":" / "." )`, abnf.AltFirst(`HEXDIG / ":" / "."`,
			hexdig,
			abnf.LiteralCS(`":"`, []byte{':'}),
			abnf.LiteralCS(`"."`, []byte{'.'}),
		)),
		abnf.LiteralCS(`"]"`, []byte{']'}),
	)

	host = abnf.AltFirst(`host`, ipLiteral, regName)

	port = abnf.Repeat0Inf(`port`, digit)

	authority = abnf.Concat(`authority`,
		abnf.Optional(`[ userinfo "@" ]`, abnf.Concat(`userinfo "@"`,
			userinfo,
			abnf.LiteralCS(`"@"`, []byte{'@'}),
		)),
		host,
		abnf.Optional(`[ ":" port ]`, abnf.Concat(`":" port`,
			abnf.LiteralCS(`":"`, []byte{':'}),
			port,
		)),
	)

	segment   = abnf.Repeat0Inf(`segment`, pchar)
	segmentNz = abnf.Repeat1Inf(`segment-nz`, pchar)

	pathAbempty = abnf.Repeat0Inf(`path-abempty`, abnf.Concat(`"/" segment`,
		abnf.LiteralCS(`"/"`, []byte{'/'}),
		segment,
	))

	pathAbsolute = abnf.Concat(`path-absolute`,
		abnf.LiteralCS(`"/"`, []byte{'/'}),
		abnf.Optional(`[ segment-nz *( "/" segment ) ]`, abnf.Concat(`segment-nz *( "/" segment )`,
			segmentNz,
			pathAbempty,
		)),
	)

	pathRootless = abnf.Concat(`path-rootless`, segmentNz, pathAbempty)

	hierPart = abnf.Optional(`hier-part`, abnf.AltFirst(`"//" authority path-abempty / path-absolute / path-rootless`,
		abnf.Concat(`"//" authority path-abempty`,
			abnf.LiteralCS(`"//"`, []byte("//")),
			authority,
			pathAbempty,
		),
		pathAbsolute,
		pathRootless,
	))

	query = abnf.Repeat0Inf(`query`, abnf.AltFirst(`pchar / "/" / "?"`,
		pchar,
		abnf.LiteralCS(`"/"`, []byte{'/'}),
		abnf.LiteralCS(`"?"`, []byte{'?'}),
	))

	fragment = abnf.Repeat0Inf(`fragment`, abnf.AltFirst(`pchar / "/" / "?"`,
		pchar,
		abnf.LiteralCS(`"/"`, []byte{'/'}),
		abnf.LiteralCS(`"?"`, []byte{'?'}),
	))

	pathAny = abnf.Repeat0Inf(`path`, abnf.AltFirst(`pchar / "/"`,
		pchar,
		abnf.LiteralCS(`"/"`, []byte{'/'}),
	))

	uriRule = abnf.Concat(`URI`,
		scheme,
		abnf.LiteralCS(`":"`, []byte{':'}),
		hierPart,
		abnf.Optional(`[ "?" query ]`, abnf.Concat(`"?" query`,
			abnf.LiteralCS(`"?"`, []byte{'?'}),
			query,
		)),
		abnf.Optional(`[ "#" fragment ]`, abnf.Concat(`"#" fragment`,
			abnf.LiteralCS(`"#"`, []byte{'#'}),
			fragment,
		)),
	)
)

// URI matches the URI rule.
func URI(s []byte, ns *abnf.Nodes) error { return uriRule(s, 0, ns) }

// Authority matches the authority rule.
func Authority(s []byte, ns *abnf.Nodes) error { return authority(s, 0, ns) }

// Scheme matches the scheme rule.
func Scheme(s []byte, ns *abnf.Nodes) error { return scheme(s, 0, ns) }

// Userinfo matches the userinfo rule.
func Userinfo(s []byte, ns *abnf.Nodes) error { return userinfo(s, 0, ns) }

// HostRule matches the host rule.
func HostRule(s []byte, ns *abnf.Nodes) error { return host(s, 0, ns) }

// PortRule matches the port rule.
func PortRule(s []byte, ns *abnf.Nodes) error { return port(s, 0, ns) }

// UserRule matches the user rule.
func UserRule(s []byte, ns *abnf.Nodes) error { return user(s, 0, ns) }

// PasswordRule matches the password rule.
func PasswordRule(s []byte, ns *abnf.Nodes) error { return password(s, 0, ns) }

// PathRule matches any of the RFC 3986 path forms.
func PathRule(s []byte, ns *abnf.Nodes) error { return pathAny(s, 0, ns) }

// QueryRule matches the query rule.
func QueryRule(s []byte, ns *abnf.Nodes) error { return query(s, 0, ns) }

// FragmentRule matches the fragment rule.
func FragmentRule(s []byte, ns *abnf.Nodes) error { return fragment(s, 0, ns) }
