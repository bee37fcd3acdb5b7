package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrNodeNotFound Error = "node not found"
	ErrUnexpectNode Error = "unexpected node"
)

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// Every rule routed through matches admits the empty string, so the empty
// input never reaches the operators.
func matches[T ~string | ~[]byte](s T, rule func([]byte, *abnf.Nodes) error) bool {
	if len(s) == 0 {
		return true
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsScheme checks on the scheme rule: a letter followed by letters, digits
// or "+", "-", ".".
func IsScheme[T ~string | ~[]byte](s T) bool {
	return len(s) > 0 && matches(s, Scheme)
}

// IsHost checks on the host rule. The empty host is valid per RFC 3986
// (reg-name matches zero characters).
func IsHost[T ~string | ~[]byte](s T) bool {
	return matches(s, HostRule)
}

// IsPort checks on the port rule: zero or more digits.
func IsPort[T ~string | ~[]byte](s T) bool {
	return matches(s, PortRule)
}

// IsUserinfo checks on the userinfo rule.
func IsUserinfo[T ~string | ~[]byte](s T) bool {
	return matches(s, Userinfo)
}

// IsUser checks on the user rule.
func IsUser[T ~string | ~[]byte](s T) bool {
	return matches(s, UserRule)
}

// IsPassword checks on the password rule.
func IsPassword[T ~string | ~[]byte](s T) bool {
	return matches(s, PasswordRule)
}

// IsPath checks s against the union of the RFC 3986 path forms.
func IsPath[T ~string | ~[]byte](s T) bool {
	return matches(s, PathRule)
}

// IsQuery checks on the query rule.
func IsQuery[T ~string | ~[]byte](s T) bool {
	return matches(s, QueryRule)
}

// IsFragment checks on the fragment rule.
func IsFragment[T ~string | ~[]byte](s T) bool {
	return matches(s, FragmentRule)
}
