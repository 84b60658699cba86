package rules

import (
	"fmt"
	"strings"

	"github.com/rohmanhakim/linkscrub/pkg/urlutil"
)

// ActionKind tags the closed set of cleaning actions.
type ActionKind int

const (
	ActionStripQueryParam ActionKind = iota
	ActionStripQueryParamPrefix
	ActionDropAllQueryParams
	ActionStripPathFromMarker
)

func (k ActionKind) String() string {
	switch k {
	case ActionStripQueryParam:
		return "strip_param"
	case ActionStripQueryParamPrefix:
		return "strip_param_prefix"
	case ActionDropAllQueryParams:
		return "drop_all_params"
	case ActionStripPathFromMarker:
		return "strip_path_from_marker"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, bool) {
	for _, kind := range []ActionKind{
		ActionStripQueryParam,
		ActionStripQueryParamPrefix,
		ActionDropAllQueryParams,
		ActionStripPathFromMarker,
	} {
		if kind.String() == s {
			return kind, true
		}
	}
	return 0, false
}

// Action is one cleaning step. Construct it with StripQueryParam,
// StripQueryParamPrefix, DropAllQueryParams or StripPathFromMarker.
type Action struct {
	kind ActionKind
	arg  string
}

// StripQueryParam removes every query parameter named name (any case).
func StripQueryParam(name string) Action {
	return Action{kind: ActionStripQueryParam, arg: name}
}

// StripQueryParamPrefix removes every query parameter whose name starts
// with prefix (any case).
func StripQueryParamPrefix(prefix string) Action {
	return Action{kind: ActionStripQueryParamPrefix, arg: prefix}
}

func DropAllQueryParams() Action {
	return Action{kind: ActionDropAllQueryParams}
}

// StripPathFromMarker cuts the path at the first occurrence of marker.
func StripPathFromMarker(marker string) Action {
	return Action{kind: ActionStripPathFromMarker, arg: marker}
}

func (a Action) Kind() ActionKind {
	return a.kind
}

// Arg returns the parameter name, prefix or marker. It is empty for
// DropAllQueryParams.
func (a Action) Arg() string {
	return a.arg
}

// IsParamAction reports whether the action works on the query.
func (a Action) IsParamAction() bool {
	return a.kind != ActionStripPathFromMarker
}

// MatchesParam reports whether a param action removes the given key.
func (a Action) MatchesParam(key string) bool {
	switch a.kind {
	case ActionStripQueryParam:
		return strings.EqualFold(key, a.arg)
	case ActionStripQueryParamPrefix:
		return len(key) >= len(a.arg) &&
			urlutil.LowerASCII(key[:len(a.arg)]) == urlutil.LowerASCII(a.arg)
	case ActionDropAllQueryParams:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	if a.kind == ActionDropAllQueryParams {
		return a.kind.String()
	}
	return fmt.Sprintf("%s(%s)", a.kind, a.arg)
}

// MatchMode decides whether a domain rule also covers subdomains.
type MatchMode int

const (
	MatchSuffix MatchMode = iota
	MatchExact
)

func (m MatchMode) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "suffix"
}

// DomainRule binds ordered actions to a domain.
type DomainRule struct {
	domain  string
	mode    MatchMode
	actions []Action
}

// NewDomainRule creates a rule matching domain and all of its subdomains.
func NewDomainRule(domain string, actions ...Action) DomainRule {
	return DomainRule{
		domain:  domain,
		mode:    MatchSuffix,
		actions: actions,
	}
}

// NewExactDomainRule creates a rule matching only the given host.
func NewExactDomainRule(host string, actions ...Action) DomainRule {
	return DomainRule{
		domain:  host,
		mode:    MatchExact,
		actions: actions,
	}
}

func (d DomainRule) Domain() string {
	return d.domain
}

func (d DomainRule) Mode() MatchMode {
	return d.mode
}

func (d DomainRule) Actions() []Action {
	actions := make([]Action, len(d.actions))
	copy(actions, d.actions)
	return actions
}
