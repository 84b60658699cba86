package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rohmanhakim/linkscrub/pkg/urlutil"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

/*
Table is the read-only rule configuration.

Lookup
- Hosts and domains compare case-insensitively after IDNA mapping
- A suffix rule covers the domain itself and every subdomain, on a label boundary
- The most specific domain wins
- An exact rule outranks a suffix rule registered under the same name

A Table never changes after Build and is safe for concurrent reads.
*/
type Table struct {
	exact  map[string]DomainRule
	suffix map[string]DomainRule
	global []Action
}

var defaultTable = sync.OnceValue(func() *Table {
	table, err := NewTableBuilder().WithDefaults().Build()
	if err != nil {
		panic(fmt.Sprintf("rules: default table is invalid: %v", err))
	}
	return table
})

// Default returns the built-in rule table. It is built on first use and
// shared afterwards.
func Default() *Table {
	return defaultTable()
}

// RulesFor returns the domain-specific actions for host, or nil when no
// rule matches. Global actions are not included.
func (t *Table) RulesFor(host string) []Action {
	rule, ok := t.Match(host)
	if !ok {
		return nil
	}
	return rule.Actions()
}

// Match returns the most specific domain rule covering host.
func (t *Table) Match(host string) (DomainRule, bool) {
	host = normalizeHost(host)
	if host == "" {
		return DomainRule{}, false
	}
	if rule, ok := t.exact[host]; ok {
		return rule, true
	}
	candidate := host
	for {
		if rule, ok := t.suffix[candidate]; ok {
			return rule, true
		}
		dot := strings.IndexByte(candidate, '.')
		if dot == -1 {
			return DomainRule{}, false
		}
		candidate = candidate[dot+1:]
	}
}

// Global returns the actions applied to every URL.
func (t *Table) Global() []Action {
	actions := make([]Action, len(t.global))
	copy(actions, t.global)
	return actions
}

// DomainRules lists every domain rule ordered by domain, exact rules
// before suffix rules of the same name.
func (t *Table) DomainRules() []DomainRule {
	all := make([]DomainRule, 0, len(t.exact)+len(t.suffix))
	for _, rule := range t.exact {
		all = append(all, rule)
	}
	for _, rule := range t.suffix {
		all = append(all, rule)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].domain != all[j].domain {
			return all[i].domain < all[j].domain
		}
		return all[i].mode == MatchExact && all[j].mode != MatchExact
	})
	return all
}

// TableBuilder assembles a Table. Rules registered twice for the same
// domain and mode are merged, later actions appended.
type TableBuilder struct {
	domainRules []DomainRule
	global      []Action
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// WithDefaults adds the built-in domain and global rules.
func (b *TableBuilder) WithDefaults() *TableBuilder {
	b.domainRules = append(b.domainRules, defaultDomainRules...)
	b.global = append(b.global, defaultGlobalActions...)
	return b
}

func (b *TableBuilder) WithDomainRules(rules ...DomainRule) *TableBuilder {
	b.domainRules = append(b.domainRules, rules...)
	return b
}

func (b *TableBuilder) WithGlobalActions(actions ...Action) *TableBuilder {
	b.global = append(b.global, actions...)
	return b
}

func (b *TableBuilder) Build() (*Table, error) {
	table := &Table{
		exact:  make(map[string]DomainRule),
		suffix: make(map[string]DomainRule),
	}

	for _, action := range b.global {
		if !action.IsParamAction() {
			return nil, &RuleError{
				Message: action.String(),
				Cause:   ErrCauseGlobalPathAction,
			}
		}
		if err := validateAction(action); err != nil {
			return nil, err
		}
		table.global = append(table.global, action)
	}

	for _, rule := range b.domainRules {
		domain, err := validateDomain(rule.domain)
		if err != nil {
			return nil, err
		}
		if len(rule.actions) == 0 {
			return nil, &RuleError{
				Message: rule.domain,
				Cause:   ErrCauseNoActions,
			}
		}
		for _, action := range rule.actions {
			if err := validateAction(action); err != nil {
				return nil, err
			}
		}

		target := table.suffix
		if rule.mode == MatchExact {
			target = table.exact
		}
		merged := target[domain]
		merged.domain = domain
		merged.mode = rule.mode
		merged.actions = append(merged.Actions(), rule.actions...)
		target[domain] = merged
	}

	return table, nil
}

func validateAction(action Action) error {
	switch action.kind {
	case ActionDropAllQueryParams:
		return nil
	case ActionStripQueryParam, ActionStripQueryParamPrefix, ActionStripPathFromMarker:
		if action.arg == "" {
			return &RuleError{
				Message: action.kind.String(),
				Cause:   ErrCauseEmptyArgument,
			}
		}
		return nil
	default:
		return &RuleError{
			Message: action.kind.String(),
			Cause:   ErrCauseUnknownAction,
		}
	}
}

func validateDomain(raw string) (string, error) {
	domain := normalizeHost(raw)
	if domain == "" {
		return "", &RuleError{
			Message: fmt.Sprintf("%q", raw),
			Cause:   ErrCauseEmptyDomain,
		}
	}
	if strings.ContainsAny(domain, "/:?#@ \t") || strings.Contains(domain, "..") {
		return "", &RuleError{
			Message: raw,
			Cause:   ErrCauseInvalidDomain,
		}
	}
	if suffix, icann := publicsuffix.PublicSuffix(domain); icann && suffix == domain {
		return "", &RuleError{
			Message: raw,
			Cause:   ErrCausePublicSuffix,
		}
	}
	return domain, nil
}

// normalizeHost lowercases host, drops a trailing root dot and maps
// internationalized names to their ASCII form.
func normalizeHost(host string) string {
	host = strings.TrimSuffix(strings.TrimSpace(host), ".")
	if !isASCII(host) {
		if mapped, err := idna.Lookup.ToASCII(host); err == nil {
			return mapped
		}
	}
	return urlutil.LowerASCII(host)
}

// RegisteredDomain returns the eTLD+1 of host, or the normalized host when
// it has none (IP addresses, single labels).
func RegisteredDomain(host string) string {
	host = normalizeHost(host)
	registered, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registered
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
