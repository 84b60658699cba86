package engine

import (
	"strings"

	"github.com/rohmanhakim/linkscrub/internal/rules"
	"github.com/rohmanhakim/linkscrub/pkg/urlutil"
)

/*
Cleaning Order
- Domain path markers cut the path
- Domain param actions filter the query
- Global param actions filter what is left
- Surviving pairs keep their relative order
- An empty query drops the '?'

Scheme, authority, fragment and the untouched part of the path pass
through byte-for-byte.

Properties:
  - Pure: same input, same output, no hidden state
  - Idempotent: a cleaned URL has nothing left to strip
*/
type Engine struct {
	table *rules.Table
}

// New returns an Engine applying table. A nil table means rules.Default().
func New(table *rules.Table) Engine {
	if table == nil {
		table = rules.Default()
	}
	return Engine{table: table}
}

func (e Engine) Table() *rules.Table {
	return e.table
}

func (e Engine) Clean(parsed urlutil.ParsedURL) Result {
	result := Result{url: parsed}

	var domainActions []rules.Action
	if rule, ok := e.table.Match(parsed.Hostname()); ok {
		domainActions = rule.Actions()
		result.domain = rule.Domain()
	}

	path := parsed.Path()
	for _, action := range domainActions {
		if action.Kind() != rules.ActionStripPathFromMarker {
			continue
		}
		if cut, ok := cutAtMarker(path, action.Arg()); ok {
			path = cut
			result.pathTrimmed = true
		}
	}
	if result.pathTrimmed {
		result.url = result.url.WithPath(path)
	}

	query := parsed.Query()
	kept, removed := filterQuery(query, domainActions)
	kept, removedGlobal := filterQuery(kept, e.table.Global())
	removed = append(removed, removedGlobal...)
	if len(removed) == 0 && !result.pathTrimmed {
		return result
	}

	result.url = result.url.WithQuery(dropEmptyBare(kept))
	result.removed = inSourceOrder(query, removed)
	return result
}

// dropEmptyBare removes the empty pairs left by stray '&' separators.
func dropEmptyBare(query []urlutil.QueryParam) []urlutil.QueryParam {
	kept := query[:0]
	for _, param := range query {
		if isEmptyBare(param) {
			continue
		}
		kept = append(kept, param)
	}
	return kept
}

// cutAtMarker removes the first occurrence of marker and everything
// after it.
func cutAtMarker(path, marker string) (string, bool) {
	idx := strings.Index(path, marker)
	if idx == -1 {
		return path, false
	}
	return path[:idx], true
}

func isEmptyBare(param urlutil.QueryParam) bool {
	return param.Bare() && param.Key() == ""
}

func filterQuery(query []urlutil.QueryParam, actions []rules.Action) (kept, removed []urlutil.QueryParam) {
	kept = make([]urlutil.QueryParam, 0, len(query))
	for _, param := range query {
		if !isEmptyBare(param) && matchesAny(param.Key(), actions) {
			removed = append(removed, param)
			continue
		}
		kept = append(kept, param)
	}
	return kept, removed
}

func matchesAny(key string, actions []rules.Action) bool {
	for _, action := range actions {
		if action.IsParamAction() && action.MatchesParam(key) {
			return true
		}
	}
	return false
}

// inSourceOrder orders removed pairs (domain pass first, then global pass)
// by their position in the original query.
func inSourceOrder(query, removed []urlutil.QueryParam) []urlutil.QueryParam {
	if len(removed) < 2 {
		return removed
	}
	remaining := make(map[urlutil.QueryParam]int, len(removed))
	for _, param := range removed {
		remaining[param]++
	}
	ordered := make([]urlutil.QueryParam, 0, len(removed))
	for _, param := range query {
		if remaining[param] > 0 {
			remaining[param]--
			ordered = append(ordered, param)
		}
	}
	return ordered
}
