package textclean

// RuleID names one text cleaning rule. The string form is used in config files.
type RuleID string

const (
	RuleRemoveEmojis           RuleID = "remove_emojis"
	RuleCustomReplacements     RuleID = "custom_replacements"
	RuleRemoveZeroWidth        RuleID = "remove_zero_width"
	RuleReplaceDashes          RuleID = "remove_emdashes"
	RuleConvertSmartQuotes     RuleID = "convert_smart_quotes"
	RuleNormalizeSpaces        RuleID = "normalize_spaces"
	RuleNormalizeLineBreaks    RuleID = "normalize_line_breaks"
	RuleRemoveTrailingSpaces   RuleID = "remove_trailing_spaces"
	RuleRemoveExtraLineBreaks  RuleID = "remove_extra_line_breaks"
	RuleTrimLines              RuleID = "remove_leading_trailing_whitespace"
	RuleCleanURLTracking       RuleID = "clean_url_tracking"
	RuleRemoveURLs             RuleID = "remove_urls"
	RuleRemoveHTMLTags         RuleID = "remove_html_tags"
	RuleRemoveExtraPunctuation RuleID = "remove_extra_punctuation"
)

// ruleOrder is the order rules run in. Later rules see the output of earlier ones.
var ruleOrder = []RuleID{
	RuleRemoveEmojis,
	RuleCustomReplacements,
	RuleRemoveZeroWidth,
	RuleReplaceDashes,
	RuleConvertSmartQuotes,
	RuleNormalizeSpaces,
	RuleNormalizeLineBreaks,
	RuleRemoveTrailingSpaces,
	RuleRemoveExtraLineBreaks,
	RuleTrimLines,
	RuleCleanURLTracking,
	RuleRemoveURLs,
	RuleRemoveHTMLTags,
	RuleRemoveExtraPunctuation,
}

// Rules returns every rule in application order.
func Rules() []RuleID {
	out := make([]RuleID, len(ruleOrder))
	copy(out, ruleOrder)
	return out
}

// ParseRuleID resolves a config name to a RuleID.
func ParseRuleID(s string) (RuleID, bool) {
	for _, id := range ruleOrder {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Mode controls when a rule runs.
type Mode string

const (
	// ModeHotkey runs the rule only on an explicit clean request.
	ModeHotkey Mode = "hotkey"
	// ModeAuto runs the rule on explicit requests and on automatic cleaning.
	ModeAuto Mode = "auto"
	// ModeDisabled never runs the rule.
	ModeDisabled Mode = "disabled"
)

// ParseMode resolves a config name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeHotkey, ModeAuto, ModeDisabled:
		return Mode(s), true
	}
	return "", false
}

// AppliesOn reports whether a rule in mode m runs for the given trigger.
// Only ModeHotkey and ModeAuto are meaningful triggers.
func (m Mode) AppliesOn(trigger Mode) bool {
	switch trigger {
	case ModeHotkey:
		return m == ModeHotkey || m == ModeAuto
	case ModeAuto:
		return m == ModeAuto
	default:
		return false
	}
}

// Replacement is a literal find/replace pair. An empty Find is ignored.
type Replacement struct {
	Find    string
	Replace string
}

// Profile is an immutable set of rule modes plus rule arguments.
type Profile struct {
	name            string
	modes           map[RuleID]Mode
	dashReplacement string
	replacements    []Replacement
}

const defaultDashReplacement = ", "

// NewProfile returns a profile with every rule disabled.
func NewProfile(name string) Profile {
	return Profile{
		name:            name,
		modes:           map[RuleID]Mode{},
		dashReplacement: defaultDashReplacement,
	}
}

// DefaultProfile runs every formatting rule on hotkey, except emoji and
// URL removal which are off.
func DefaultProfile() Profile {
	p := NewProfile("default")
	for _, id := range ruleOrder {
		p.modes[id] = ModeHotkey
	}
	p.modes[RuleRemoveEmojis] = ModeDisabled
	p.modes[RuleRemoveURLs] = ModeDisabled
	return p
}

func (p Profile) Name() string {
	return p.name
}

// Mode returns the mode of id. Unknown or unset rules are disabled.
func (p Profile) Mode(id RuleID) Mode {
	if m, ok := p.modes[id]; ok {
		return m
	}
	return ModeDisabled
}

func (p Profile) DashReplacement() string {
	return p.dashReplacement
}

func (p Profile) Replacements() []Replacement {
	out := make([]Replacement, len(p.replacements))
	copy(out, p.replacements)
	return out
}

// Enabled lists the rules that are not disabled, in application order.
func (p Profile) Enabled() []RuleID {
	var out []RuleID
	for _, id := range ruleOrder {
		if p.Mode(id) != ModeDisabled {
			out = append(out, id)
		}
	}
	return out
}

// WithRule returns a copy of p with id set to mode.
func (p Profile) WithRule(id RuleID, mode Mode) Profile {
	next := p.clone()
	next.modes[id] = mode
	return next
}

// WithName returns a copy of p called name.
func (p Profile) WithName(name string) Profile {
	next := p.clone()
	next.name = name
	return next
}

// WithDashReplacement returns a copy of p that replaces dashes with s.
func (p Profile) WithDashReplacement(s string) Profile {
	next := p.clone()
	next.dashReplacement = s
	return next
}

// WithReplacements returns a copy of p with r appended to its find/replace list.
func (p Profile) WithReplacements(r ...Replacement) Profile {
	next := p.clone()
	next.replacements = append(next.replacements, r...)
	return next
}

// ForMode reduces p to the rules that run for trigger. Every other rule
// is disabled in the result.
func (p Profile) ForMode(trigger Mode) Profile {
	next := p.clone()
	for id, m := range next.modes {
		if !m.AppliesOn(trigger) {
			next.modes[id] = ModeDisabled
		}
	}
	return next
}

func (p Profile) clone() Profile {
	modes := make(map[RuleID]Mode, len(p.modes))
	for id, m := range p.modes {
		modes[id] = m
	}
	return Profile{
		name:            p.name,
		modes:           modes,
		dashReplacement: p.dashReplacement,
		replacements:    p.Replacements(),
	}
}
